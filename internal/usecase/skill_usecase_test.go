package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCreateSkill(t *testing.T) {
	repo := newFakeSkillRepo()
	uc := NewSkillUsecase(repo)

	created, err := uc.CreateSkill(context.Background(), "Go")
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	if created.Name != "Go" {
		t.Fatalf("name = %q, want %q", created.Name, "Go")
	}

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "duplicate", input: "Go", wantErr: ErrSkillNameTaken},
		{name: "duplicate different case", input: "go", wantErr: ErrSkillNameTaken},
		{name: "blank", input: "   ", wantErr: ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.CreateSkill(context.Background(), tt.input); !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateSkill(%q) err = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateSkill(t *testing.T) {
	repo := newFakeSkillRepo()
	uc := NewSkillUsecase(repo)

	created, err := uc.CreateSkill(context.Background(), "Pyton")
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}

	updated, err := uc.UpdateSkill(context.Background(), created.ID, "Python")
	if err != nil {
		t.Fatalf("UpdateSkill: %v", err)
	}
	if updated.Name != "Python" {
		t.Fatalf("name = %q, want %q", updated.Name, "Python")
	}

	if _, err := uc.UpdateSkill(context.Background(), uuid.New(), "Rust"); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("UpdateSkill unknown err = %v, want %v", err, ErrSkillNotFound)
	}
}

func TestDeleteSkill(t *testing.T) {
	repo := newFakeSkillRepo()
	uc := NewSkillUsecase(repo)

	free, err := uc.CreateSkill(context.Background(), "COBOL")
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	inUse, err := uc.CreateSkill(context.Background(), "Go")
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	repo.referenced[inUse.ID] = true

	if err := uc.DeleteSkill(context.Background(), free.ID); err != nil {
		t.Fatalf("DeleteSkill free: %v", err)
	}

	// A referenced skill stays; the references have to be removed first.
	if err := uc.DeleteSkill(context.Background(), inUse.ID); !errors.Is(err, ErrSkillInUse) {
		t.Fatalf("DeleteSkill referenced err = %v, want %v", err, ErrSkillInUse)
	}
	if exists, _ := repo.ExistsByID(context.Background(), inUse.ID); !exists {
		t.Fatal("referenced skill was deleted")
	}

	if err := uc.DeleteSkill(context.Background(), uuid.New()); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("DeleteSkill unknown err = %v, want %v", err, ErrSkillNotFound)
	}
}
