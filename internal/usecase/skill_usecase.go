package usecase

import (
	"context"
	"errors"
	"strings"

	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound  = errors.New("skill not found")
	ErrSkillNameTaken = errors.New("skill name taken")
	// ErrSkillInUse pins the catalog's delete policy: a skill referenced by
	// any ad or resume cannot be removed, the references go first.
	ErrSkillInUse = errors.New("skill in use")
)

type SkillItem struct {
	ID   uuid.UUID
	Name string
}

type SkillUsecase interface {
	CreateSkill(ctx context.Context, name string) (SkillItem, error)
	ListSkills(ctx context.Context) ([]SkillItem, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, name string) (SkillItem, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) CreateSkill(ctx context.Context, name string) (SkillItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNameTaken) {
			return SkillItem{}, ErrSkillNameTaken
		}
		return SkillItem{}, ErrUnavailable
	}
	return SkillItem{ID: created.ID, Name: created.Name}, nil
}

func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrUnavailable
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Name: it.Name})
	}
	return out, nil
}

func (u *Skill) UpdateSkill(ctx context.Context, id uuid.UUID, name string) (SkillItem, error) {
	name = strings.TrimSpace(name)
	if id == uuid.Nil || name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	updated, err := u.repo.Update(ctx, id, name)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSkillNotFound):
			return SkillItem{}, ErrSkillNotFound
		case errors.Is(err, repository.ErrSkillNameTaken):
			return SkillItem{}, ErrSkillNameTaken
		default:
			return SkillItem{}, ErrUnavailable
		}
	}
	return SkillItem{ID: updated.ID, Name: updated.Name}, nil
}

func (u *Skill) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrSkillNotFound):
			return ErrSkillNotFound
		case errors.Is(err, repository.ErrSkillReferenced):
			return ErrSkillInUse
		default:
			return ErrUnavailable
		}
	}
	return nil
}
