package usecase

import (
	"context"
	"errors"
	"testing"

	"jobmatch/internal/domain/account"
	"jobmatch/internal/domain/ad"
	"jobmatch/internal/domain/resume"
	"jobmatch/internal/domain/skill"

	"github.com/google/uuid"
)

func TestFindMatchesForAdRanksByOverlap(t *testing.T) {
	goID, sqlID, pythonID := uuid.New(), uuid.New(), uuid.New()

	prof := account.Professional{ID: uuid.New(), Approved: true}
	subject := ad.Ad{ID: uuid.New(), CompanyID: uuid.New(), Skills: skill.NewSet(goID, sqlID)}

	partial := resume.Resume{ID: uuid.New(), ProfessionalID: prof.ID, Skills: skill.NewSet(goID, pythonID)}
	full := resume.Resume{ID: uuid.New(), ProfessionalID: prof.ID, Skills: skill.NewSet(goID, sqlID, pythonID)}
	unrelated := resume.Resume{ID: uuid.New(), ProfessionalID: prof.ID, Skills: skill.NewSet(pythonID)}

	uc := NewMatchingUsecase(
		newFakeAdRepo(subject),
		newFakeResumeRepo(partial, full, unrelated),
		NewApprovalVisibility(newFakeCompanyRepo(), newFakeProfessionalRepo(prof)),
		nil,
	)

	got, err := uc.FindMatchesForAd(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("FindMatchesForAd: %v", err)
	}

	want := []MatchCandidate{
		{ID: full.ID, Overlap: 2},
		{ID: partial.ID, Overlap: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidate[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFindMatchesForAdSkipsUnapprovedProfessionals(t *testing.T) {
	goID := uuid.New()

	approved := account.Professional{ID: uuid.New(), Approved: true}
	pending := account.Professional{ID: uuid.New(), Approved: false}
	subject := ad.Ad{ID: uuid.New(), CompanyID: uuid.New(), Skills: skill.NewSet(goID)}

	visible := resume.Resume{ID: uuid.New(), ProfessionalID: approved.ID, Skills: skill.NewSet(goID)}
	hidden := resume.Resume{ID: uuid.New(), ProfessionalID: pending.ID, Skills: skill.NewSet(goID)}

	uc := NewMatchingUsecase(
		newFakeAdRepo(subject),
		newFakeResumeRepo(visible, hidden),
		NewApprovalVisibility(newFakeCompanyRepo(), newFakeProfessionalRepo(approved, pending)),
		nil,
	)

	got, err := uc.FindMatchesForAd(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("FindMatchesForAd: %v", err)
	}
	if len(got) != 1 || got[0].ID != visible.ID {
		t.Fatalf("got %v, want only resume %s", got, visible.ID)
	}
}

func TestFindMatchesForAdEmptySkillSet(t *testing.T) {
	subject := ad.Ad{ID: uuid.New(), CompanyID: uuid.New(), Skills: skill.NewSet()}
	other := resume.Resume{ID: uuid.New(), ProfessionalID: uuid.New(), Skills: skill.NewSet(uuid.New())}

	uc := NewMatchingUsecase(
		newFakeAdRepo(subject),
		newFakeResumeRepo(other),
		approveAllVisibility{},
		nil,
	)

	got, err := uc.FindMatchesForAd(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("FindMatchesForAd: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestFindMatchesForAdUnknownAd(t *testing.T) {
	uc := NewMatchingUsecase(newFakeAdRepo(), newFakeResumeRepo(), approveAllVisibility{}, nil)

	if _, err := uc.FindMatchesForAd(context.Background(), uuid.New()); !errors.Is(err, ErrAdNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrAdNotFound)
	}
}

func TestFindMatchesForAdServesFromCache(t *testing.T) {
	goID := uuid.New()
	subject := ad.Ad{ID: uuid.New(), CompanyID: uuid.New(), Skills: skill.NewSet(goID)}
	other := resume.Resume{ID: uuid.New(), ProfessionalID: uuid.New(), Skills: skill.NewSet(goID)}

	ads := newFakeAdRepo(subject)
	cache := newFakeCache()
	uc := NewMatchingUsecase(ads, newFakeResumeRepo(other), approveAllVisibility{}, cache)

	first, err := uc.FindMatchesForAd(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("FindMatchesForAd: %v", err)
	}
	loads := ads.getCalls

	second, err := uc.FindMatchesForAd(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("FindMatchesForAd cached: %v", err)
	}
	if ads.getCalls != loads {
		t.Fatalf("repository hit on cached lookup: %d loads, want %d", ads.getCalls, loads)
	}
	if len(second) != len(first) || second[0] != first[0] {
		t.Fatalf("cached result %v differs from %v", second, first)
	}
}

func TestFindMatchesForResumeSkipsUnapprovedCompanies(t *testing.T) {
	goID := uuid.New()

	approved := account.Company{ID: uuid.New(), Approved: true}
	pending := account.Company{ID: uuid.New(), Approved: false}
	subject := resume.Resume{ID: uuid.New(), ProfessionalID: uuid.New(), Skills: skill.NewSet(goID)}

	visible := ad.Ad{ID: uuid.New(), CompanyID: approved.ID, Skills: skill.NewSet(goID)}
	hidden := ad.Ad{ID: uuid.New(), CompanyID: pending.ID, Skills: skill.NewSet(goID)}

	uc := NewMatchingUsecase(
		newFakeAdRepo(visible, hidden),
		newFakeResumeRepo(subject),
		NewApprovalVisibility(newFakeCompanyRepo(approved, pending), newFakeProfessionalRepo()),
		nil,
	)

	got, err := uc.FindMatchesForResume(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("FindMatchesForResume: %v", err)
	}
	if len(got) != 1 || got[0].ID != visible.ID {
		t.Fatalf("got %v, want only ad %s", got, visible.ID)
	}
}
