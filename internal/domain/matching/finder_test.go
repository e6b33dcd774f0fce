package matching

import (
	"bytes"
	"testing"

	"jobmatch/internal/domain/skill"

	"github.com/google/uuid"
)

func TestRank_OrdersByOverlapThenID(t *testing.T) {
	skGo, skSQL, skPython := uuid.New(), uuid.New(), uuid.New()

	ad := skill.NewSet(skGo, skSQL)
	r1 := Candidate{ID: uuid.New(), Skills: skill.NewSet(skGo, skPython)}
	r2 := Candidate{ID: uuid.New(), Skills: skill.NewSet(skGo, skSQL, skPython)}

	got := Rank(ad, []Candidate{r1, r2})
	if len(got) != 2 {
		t.Fatalf("expected 2 ranked candidates, got %d", len(got))
	}
	if got[0].ID != r2.ID || got[0].Overlap != 2 {
		t.Fatalf("expected first = r2 with overlap 2, got %v overlap %d", got[0].ID, got[0].Overlap)
	}
	if got[1].ID != r1.ID || got[1].Overlap != 1 {
		t.Fatalf("expected second = r1 with overlap 1, got %v overlap %d", got[1].ID, got[1].Overlap)
	}
}

func TestRank_TieBreaksByIDAscending(t *testing.T) {
	sk := uuid.New()
	subject := skill.NewSet(sk)

	a := Candidate{ID: uuid.New(), Skills: skill.NewSet(sk)}
	b := Candidate{ID: uuid.New(), Skills: skill.NewSet(sk)}

	got := Rank(subject, []Candidate{a, b})
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	if bytes.Compare(got[0].ID[:], got[1].ID[:]) >= 0 {
		t.Fatalf("tie not broken by ascending id: %v before %v", got[0].ID, got[1].ID)
	}
}

func TestRank_DropsZeroOverlap(t *testing.T) {
	subject := skill.NewSet(uuid.New())
	stranger := Candidate{ID: uuid.New(), Skills: skill.NewSet(uuid.New())}

	if got := Rank(subject, []Candidate{stranger}); len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}

func TestRank_EmptySubjectMatchesNothing(t *testing.T) {
	anyone := Candidate{ID: uuid.New(), Skills: skill.NewSet(uuid.New())}
	if got := Rank(skill.NewSet(), []Candidate{anyone}); len(got) != 0 {
		t.Fatalf("empty subject should rank nothing, got %d", len(got))
	}
}
