package matching

import (
	"bytes"
	"sort"

	"jobmatch/internal/domain/skill"

	"github.com/google/uuid"
)

type Candidate struct {
	ID     uuid.UUID
	Skills skill.Set
}

type Ranked struct {
	ID      uuid.UUID
	Overlap int
}

// Rank scores candidates against the subject's skill set by intersection
// size. Candidates with no shared skill are dropped; the rest sort by overlap
// descending, id ascending on ties, so the ordering is deterministic. An
// empty subject set ranks nothing.
func Rank(subject skill.Set, candidates []Candidate) []Ranked {
	if subject.Len() == 0 {
		return nil
	}

	out := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == uuid.Nil {
			continue
		}
		ov := subject.Overlap(c.Skills)
		if ov == 0 {
			continue
		}
		out = append(out, Ranked{ID: c.ID, Overlap: ov})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Overlap != out[j].Overlap {
			return out[i].Overlap > out[j].Overlap
		}
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0
	})

	return out
}
