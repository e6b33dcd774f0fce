package skill

import "github.com/google/uuid"

// Set is a collection of skill references held by an ad or a resume.
// Membership is by skill identity, duplicates collapse.
type Set map[uuid.UUID]struct{}

func NewSet(ids ...uuid.UUID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Add(id uuid.UUID) {
	if id == uuid.Nil {
		return
	}
	s[id] = struct{}{}
}

func (s Set) Remove(id uuid.UUID) {
	delete(s, id)
}

func (s Set) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) IDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

// Overlap counts skills present in both sets.
func (s Set) Overlap(other Set) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for id := range small {
		if _, ok := large[id]; ok {
			n++
		}
	}
	return n
}
