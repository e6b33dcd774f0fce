package skill

import (
	"testing"

	"github.com/google/uuid"
)

func TestSet_AddCollapsesDuplicates(t *testing.T) {
	id := uuid.New()
	s := NewSet()
	s.Add(id)
	s.Add(id)
	if s.Len() != 1 {
		t.Fatalf("expected 1 member, got %d", s.Len())
	}
	if !s.Has(id) {
		t.Fatalf("expected membership for %s", id)
	}
}

func TestSet_AddNilIgnored(t *testing.T) {
	s := NewSet(uuid.Nil)
	s.Add(uuid.Nil)
	if s.Len() != 0 {
		t.Fatalf("expected empty set, got %d members", s.Len())
	}
}

func TestSet_Remove(t *testing.T) {
	id := uuid.New()
	s := NewSet(id)
	s.Remove(id)
	if s.Has(id) {
		t.Fatalf("expected %s removed", id)
	}
	s.Remove(id) // removing again is a no-op
}

func TestSet_OverlapSymmetric(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name string
		x    Set
		y    Set
		want int
	}{
		{"disjoint", NewSet(a, b), NewSet(c, d), 0},
		{"partial", NewSet(a, b, c), NewSet(b, c, d), 2},
		{"subset", NewSet(a, b, c), NewSet(a), 1},
		{"empty left", NewSet(), NewSet(a, b), 0},
		{"both empty", NewSet(), NewSet(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.Overlap(tt.y); got != tt.want {
				t.Fatalf("overlap(x,y) = %d, want %d", got, tt.want)
			}
			if got := tt.y.Overlap(tt.x); got != tt.want {
				t.Fatalf("overlap(y,x) = %d, want %d", got, tt.want)
			}
		})
	}
}
