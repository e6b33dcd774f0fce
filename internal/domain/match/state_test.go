package match

import "testing"

func TestNextOnApprove(t *testing.T) {
	tests := []struct {
		name        string
		cur         State
		by          Party
		want        State
		wantChanged bool
	}{
		{"pending company", StatePending, PartyCompany, StateAdApproved, true},
		{"pending professional", StatePending, PartyProfessional, StateResumeApproved, true},
		{"ad approved then professional", StateAdApproved, PartyProfessional, StateConfirmed, true},
		{"ad approved company repeat", StateAdApproved, PartyCompany, StateAdApproved, false},
		{"resume approved then company", StateResumeApproved, PartyCompany, StateConfirmed, true},
		{"resume approved professional repeat", StateResumeApproved, PartyProfessional, StateResumeApproved, false},
		{"confirmed is terminal", StateConfirmed, PartyCompany, StateConfirmed, false},
		{"rejected is terminal", StateRejected, PartyProfessional, StateRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := NextOnApprove(tt.cur, tt.by)
			if got != tt.want || changed != tt.wantChanged {
				t.Fatalf("NextOnApprove(%s, %s) = (%s, %v), want (%s, %v)",
					tt.cur, tt.by, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestNextOnReject(t *testing.T) {
	tests := []struct {
		name        string
		cur         State
		want        State
		wantChanged bool
	}{
		{"pending", StatePending, StateRejected, true},
		{"ad approved", StateAdApproved, StateRejected, true},
		{"resume approved", StateResumeApproved, StateRejected, true},
		{"already rejected", StateRejected, StateRejected, false},
		{"confirmed stays confirmed", StateConfirmed, StateConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := NextOnReject(tt.cur)
			if got != tt.want || changed != tt.wantChanged {
				t.Fatalf("NextOnReject(%s) = (%s, %v), want (%s, %v)",
					tt.cur, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestStateValid(t *testing.T) {
	for _, s := range []State{StatePending, StateAdApproved, StateResumeApproved, StateConfirmed, StateRejected} {
		if !s.Valid() {
			t.Fatalf("expected %s valid", s)
		}
	}
	if State("approved").Valid() {
		t.Fatalf("expected unknown state invalid")
	}
}
