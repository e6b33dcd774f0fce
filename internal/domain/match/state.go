package match

// State is the approval lifecycle of a match record. An explicit enum rather
// than per-side booleans, so every transition has exactly one name.
type State string

const (
	StatePending        State = "pending"
	StateAdApproved     State = "ad_approved"
	StateResumeApproved State = "resume_approved"
	StateConfirmed      State = "confirmed"
	StateRejected       State = "rejected"
)

// Party identifies which side of a match acted.
type Party string

const (
	PartyCompany      Party = "company"
	PartyProfessional Party = "professional"
)

func (s State) Valid() bool {
	switch s {
	case StatePending, StateAdApproved, StateResumeApproved, StateConfirmed, StateRejected:
		return true
	}
	return false
}

func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateRejected
}

// NextOnApprove returns the state after the given party approves, and whether
// that is a change. Terminal states and same-party repeats do not change.
func NextOnApprove(cur State, by Party) (State, bool) {
	if cur.Terminal() {
		return cur, false
	}
	switch cur {
	case StatePending:
		if by == PartyCompany {
			return StateAdApproved, true
		}
		return StateResumeApproved, true
	case StateAdApproved:
		if by == PartyProfessional {
			return StateConfirmed, true
		}
		return cur, false
	case StateResumeApproved:
		if by == PartyCompany {
			return StateConfirmed, true
		}
		return cur, false
	}
	return cur, false
}

// NextOnReject returns the state after the given party declines. Any
// non-terminal state moves to Rejected; terminal states stay put.
func NextOnReject(cur State) (State, bool) {
	if cur.Terminal() {
		return cur, false
	}
	return StateRejected, true
}
