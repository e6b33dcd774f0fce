package resume

import (
	"time"

	"jobmatch/internal/domain/skill"

	"github.com/google/uuid"
)

// Resume is a professional's candidate profile with the skills they possess.
// At most one resume per professional carries Main; the store flips the flag
// atomically when another resume is promoted.
type Resume struct {
	ID             uuid.UUID
	ProfessionalID uuid.UUID
	Description    string
	Location       string
	MinSalary      int
	MaxSalary      int
	Main           bool
	Skills         skill.Set
	CreatedAt      time.Time
}
