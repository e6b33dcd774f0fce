package ad

import (
	"time"

	"jobmatch/internal/domain/skill"

	"github.com/google/uuid"
)

// Ad is a company's job listing with the skill set it requires.
type Ad struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Description string
	Location    string
	MinSalary   int
	MaxSalary   int
	Skills      skill.Set
	CreatedAt   time.Time
}
