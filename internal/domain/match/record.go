package match

import (
	"time"

	"github.com/google/uuid"
)

// Record is the persisted pairing between one ad and one resume. At most one
// record exists per pair; the stores enforce that with find-or-create.
type Record struct {
	ID        uuid.UUID
	AdID      uuid.UUID
	ResumeID  uuid.UUID
	State     State
	CreatedAt time.Time
}
