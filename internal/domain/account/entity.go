package account

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCompany      Role = "company"
	RoleProfessional Role = "professional"
	RoleAdmin        Role = "admin"
)

type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Company is the hiring side of the board. Only approved companies surface in
// match search.
type Company struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Name      string
	Location  string
	Approved  bool
	CreatedAt time.Time
}

// Professional is the candidate side. Approval gates search visibility the
// same way it does for companies.
type Professional struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	FirstName string
	LastName  string
	Location  string
	Approved  bool
	CreatedAt time.Time
}
