package usecase

import (
	"context"
	"errors"

	"jobmatch/internal/domain/account"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrProfessionalNotFound = errors.New("professional not found")
)

// ProfileUsecase resolves the acting profile behind an authenticated account
// and lets admins flip the approval flag the visibility filter reads.
type ProfileUsecase interface {
	CompanyForAccount(ctx context.Context, accountID uuid.UUID) (account.Company, error)
	ProfessionalForAccount(ctx context.Context, accountID uuid.UUID) (account.Professional, error)
	ApproveCompany(ctx context.Context, companyID uuid.UUID) error
	ApproveProfessional(ctx context.Context, professionalID uuid.UUID) error
}

type Profile struct {
	companies     repository.CompanyRepository
	professionals repository.ProfessionalRepository
}

func NewProfileUsecase(companies repository.CompanyRepository, professionals repository.ProfessionalRepository) *Profile {
	return &Profile{companies: companies, professionals: professionals}
}

func (u *Profile) CompanyForAccount(ctx context.Context, accountID uuid.UUID) (account.Company, error) {
	if accountID == uuid.Nil {
		return account.Company{}, ErrUnauthorized
	}
	c, err := u.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return account.Company{}, ErrCompanyNotFound
		}
		return account.Company{}, ErrUnavailable
	}
	return c, nil
}

func (u *Profile) ProfessionalForAccount(ctx context.Context, accountID uuid.UUID) (account.Professional, error) {
	if accountID == uuid.Nil {
		return account.Professional{}, ErrUnauthorized
	}
	p, err := u.professionals.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrProfessionalNotFound) {
			return account.Professional{}, ErrProfessionalNotFound
		}
		return account.Professional{}, ErrUnavailable
	}
	return p, nil
}

func (u *Profile) ApproveCompany(ctx context.Context, companyID uuid.UUID) error {
	if err := u.companies.SetApproved(ctx, companyID, true); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return ErrCompanyNotFound
		}
		return ErrUnavailable
	}
	return nil
}

func (u *Profile) ApproveProfessional(ctx context.Context, professionalID uuid.UUID) error {
	if err := u.professionals.SetApproved(ctx, professionalID, true); err != nil {
		if errors.Is(err, repository.ErrProfessionalNotFound) {
			return ErrProfessionalNotFound
		}
		return ErrUnavailable
	}
	return nil
}
