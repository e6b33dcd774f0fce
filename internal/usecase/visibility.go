package usecase

import (
	"context"
	"errors"

	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

// VisibilityFilter gates which side's entities may surface in match search.
type VisibilityFilter interface {
	CompanyEligible(ctx context.Context, companyID uuid.UUID) (bool, error)
	ProfessionalEligible(ctx context.Context, professionalID uuid.UUID) (bool, error)
}

// ApprovalVisibility admits only approved profiles, the board's default
// policy. Unknown owners are simply not eligible.
type ApprovalVisibility struct {
	companies     repository.CompanyRepository
	professionals repository.ProfessionalRepository
}

func NewApprovalVisibility(companies repository.CompanyRepository, professionals repository.ProfessionalRepository) *ApprovalVisibility {
	return &ApprovalVisibility{companies: companies, professionals: professionals}
}

func (v *ApprovalVisibility) CompanyEligible(ctx context.Context, companyID uuid.UUID) (bool, error) {
	c, err := v.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return false, nil
		}
		return false, err
	}
	return c.Approved, nil
}

func (v *ApprovalVisibility) ProfessionalEligible(ctx context.Context, professionalID uuid.UUID) (bool, error) {
	p, err := v.professionals.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, repository.ErrProfessionalNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.Approved, nil
}
