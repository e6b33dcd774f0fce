package usecase

import (
	"context"
	"errors"
	"strings"

	"jobmatch/internal/domain/ad"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

type AdInput struct {
	Description string
	Location    string
	MinSalary   int
	MaxSalary   int
}

type AdItem struct {
	ID          uuid.UUID   `json:"id"`
	CompanyID   uuid.UUID   `json:"company_id"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	MinSalary   int         `json:"min_salary"`
	MaxSalary   int         `json:"max_salary"`
	SkillIDs    []uuid.UUID `json:"skill_ids"`
}

type AdUsecase interface {
	CreateAd(ctx context.Context, companyID uuid.UUID, in AdInput) (AdItem, error)
	GetAd(ctx context.Context, id uuid.UUID) (AdItem, error)
	ListCompanyAds(ctx context.Context, companyID uuid.UUID) ([]AdItem, error)
	UpdateAd(ctx context.Context, companyID, adID uuid.UUID, in AdInput) (AdItem, error)
	DeleteAd(ctx context.Context, companyID, adID uuid.UUID) error
}

type Ad struct {
	ads     repository.AdRepository
	records repository.MatchRecordRepository
}

func NewAdUsecase(ads repository.AdRepository, records repository.MatchRecordRepository) *Ad {
	return &Ad{ads: ads, records: records}
}

func (u *Ad) CreateAd(ctx context.Context, companyID uuid.UUID, in AdInput) (AdItem, error) {
	if companyID == uuid.Nil {
		return AdItem{}, ErrUnauthorized
	}
	if err := validateAdInput(in); err != nil {
		return AdItem{}, err
	}

	a := ad.Ad{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		MinSalary:   in.MinSalary,
		MaxSalary:   in.MaxSalary,
	}
	if err := u.ads.Create(ctx, a); err != nil {
		return AdItem{}, ErrUnavailable
	}
	return toAdItem(a), nil
}

func (u *Ad) GetAd(ctx context.Context, id uuid.UUID) (AdItem, error) {
	a, err := u.ads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return AdItem{}, ErrAdNotFound
		}
		return AdItem{}, ErrUnavailable
	}
	return toAdItem(a), nil
}

func (u *Ad) ListCompanyAds(ctx context.Context, companyID uuid.UUID) ([]AdItem, error) {
	items, err := u.ads.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, ErrUnavailable
	}
	out := make([]AdItem, 0, len(items))
	for _, a := range items {
		out = append(out, toAdItem(a))
	}
	return out, nil
}

func (u *Ad) UpdateAd(ctx context.Context, companyID, adID uuid.UUID, in AdInput) (AdItem, error) {
	if err := validateAdInput(in); err != nil {
		return AdItem{}, err
	}

	a, err := u.owned(ctx, companyID, adID)
	if err != nil {
		return AdItem{}, err
	}

	a.Description = strings.TrimSpace(in.Description)
	a.Location = strings.TrimSpace(in.Location)
	a.MinSalary = in.MinSalary
	a.MaxSalary = in.MaxSalary

	if err := u.ads.Update(ctx, a); err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return AdItem{}, ErrAdNotFound
		}
		return AdItem{}, ErrUnavailable
	}
	return toAdItem(a), nil
}

// DeleteAd cascades the ad's match records before removing the ad itself, so
// the cascade is an explicit call in the core rather than trigger magic.
func (u *Ad) DeleteAd(ctx context.Context, companyID, adID uuid.UUID) error {
	if _, err := u.owned(ctx, companyID, adID); err != nil {
		return err
	}

	if _, err := u.records.DeleteForAd(ctx, adID); err != nil {
		return ErrUnavailable
	}
	if err := u.ads.Delete(ctx, adID); err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return ErrAdNotFound
		}
		return ErrUnavailable
	}
	return nil
}

func (u *Ad) owned(ctx context.Context, companyID, adID uuid.UUID) (ad.Ad, error) {
	if companyID == uuid.Nil {
		return ad.Ad{}, ErrUnauthorized
	}
	a, err := u.ads.GetByID(ctx, adID)
	if err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return ad.Ad{}, ErrAdNotFound
		}
		return ad.Ad{}, ErrUnavailable
	}
	if a.CompanyID != companyID {
		return ad.Ad{}, ErrForbidden
	}
	return a, nil
}

func validateAdInput(in AdInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return ErrInvalidInput
	}
	if in.MinSalary < 0 || in.MaxSalary < 0 || (in.MaxSalary > 0 && in.MinSalary > in.MaxSalary) {
		return ErrInvalidInput
	}
	return nil
}

func toAdItem(a ad.Ad) AdItem {
	return AdItem{
		ID:          a.ID,
		CompanyID:   a.CompanyID,
		Description: a.Description,
		Location:    a.Location,
		MinSalary:   a.MinSalary,
		MaxSalary:   a.MaxSalary,
		SkillIDs:    a.Skills.IDs(),
	}
}
