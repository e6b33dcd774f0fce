package usecase

import (
	"context"
	"errors"
	"strings"

	"jobmatch/internal/domain/resume"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

type ResumeInput struct {
	Description string
	Location    string
	MinSalary   int
	MaxSalary   int
}

type ResumeItem struct {
	ID             uuid.UUID   `json:"id"`
	ProfessionalID uuid.UUID   `json:"professional_id"`
	Description    string      `json:"description"`
	Location       string      `json:"location"`
	MinSalary      int         `json:"min_salary"`
	MaxSalary      int         `json:"max_salary"`
	Main           bool        `json:"main"`
	SkillIDs       []uuid.UUID `json:"skill_ids"`
}

type ResumeUsecase interface {
	CreateResume(ctx context.Context, professionalID uuid.UUID, in ResumeInput) (ResumeItem, error)
	GetResume(ctx context.Context, id uuid.UUID) (ResumeItem, error)
	ListProfessionalResumes(ctx context.Context, professionalID uuid.UUID) ([]ResumeItem, error)
	UpdateResume(ctx context.Context, professionalID, resumeID uuid.UUID, in ResumeInput) (ResumeItem, error)
	DeleteResume(ctx context.Context, professionalID, resumeID uuid.UUID) error
	SetMainResume(ctx context.Context, professionalID, resumeID uuid.UUID) error
}

type Resume struct {
	resumes repository.ResumeRepository
	records repository.MatchRecordRepository
}

func NewResumeUsecase(resumes repository.ResumeRepository, records repository.MatchRecordRepository) *Resume {
	return &Resume{resumes: resumes, records: records}
}

func (u *Resume) CreateResume(ctx context.Context, professionalID uuid.UUID, in ResumeInput) (ResumeItem, error) {
	if professionalID == uuid.Nil {
		return ResumeItem{}, ErrUnauthorized
	}
	if err := validateResumeInput(in); err != nil {
		return ResumeItem{}, err
	}

	res := resume.Resume{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		Description:    strings.TrimSpace(in.Description),
		Location:       strings.TrimSpace(in.Location),
		MinSalary:      in.MinSalary,
		MaxSalary:      in.MaxSalary,
	}
	if err := u.resumes.Create(ctx, res); err != nil {
		return ResumeItem{}, ErrUnavailable
	}
	return toResumeItem(res), nil
}

func (u *Resume) GetResume(ctx context.Context, id uuid.UUID) (ResumeItem, error) {
	res, err := u.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ResumeItem{}, ErrResumeNotFound
		}
		return ResumeItem{}, ErrUnavailable
	}
	return toResumeItem(res), nil
}

func (u *Resume) ListProfessionalResumes(ctx context.Context, professionalID uuid.UUID) ([]ResumeItem, error) {
	items, err := u.resumes.ListByProfessional(ctx, professionalID)
	if err != nil {
		return nil, ErrUnavailable
	}
	out := make([]ResumeItem, 0, len(items))
	for _, res := range items {
		out = append(out, toResumeItem(res))
	}
	return out, nil
}

func (u *Resume) UpdateResume(ctx context.Context, professionalID, resumeID uuid.UUID, in ResumeInput) (ResumeItem, error) {
	if err := validateResumeInput(in); err != nil {
		return ResumeItem{}, err
	}

	res, err := u.owned(ctx, professionalID, resumeID)
	if err != nil {
		return ResumeItem{}, err
	}

	res.Description = strings.TrimSpace(in.Description)
	res.Location = strings.TrimSpace(in.Location)
	res.MinSalary = in.MinSalary
	res.MaxSalary = in.MaxSalary

	if err := u.resumes.Update(ctx, res); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ResumeItem{}, ErrResumeNotFound
		}
		return ResumeItem{}, ErrUnavailable
	}
	return toResumeItem(res), nil
}

// DeleteResume cascades dependent match records first, mirroring ad deletion.
func (u *Resume) DeleteResume(ctx context.Context, professionalID, resumeID uuid.UUID) error {
	if _, err := u.owned(ctx, professionalID, resumeID); err != nil {
		return err
	}

	if _, err := u.records.DeleteForResume(ctx, resumeID); err != nil {
		return ErrUnavailable
	}
	if err := u.resumes.Delete(ctx, resumeID); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return ErrUnavailable
	}
	return nil
}

func (u *Resume) SetMainResume(ctx context.Context, professionalID, resumeID uuid.UUID) error {
	if professionalID == uuid.Nil {
		return ErrUnauthorized
	}
	if resumeID == uuid.Nil {
		return ErrInvalidInput
	}

	if err := u.resumes.SetMain(ctx, professionalID, resumeID); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return ErrUnavailable
	}
	return nil
}

func (u *Resume) owned(ctx context.Context, professionalID, resumeID uuid.UUID) (resume.Resume, error) {
	if professionalID == uuid.Nil {
		return resume.Resume{}, ErrUnauthorized
	}
	res, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, ErrUnavailable
	}
	if res.ProfessionalID != professionalID {
		return resume.Resume{}, ErrForbidden
	}
	return res, nil
}

func validateResumeInput(in ResumeInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return ErrInvalidInput
	}
	if in.MinSalary < 0 || in.MaxSalary < 0 || (in.MaxSalary > 0 && in.MinSalary > in.MaxSalary) {
		return ErrInvalidInput
	}
	return nil
}

func toResumeItem(res resume.Resume) ResumeItem {
	return ResumeItem{
		ID:             res.ID,
		ProfessionalID: res.ProfessionalID,
		Description:    res.Description,
		Location:       res.Location,
		MinSalary:      res.MinSalary,
		MaxSalary:      res.MaxSalary,
		Main:           res.Main,
		SkillIDs:       res.Skills.IDs(),
	}
}
