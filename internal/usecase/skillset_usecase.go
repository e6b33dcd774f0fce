package usecase

import (
	"context"
	"errors"

	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

// SkillSetUsecase edits the skill references attached to an ad or a resume.
// Adding an already-present skill collapses silently; the cached match
// results for the subject are invalidated on every edit.
type SkillSetUsecase interface {
	AddAdSkill(ctx context.Context, companyID, adID, skillID uuid.UUID) error
	RemoveAdSkill(ctx context.Context, companyID, adID, skillID uuid.UUID) error
	AddResumeSkill(ctx context.Context, professionalID, resumeID, skillID uuid.UUID) error
	RemoveResumeSkill(ctx context.Context, professionalID, resumeID, skillID uuid.UUID) error
}

type SkillSet struct {
	ads     repository.AdRepository
	resumes repository.ResumeRepository
	skills  repository.SkillRepository
	cache   SearchCache
}

func NewSkillSetUsecase(
	ads repository.AdRepository,
	resumes repository.ResumeRepository,
	skills repository.SkillRepository,
	cache SearchCache,
) *SkillSet {
	return &SkillSet{ads: ads, resumes: resumes, skills: skills, cache: cache}
}

func (u *SkillSet) AddAdSkill(ctx context.Context, companyID, adID, skillID uuid.UUID) error {
	if err := u.checkAdOwner(ctx, companyID, adID); err != nil {
		return err
	}
	if err := u.checkSkill(ctx, skillID); err != nil {
		return err
	}
	if err := u.ads.AddSkill(ctx, adID, skillID); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrUnavailable
	}
	u.invalidate(ctx, adMatchCacheKey(adID))
	return nil
}

func (u *SkillSet) RemoveAdSkill(ctx context.Context, companyID, adID, skillID uuid.UUID) error {
	if err := u.checkAdOwner(ctx, companyID, adID); err != nil {
		return err
	}
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.ads.RemoveSkill(ctx, adID, skillID); err != nil {
		return ErrUnavailable
	}
	u.invalidate(ctx, adMatchCacheKey(adID))
	return nil
}

func (u *SkillSet) AddResumeSkill(ctx context.Context, professionalID, resumeID, skillID uuid.UUID) error {
	if err := u.checkResumeOwner(ctx, professionalID, resumeID); err != nil {
		return err
	}
	if err := u.checkSkill(ctx, skillID); err != nil {
		return err
	}
	if err := u.resumes.AddSkill(ctx, resumeID, skillID); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrUnavailable
	}
	u.invalidate(ctx, resumeMatchCacheKey(resumeID))
	return nil
}

func (u *SkillSet) RemoveResumeSkill(ctx context.Context, professionalID, resumeID, skillID uuid.UUID) error {
	if err := u.checkResumeOwner(ctx, professionalID, resumeID); err != nil {
		return err
	}
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.resumes.RemoveSkill(ctx, resumeID, skillID); err != nil {
		return ErrUnavailable
	}
	u.invalidate(ctx, resumeMatchCacheKey(resumeID))
	return nil
}

func (u *SkillSet) checkAdOwner(ctx context.Context, companyID, adID uuid.UUID) error {
	if companyID == uuid.Nil {
		return ErrUnauthorized
	}
	a, err := u.ads.GetByID(ctx, adID)
	if err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return ErrAdNotFound
		}
		return ErrUnavailable
	}
	if a.CompanyID != companyID {
		return ErrForbidden
	}
	return nil
}

func (u *SkillSet) checkResumeOwner(ctx context.Context, professionalID, resumeID uuid.UUID) error {
	if professionalID == uuid.Nil {
		return ErrUnauthorized
	}
	res, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return ErrUnavailable
	}
	if res.ProfessionalID != professionalID {
		return ErrForbidden
	}
	return nil
}

func (u *SkillSet) checkSkill(ctx context.Context, skillID uuid.UUID) error {
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}
	exists, err := u.skills.ExistsByID(ctx, skillID)
	if err != nil {
		return ErrUnavailable
	}
	if !exists {
		return ErrSkillNotFound
	}
	return nil
}

func (u *SkillSet) invalidate(ctx context.Context, key string) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, key)
}
