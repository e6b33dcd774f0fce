package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobmatch/internal/domain/matching"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAdNotFound     = errors.New("ad not found")
	ErrResumeNotFound = errors.New("resume not found")
)

const matchCacheTTL = 60 * time.Second

type MatchCandidate struct {
	ID      uuid.UUID `json:"id"`
	Overlap int       `json:"overlap"`
}

type MatchingUsecase interface {
	FindMatchesForAd(ctx context.Context, adID uuid.UUID) ([]MatchCandidate, error)
	FindMatchesForResume(ctx context.Context, resumeID uuid.UUID) ([]MatchCandidate, error)
}

type Matching struct {
	ads        repository.AdRepository
	resumes    repository.ResumeRepository
	visibility VisibilityFilter
	cache      SearchCache
}

func NewMatchingUsecase(
	ads repository.AdRepository,
	resumes repository.ResumeRepository,
	visibility VisibilityFilter,
	cache SearchCache,
) *Matching {
	return &Matching{ads: ads, resumes: resumes, visibility: visibility, cache: cache}
}

// FindMatchesForAd ranks visible resumes against the ad's skill set by
// overlap. An ad with no skills matches nothing. Existing match records do
// not restrict the result; callers consult the match lifecycle separately.
func (u *Matching) FindMatchesForAd(ctx context.Context, adID uuid.UUID) ([]MatchCandidate, error) {
	if adID == uuid.Nil {
		return nil, ErrAdNotFound
	}

	key := adMatchCacheKey(adID)
	if cached, ok := u.fromCache(ctx, key); ok {
		return cached, nil
	}

	subject, err := u.ads.GetByID(ctx, adID)
	if err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, ErrUnavailable
	}
	if subject.Skills.Len() == 0 {
		return []MatchCandidate{}, nil
	}

	all, err := u.resumes.ListAll(ctx)
	if err != nil {
		return nil, ErrUnavailable
	}

	candidates := make([]matching.Candidate, 0, len(all))
	for _, res := range all {
		eligible, err := u.visibility.ProfessionalEligible(ctx, res.ProfessionalID)
		if err != nil {
			return nil, ErrUnavailable
		}
		if !eligible {
			continue
		}
		candidates = append(candidates, matching.Candidate{ID: res.ID, Skills: res.Skills})
	}

	out := toMatchCandidates(matching.Rank(subject.Skills, candidates))
	u.toCache(ctx, key, out)
	return out, nil
}

// FindMatchesForResume is the mirror image, scanning ads of approved
// companies.
func (u *Matching) FindMatchesForResume(ctx context.Context, resumeID uuid.UUID) ([]MatchCandidate, error) {
	if resumeID == uuid.Nil {
		return nil, ErrResumeNotFound
	}

	key := resumeMatchCacheKey(resumeID)
	if cached, ok := u.fromCache(ctx, key); ok {
		return cached, nil
	}

	subject, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, ErrUnavailable
	}
	if subject.Skills.Len() == 0 {
		return []MatchCandidate{}, nil
	}

	all, err := u.ads.ListAll(ctx)
	if err != nil {
		return nil, ErrUnavailable
	}

	candidates := make([]matching.Candidate, 0, len(all))
	for _, a := range all {
		eligible, err := u.visibility.CompanyEligible(ctx, a.CompanyID)
		if err != nil {
			return nil, ErrUnavailable
		}
		if !eligible {
			continue
		}
		candidates = append(candidates, matching.Candidate{ID: a.ID, Skills: a.Skills})
	}

	out := toMatchCandidates(matching.Rank(subject.Skills, candidates))
	u.toCache(ctx, key, out)
	return out, nil
}

func (u *Matching) fromCache(ctx context.Context, key string) ([]MatchCandidate, bool) {
	if u.cache == nil {
		return nil, false
	}
	var cached []MatchCandidate
	hit, err := u.cache.GetJSON(ctx, key, &cached)
	if err != nil || !hit {
		return nil, false
	}
	return cached, true
}

func (u *Matching) toCache(ctx context.Context, key string, value []MatchCandidate) {
	if u.cache == nil {
		return
	}
	_ = u.cache.SetJSON(ctx, key, value, matchCacheTTL)
}

func toMatchCandidates(ranked []matching.Ranked) []MatchCandidate {
	out := make([]MatchCandidate, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, MatchCandidate{ID: r.ID, Overlap: r.Overlap})
	}
	return out
}

func adMatchCacheKey(adID uuid.UUID) string {
	return fmt.Sprintf("matches:ad:%s", adID)
}

func resumeMatchCacheKey(resumeID uuid.UUID) string {
	return fmt.Sprintf("matches:resume:%s", resumeID)
}
