package usecase

import (
	"context"
	"errors"

	"jobmatch/internal/domain/match"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxStateRetries bounds the optimistic-update loop before the race is
// surfaced to the caller.
const maxStateRetries = 3

// ErrMatchGone reports a record removed mid-operation by a cascading delete.
var ErrMatchGone = errors.New("match record gone")

// MatchNotifier receives the confirmation side effect. Failures are the
// notifier's problem; they never roll back the state transition.
type MatchNotifier interface {
	NotifyMatchConfirmed(ctx context.Context, rec match.Record)
}

type MatchView struct {
	ID       uuid.UUID   `json:"id"`
	AdID     uuid.UUID   `json:"ad_id"`
	ResumeID uuid.UUID   `json:"resume_id"`
	State    match.State `json:"state"`
}

type ApprovalUsecase interface {
	ProposeOrApprove(ctx context.Context, adID, resumeID uuid.UUID, by match.Party) (MatchView, error)
	Reject(ctx context.Context, adID, resumeID uuid.UUID, by match.Party) (MatchView, error)
	ListMatchesForAd(ctx context.Context, adID uuid.UUID, states ...match.State) ([]MatchView, error)
	ListMatchesForResume(ctx context.Context, resumeID uuid.UUID, states ...match.State) ([]MatchView, error)
}

type Approval struct {
	records  repository.MatchRecordRepository
	ads      repository.AdRepository
	resumes  repository.ResumeRepository
	notifier MatchNotifier
	logger   *zap.Logger
}

func NewApprovalUsecase(
	records repository.MatchRecordRepository,
	ads repository.AdRepository,
	resumes repository.ResumeRepository,
	notifier MatchNotifier,
	logger *zap.Logger,
) *Approval {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Approval{records: records, ads: ads, resumes: resumes, notifier: notifier, logger: logger}
}

// ProposeOrApprove records one side's approval of the pair, creating the
// match record on first contact. When the other side has already approved,
// the record confirms and the notification fires exactly once: only the
// caller whose compare-and-set lands the Confirmed transition notifies.
// Approvals on a terminal record are a no-op reporting the current state.
func (u *Approval) ProposeOrApprove(ctx context.Context, adID, resumeID uuid.UUID, by match.Party) (MatchView, error) {
	if err := u.validatePair(ctx, adID, resumeID); err != nil {
		return MatchView{}, err
	}

	rec, _, err := u.records.FindOrCreate(ctx, adID, resumeID)
	if err != nil {
		return MatchView{}, ErrUnavailable
	}

	return u.advance(ctx, rec, func(cur match.State) (match.State, bool) {
		return match.NextOnApprove(cur, by)
	})
}

// Reject moves any non-terminal record to Rejected. Rejecting a terminal
// record reports the current state, mirroring the approval policy.
func (u *Approval) Reject(ctx context.Context, adID, resumeID uuid.UUID, _ match.Party) (MatchView, error) {
	if err := u.validatePair(ctx, adID, resumeID); err != nil {
		return MatchView{}, err
	}

	rec, _, err := u.records.FindOrCreate(ctx, adID, resumeID)
	if err != nil {
		return MatchView{}, ErrUnavailable
	}

	return u.advance(ctx, rec, match.NextOnReject)
}

func (u *Approval) ListMatchesForAd(ctx context.Context, adID uuid.UUID, states ...match.State) ([]MatchView, error) {
	recs, err := u.records.ListForAd(ctx, adID, states...)
	if err != nil {
		return nil, ErrUnavailable
	}
	return toMatchViews(recs), nil
}

func (u *Approval) ListMatchesForResume(ctx context.Context, resumeID uuid.UUID, states ...match.State) ([]MatchView, error) {
	recs, err := u.records.ListForResume(ctx, resumeID, states...)
	if err != nil {
		return nil, ErrUnavailable
	}
	return toMatchViews(recs), nil
}

// advance drives the record through next() with a bounded compare-and-set
// loop. A lost race reloads the record and retries; the transition plus its
// side effect happen at most once because exactly one CAS per target state
// can succeed.
func (u *Approval) advance(ctx context.Context, rec match.Record, next func(match.State) (match.State, bool)) (MatchView, error) {
	for attempt := 0; attempt < maxStateRetries; attempt++ {
		to, changed := next(rec.State)
		if !changed {
			return toMatchView(rec), nil
		}

		err := u.records.UpdateState(ctx, rec.ID, rec.State, to)
		if err == nil {
			rec.State = to
			if to == match.StateConfirmed {
				u.notifyConfirmed(ctx, rec)
			}
			return toMatchView(rec), nil
		}
		if !errors.Is(err, repository.ErrStateConflict) {
			if errors.Is(err, repository.ErrMatchNotFound) {
				return MatchView{}, ErrMatchGone
			}
			return MatchView{}, ErrUnavailable
		}

		rec, err = u.records.GetByPair(ctx, rec.AdID, rec.ResumeID)
		if err != nil {
			if errors.Is(err, repository.ErrMatchNotFound) {
				return MatchView{}, ErrMatchGone
			}
			return MatchView{}, ErrUnavailable
		}
	}
	return MatchView{}, ErrConcurrencyConflict
}

func (u *Approval) notifyConfirmed(ctx context.Context, rec match.Record) {
	if u.notifier == nil {
		return
	}
	u.logger.Info("match confirmed",
		zap.String("match_id", rec.ID.String()),
		zap.String("ad_id", rec.AdID.String()),
		zap.String("resume_id", rec.ResumeID.String()),
	)
	u.notifier.NotifyMatchConfirmed(ctx, rec)
}

func (u *Approval) validatePair(ctx context.Context, adID, resumeID uuid.UUID) error {
	if adID == uuid.Nil || resumeID == uuid.Nil {
		return ErrInvalidInput
	}
	if _, err := u.ads.GetByID(ctx, adID); err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return ErrAdNotFound
		}
		return ErrUnavailable
	}
	if _, err := u.resumes.GetByID(ctx, resumeID); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return ErrUnavailable
	}
	return nil
}

func toMatchView(rec match.Record) MatchView {
	return MatchView{ID: rec.ID, AdID: rec.AdID, ResumeID: rec.ResumeID, State: rec.State}
}

func toMatchViews(recs []match.Record) []MatchView {
	out := make([]MatchView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toMatchView(rec))
	}
	return out
}
