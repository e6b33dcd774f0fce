package ws

import (
	"context"
	"encoding/json"
	"time"

	"jobmatch/internal/domain/match"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MatchConfirmedEvent struct {
	Type      string `json:"type"`
	MatchID   string `json:"match_id"`
	AdID      string `json:"ad_id"`
	ResumeID  string `json:"resume_id"`
	Timestamp string `json:"timestamp"`
}

// ConfirmationNotifier pushes the confirmed-match event to both parties'
// accounts. It is fired at most once per match by the approval flow; delivery
// is best effort and never blocks or fails that flow.
type ConfirmationNotifier struct {
	hub           *Hub
	ads           repository.AdRepository
	resumes       repository.ResumeRepository
	companies     repository.CompanyRepository
	professionals repository.ProfessionalRepository
	logger        *zap.Logger
}

func NewConfirmationNotifier(
	hub *Hub,
	ads repository.AdRepository,
	resumes repository.ResumeRepository,
	companies repository.CompanyRepository,
	professionals repository.ProfessionalRepository,
	logger *zap.Logger,
) *ConfirmationNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfirmationNotifier{
		hub:           hub,
		ads:           ads,
		resumes:       resumes,
		companies:     companies,
		professionals: professionals,
		logger:        logger,
	}
}

func (n *ConfirmationNotifier) NotifyMatchConfirmed(ctx context.Context, rec match.Record) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MatchConfirmedEvent{
		Type:      "match_confirmed",
		MatchID:   rec.ID.String(),
		AdID:      rec.AdID.String(),
		ResumeID:  rec.ResumeID.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}

	if accountID, ok := n.companyAccount(ctx, rec); ok {
		n.hub.SendTo(accountID, payload)
	}
	if accountID, ok := n.professionalAccount(ctx, rec); ok {
		n.hub.SendTo(accountID, payload)
	}
}

func (n *ConfirmationNotifier) companyAccount(ctx context.Context, rec match.Record) (uuid.UUID, bool) {
	a, err := n.ads.GetByID(ctx, rec.AdID)
	if err != nil {
		n.logger.Warn("notify: ad lookup failed", zap.Error(err))
		return uuid.Nil, false
	}
	company, err := n.companies.GetByID(ctx, a.CompanyID)
	if err != nil {
		n.logger.Warn("notify: company lookup failed", zap.Error(err))
		return uuid.Nil, false
	}
	return company.AccountID, true
}

func (n *ConfirmationNotifier) professionalAccount(ctx context.Context, rec match.Record) (uuid.UUID, bool) {
	res, err := n.resumes.GetByID(ctx, rec.ResumeID)
	if err != nil {
		n.logger.Warn("notify: resume lookup failed", zap.Error(err))
		return uuid.Nil, false
	}
	professional, err := n.professionals.GetByID(ctx, res.ProfessionalID)
	if err != nil {
		n.logger.Warn("notify: professional lookup failed", zap.Error(err))
		return uuid.Nil, false
	}
	return professional.AccountID, true
}
