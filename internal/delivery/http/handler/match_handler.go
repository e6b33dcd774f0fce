package handler

import (
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/domain/account"
	"jobmatch/internal/domain/match"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// MatchHandler drives the bilateral approval lifecycle. The acting party is
// derived from the authenticated role, and each side may only act through an
// ad or resume it owns.
type MatchHandler struct {
	approval usecase.ApprovalUsecase
	ads      usecase.AdUsecase
	resumes  usecase.ResumeUsecase
	profiles usecase.ProfileUsecase
}

type matchActionRequest struct {
	AdID     uuid.UUID `json:"ad_id"`
	ResumeID uuid.UUID `json:"resume_id"`
}

func NewMatchHandler(
	approval usecase.ApprovalUsecase,
	ads usecase.AdUsecase,
	resumes usecase.ResumeUsecase,
	profiles usecase.ProfileUsecase,
) *MatchHandler {
	return &MatchHandler{approval: approval, ads: ads, resumes: resumes, profiles: profiles}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/approve", h.Approve)
	r.Post("/reject", h.Reject)
	r.Get("/ad/:adId", h.ListForAd)
	r.Get("/resume/:resumeId", h.ListForResume)
}

func (h *MatchHandler) Approve(c fiber.Ctx) error {
	req, party, appErr := h.action(c)
	if appErr != nil {
		return appErr
	}

	view, err := h.approval.ProposeOrApprove(c.Context(), req.AdID, req.ResumeID, party)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}

func (h *MatchHandler) Reject(c fiber.Ctx) error {
	req, party, appErr := h.action(c)
	if appErr != nil {
		return appErr
	}

	view, err := h.approval.Reject(c.Context(), req.AdID, req.ResumeID, party)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}

func (h *MatchHandler) ListForAd(c fiber.Ctx) error {
	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid ad id", nil, err)
	}
	if appErr := h.requireAdOwner(c, adID); appErr != nil {
		return appErr
	}

	states, appErr := statesFromQuery(c)
	if appErr != nil {
		return appErr
	}

	views, err := h.approval.ListMatchesForAd(c.Context(), adID, states...)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, views)
}

func (h *MatchHandler) ListForResume(c fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("resumeId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}
	if appErr := h.requireResumeOwner(c, resumeID); appErr != nil {
		return appErr
	}

	states, appErr := statesFromQuery(c)
	if appErr != nil {
		return appErr
	}

	views, err := h.approval.ListMatchesForResume(c.Context(), resumeID, states...)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, views)
}

// action parses the request body and checks the acting side owns its half of
// the pair before any state moves.
func (h *MatchHandler) action(c fiber.Ctx) (matchActionRequest, match.Party, *middleware.AppError) {
	var req matchActionRequest
	if err := c.Bind().Body(&req); err != nil {
		return req, "", middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	role, ok := c.Locals(middleware.CtxRoleKey).(account.Role)
	if !ok {
		return req, "", middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	switch role {
	case account.RoleCompany:
		if appErr := h.requireAdOwner(c, req.AdID); appErr != nil {
			return req, "", appErr
		}
		return req, match.PartyCompany, nil
	case account.RoleProfessional:
		if appErr := h.requireResumeOwner(c, req.ResumeID); appErr != nil {
			return req, "", appErr
		}
		return req, match.PartyProfessional, nil
	default:
		return req, "", middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}
}

func (h *MatchHandler) requireAdOwner(c fiber.Ctx, adID uuid.UUID) *middleware.AppError {
	accountID, ok := middleware.AccountIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	company, err := h.profiles.CompanyForAccount(c.Context(), accountID)
	if err != nil {
		return usecaseError(err)
	}
	a, err := h.ads.GetAd(c.Context(), adID)
	if err != nil {
		return usecaseError(err)
	}
	if a.CompanyID != company.ID {
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}
	return nil
}

func (h *MatchHandler) requireResumeOwner(c fiber.Ctx, resumeID uuid.UUID) *middleware.AppError {
	accountID, ok := middleware.AccountIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	professional, err := h.profiles.ProfessionalForAccount(c.Context(), accountID)
	if err != nil {
		return usecaseError(err)
	}
	res, err := h.resumes.GetResume(c.Context(), resumeID)
	if err != nil {
		return usecaseError(err)
	}
	if res.ProfessionalID != professional.ID {
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}
	return nil
}

func statesFromQuery(c fiber.Ctx) ([]match.State, *middleware.AppError) {
	raw := c.Query("state")
	if raw == "" {
		return nil, nil
	}
	s := match.State(raw)
	if !s.Valid() {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid match state", nil, nil)
	}
	return []match.State{s}, nil
}
