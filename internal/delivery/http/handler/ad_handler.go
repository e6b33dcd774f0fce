package handler

import (
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// AdHandler serves the company side: ad CRUD, the ad's skill set, and match
// discovery for an ad. The acting company is resolved from the authenticated
// account on every call.
type AdHandler struct {
	ads      usecase.AdUsecase
	skillSet usecase.SkillSetUsecase
	matching usecase.MatchingUsecase
	profiles usecase.ProfileUsecase
}

type adRequest struct {
	Description string `json:"description"`
	Location    string `json:"location"`
	MinSalary   int    `json:"min_salary"`
	MaxSalary   int    `json:"max_salary"`
}

type adSkillRequest struct {
	SkillID uuid.UUID `json:"skill_id"`
}

func NewAdHandler(
	ads usecase.AdUsecase,
	skillSet usecase.SkillSetUsecase,
	matching usecase.MatchingUsecase,
	profiles usecase.ProfileUsecase,
) *AdHandler {
	return &AdHandler{ads: ads, skillSet: skillSet, matching: matching, profiles: profiles}
}

func (h *AdHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.ListMine)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)

	r.Post("/:id/skills", h.AddSkill)
	r.Delete("/:id/skills/:skillId", h.RemoveSkill)

	r.Get("/:id/matches", h.Matches)
}

func (h *AdHandler) Create(c fiber.Ctx) error {
	companyID, appErr := h.companyID(c)
	if appErr != nil {
		return appErr
	}

	var req adRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.ads.CreateAd(c.Context(), companyID, adInput(req))
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Ad created successfully", created)
}

func (h *AdHandler) ListMine(c fiber.Ctx) error {
	companyID, appErr := h.companyID(c)
	if appErr != nil {
		return appErr
	}

	items, err := h.ads.ListCompanyAds(c.Context(), companyID)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *AdHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid ad id", nil, err)
	}

	item, err := h.ads.GetAd(c.Context(), id)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}

func (h *AdHandler) Update(c fiber.Ctx) error {
	companyID, appErr := h.companyID(c)
	if appErr != nil {
		return appErr
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid ad id", nil, err)
	}

	var req adRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.ads.UpdateAd(c.Context(), companyID, id, adInput(req))
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *AdHandler) Delete(c fiber.Ctx) error {
	companyID, appErr := h.companyID(c)
	if appErr != nil {
		return appErr
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid ad id", nil, err)
	}

	if err := h.ads.DeleteAd(c.Context(), companyID, id); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Ad deleted successfully", nil)
}

func (h *AdHandler) AddSkill(c fiber.Ctx) error {
	companyID, appErr := h.companyID(c)
	if appErr != nil {
		return appErr
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid ad id", nil, err)
	}

	var req adSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.skillSet.AddAdSkill(c.Context(), companyID, id, req.SkillID); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill added to ad", nil)
}

func (h *AdHandler) RemoveSkill(c fiber.Ctx) error {
	companyID, appErr := h.companyID(c)
	if appErr != nil {
		return appErr
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid ad id", nil, err)
	}
	skillID, err := uuid.Parse(c.Params("skillId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
	}

	if err := h.skillSet.RemoveAdSkill(c.Context(), companyID, id, skillID); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill removed from ad", nil)
}

func (h *AdHandler) Matches(c fiber.Ctx) error {
	if _, appErr := h.companyID(c); appErr != nil {
		return appErr
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid ad id", nil, err)
	}

	items, err := h.matching.FindMatchesForAd(c.Context(), id)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *AdHandler) companyID(c fiber.Ctx) (uuid.UUID, *middleware.AppError) {
	accountID, ok := middleware.AccountIDFromCtx(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	company, err := h.profiles.CompanyForAccount(c.Context(), accountID)
	if err != nil {
		return uuid.Nil, usecaseError(err)
	}
	return company.ID, nil
}

func adInput(req adRequest) usecase.AdInput {
	return usecase.AdInput{
		Description: req.Description,
		Location:    req.Location,
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
	}
}
