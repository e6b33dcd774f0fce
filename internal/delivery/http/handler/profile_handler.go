package handler

import (
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ProfileHandler covers the moderation surface: admins approve company and
// professional profiles, which makes them visible to match search.
type ProfileHandler struct {
	profiles usecase.ProfileUsecase
}

func NewProfileHandler(profiles usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/companies/:id/approve", h.ApproveCompany)
	r.Post("/professionals/:id/approve", h.ApproveProfessional)
}

func (h *ProfileHandler) ApproveCompany(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid company id", nil, err)
	}

	if err := h.profiles.ApproveCompany(c.Context(), id); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Company approved", nil)
}

func (h *ProfileHandler) ApproveProfessional(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid professional id", nil, err)
	}

	if err := h.profiles.ApproveProfessional(c.Context(), id); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Professional approved", nil)
}
