package handler

import (
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ResumeHandler mirrors AdHandler for the professional side.
type ResumeHandler struct {
	resumes  usecase.ResumeUsecase
	skillSet usecase.SkillSetUsecase
	matching usecase.MatchingUsecase
	profiles usecase.ProfileUsecase
}

type resumeRequest struct {
	Description string `json:"description"`
	Location    string `json:"location"`
	MinSalary   int    `json:"min_salary"`
	MaxSalary   int    `json:"max_salary"`
}

type resumeSkillRequest struct {
	SkillID uuid.UUID `json:"skill_id"`
}

func NewResumeHandler(
	resumes usecase.ResumeUsecase,
	skillSet usecase.SkillSetUsecase,
	matching usecase.MatchingUsecase,
	profiles usecase.ProfileUsecase,
) *ResumeHandler {
	return &ResumeHandler{resumes: resumes, skillSet: skillSet, matching: matching, profiles: profiles}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.ListMine)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
	r.Post("/:id/main", h.SetMain)

	r.Post("/:id/skills", h.AddSkill)
	r.Delete("/:id/skills/:skillId", h.RemoveSkill)

	r.Get("/:id/matches", h.Matches)
}

func (h *ResumeHandler) Create(c fiber.Ctx) error {
	professionalID, appErr := h.professionalID(c)
	if appErr != nil {
		return appErr
	}

	var req resumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.resumes.CreateResume(c.Context(), professionalID, resumeInput(req))
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Resume created successfully", created)
}

func (h *ResumeHandler) ListMine(c fiber.Ctx) error {
	professionalID, appErr := h.professionalID(c)
	if appErr != nil {
		return appErr
	}

	items, err := h.resumes.ListProfessionalResumes(c.Context(), professionalID)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ResumeHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	item, err := h.resumes.GetResume(c.Context(), id)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}

func (h *ResumeHandler) Update(c fiber.Ctx) error {
	professionalID, appErr := h.professionalID(c)
	if appErr != nil {
		return appErr
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	var req resumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.resumes.UpdateResume(c.Context(), professionalID, id, resumeInput(req))
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *ResumeHandler) Delete(c fiber.Ctx) error {
	professionalID, appErr := h.professionalID(c)
	if appErr != nil {
		return appErr
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	if err := h.resumes.DeleteResume(c.Context(), professionalID, id); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Resume deleted successfully", nil)
}

func (h *ResumeHandler) SetMain(c fiber.Ctx) error {
	professionalID, appErr := h.professionalID(c)
	if appErr != nil {
		return appErr
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	if err := h.resumes.SetMainResume(c.Context(), professionalID, id); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Main resume updated", nil)
}

func (h *ResumeHandler) AddSkill(c fiber.Ctx) error {
	professionalID, appErr := h.professionalID(c)
	if appErr != nil {
		return appErr
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	var req resumeSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.skillSet.AddResumeSkill(c.Context(), professionalID, id, req.SkillID); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill added to resume", nil)
}

func (h *ResumeHandler) RemoveSkill(c fiber.Ctx) error {
	professionalID, appErr := h.professionalID(c)
	if appErr != nil {
		return appErr
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}
	skillID, err := uuid.Parse(c.Params("skillId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
	}

	if err := h.skillSet.RemoveResumeSkill(c.Context(), professionalID, id, skillID); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill removed from resume", nil)
}

func (h *ResumeHandler) Matches(c fiber.Ctx) error {
	if _, appErr := h.professionalID(c); appErr != nil {
		return appErr
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	items, err := h.matching.FindMatchesForResume(c.Context(), id)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ResumeHandler) professionalID(c fiber.Ctx) (uuid.UUID, *middleware.AppError) {
	accountID, ok := middleware.AccountIDFromCtx(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	professional, err := h.profiles.ProfessionalForAccount(c.Context(), accountID)
	if err != nil {
		return uuid.Nil, usecaseError(err)
	}
	return professional.ID, nil
}

func resumeInput(req resumeRequest) usecase.ResumeInput {
	return usecase.ResumeInput{
		Description: req.Description,
		Location:    req.Location,
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
	}
}
