package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// usecaseError translates business errors into the single AppError shape the
// error middleware renders. Anything unmapped becomes a 500 with the cause
// attached for the server log only.
func usecaseError(err error) *middleware.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrAdNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Ad not found", nil, err)
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Professional not found", nil, err)
	case errors.Is(err, usecase.ErrMatchGone):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNameTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Skill name already taken", nil, err)
	case errors.Is(err, usecase.ErrSkillInUse):
		return middleware.NewAppError(fiber.StatusConflict, "Skill is still referenced", nil, err)
	case errors.Is(err, usecase.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Conflicting update, retry", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
