package handler

import (
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type registerCompanyRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type registerProfessionalRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Location  string `json:"location"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register/company", h.RegisterCompany)
	r.Post("/register/professional", h.RegisterProfessional)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) RegisterCompany(c fiber.Ctx) error {
	var req registerCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	tokens, err := h.uc.RegisterCompany(c.Context(), usecase.RegisterCompanyInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return usecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, tokens)
}

func (h *AuthHandler) RegisterProfessional(c fiber.Ctx) error {
	var req registerProfessionalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	tokens, err := h.uc.RegisterProfessional(c.Context(), usecase.RegisterProfessionalInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Location:  req.Location,
	})
	if err != nil {
		return usecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, tokens)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	tokens, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return usecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, tokens)
}
