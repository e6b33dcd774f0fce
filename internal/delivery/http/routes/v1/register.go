package v1

import (
	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/domain/account"
	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/repository"
	"jobmatch/internal/usecase"
	"jobmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// Deps carries the shared infrastructure the v1 surface is wired from.
type Deps struct {
	Config config.Config
	DB     database.DB
	Logger *zap.Logger
	Cache  usecase.SearchCache
	Hub    *ws.Hub
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	accountRepo := repository.NewPostgresAccountRepository(d.DB)
	companyRepo := repository.NewPostgresCompanyRepository(d.DB)
	professionalRepo := repository.NewPostgresProfessionalRepository(d.DB)
	skillRepo := repository.NewPostgresSkillRepository(d.DB)
	adRepo := repository.NewPostgresAdRepository(d.DB)
	resumeRepo := repository.NewPostgresResumeRepository(d.DB)
	recordRepo := repository.NewPostgresMatchRecordRepository(d.DB)

	notifier := ws.NewConfirmationNotifier(d.Hub, adRepo, resumeRepo, companyRepo, professionalRepo, d.Logger)
	visibility := usecase.NewApprovalVisibility(companyRepo, professionalRepo)

	authUC := usecase.NewAuthUsecase(accountRepo, companyRepo, professionalRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(companyRepo, professionalRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	adUC := usecase.NewAdUsecase(adRepo, recordRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, recordRepo)
	skillSetUC := usecase.NewSkillSetUsecase(adRepo, resumeRepo, skillRepo, d.Cache)
	matchingUC := usecase.NewMatchingUsecase(adRepo, resumeRepo, visibility, d.Cache)
	approvalUC := usecase.NewApprovalUsecase(recordRepo, adRepo, resumeRepo, notifier, d.Logger)

	authHandler := handler.NewAuthHandler(authUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	adHandler := handler.NewAdHandler(adUC, skillSetUC, matchingUC, profileUC)
	resumeHandler := handler.NewResumeHandler(resumeUC, skillSetUC, matchingUC, profileUC)
	matchHandler := handler.NewMatchHandler(approvalUC, adUC, resumeUC, profileUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	wsHandler := ws.NewHandler(d.Hub, d.Logger)

	authHandler.RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())

	skills := protected.Group("/skills")
	skillHandler.RegisterReadRoutes(skills)
	skillHandler.RegisterWriteRoutes(skills.Group("", authMw.RequireRole(account.RoleAdmin)))

	adHandler.RegisterRoutes(protected.Group("/ads", authMw.RequireRole(account.RoleCompany)))
	resumeHandler.RegisterRoutes(protected.Group("/resumes", authMw.RequireRole(account.RoleProfessional)))
	matchHandler.RegisterRoutes(protected.Group("/matches"))
	profileHandler.RegisterAdminRoutes(protected.Group("/admin", authMw.RequireRole(account.RoleAdmin)))

	protected.Get("/ws", wsHandler.HandleNotifications)
}
