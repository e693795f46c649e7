package v1

import (
	"go-onboarding-backend/config"
	"go-onboarding-backend/internal/delivery/http/middleware"
	"go-onboarding-backend/internal/delivery/http/response"
	"go-onboarding-backend/internal/domain"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	UserUC       domain.UserUsecase
	TaskUC       domain.TaskUsecase
	OnboardingUC domain.OnboardingUsecase
	TemplateUC   domain.TemplateUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// CORS must run before anything that can short-circuit the request.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes. Login gets its own tighter limiter keyed by IP.
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window)))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	{
		NewAuthHandler(public, protected, deps.AuthUC)
		NewUserHandler(protected, deps.UserUC)
		NewTaskHandler(protected, deps.TaskUC)
		NewOnboardingHandler(protected, deps.OnboardingUC)
		NewTemplateHandler(protected, deps.TemplateUC)
	}

	return r
}
