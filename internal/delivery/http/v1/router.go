package v1

import (
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	ProfileUC     domain.ProfileUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	Tokens        *token.Service // nil in remote mode
	Verifier      *auth.Verifier // nil in local mode
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	loginLimiter := middleware.LoginRateLimit(deps.Config)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.Tokens, deps.Verifier, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.Tokens, deps.Config, loginLimiter)
		NewProfileHandler(v1, protected, deps.ProfileUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
	}

	return r
}
