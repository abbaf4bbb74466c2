package v1

import (
	"time"

	"goals-project-backend/config"
	"goals-project-backend/internal/delivery/http/middleware"
	"goals-project-backend/internal/domain"
	"goals-project-backend/internal/usecase"
	"goals-project-backend/pkg/metrics"
	"goals-project-backend/pkg/security"
	"goals-project-backend/pkg/week"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC    domain.ProfileUsecase
	GoalUC       domain.GoalUsecase
	WeeklyGoalUC domain.WeeklyGoalUsecase
	EvidenceUC   domain.EvidenceUsecase
	ReviewUC     domain.ReviewUsecase
	RankingUC    domain.RankingUsecase
	MatchUC      domain.MatchUsecase
	DashboardUC  domain.DashboardUsecase
	AdminUC      domain.AdminUsecase
	HealthUC     usecase.HealthUsecase
	Verifier     middleware.TokenVerifier
	Calculator   *week.Calculator
	RateLimiter  *middleware.RateLimiter
	Metrics      *metrics.Manager // nil disables /metrics
	Audit        *security.SecurityLogger
	Config       *config.Config
	Production   bool
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, deps.Production)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware(middleware.GlobalConfig(deps.Config.RateLimitGlobalThreshold, window)))
	}

	// Public routes
	NewHealthHandler(v1, deps.HealthUC)
	NewWeekHandler(v1, deps.Calculator)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var uploadLimit []gin.HandlerFunc
	if deps.RateLimiter != nil {
		uploadLimit = append(uploadLimit, deps.RateLimiter.Middleware(middleware.UploadConfig(deps.Config.RateLimitUploadThreshold, window)))
	}
	maxUpload := int64(deps.Config.EvidenceMaxUploadMB) << 20

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier, deps.ProfileUC, deps.Audit))
	{
		NewProfileHandler(protected, deps.ProfileUC)
		NewGoalHandler(protected, deps.GoalUC)
		NewWeeklyGoalHandler(protected, deps.WeeklyGoalUC)
		NewEvidenceHandler(protected, deps.EvidenceUC, maxUpload, uploadLimit...)
		NewReviewHandler(protected, deps.ReviewUC)
		NewRankingHandler(protected, deps.RankingUC)
		NewMatchHandler(protected, deps.MatchUC)
		NewDashboardHandler(protected, deps.DashboardUC)
		NewAdminHandler(protected, deps.AdminUC, middleware.RequireRole(deps.Audit, domain.RoleAdmin))
	}

	return r
}
