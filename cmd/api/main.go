package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goals-project-backend/config"
	_ "goals-project-backend/docs" // Important for Swagger
	"goals-project-backend/internal/delivery/http/middleware"
	v1 "goals-project-backend/internal/delivery/http/v1"
	"goals-project-backend/internal/domain"
	"goals-project-backend/internal/repository/postgres"
	"goals-project-backend/internal/usecase"
	"goals-project-backend/pkg/auth"
	"goals-project-backend/pkg/database"
	"goals-project-backend/pkg/logger"
	"goals-project-backend/pkg/metrics"
	"goals-project-backend/pkg/redis"
	"goals-project-backend/pkg/security"
	"goals-project-backend/pkg/security/antivirus"
	"goals-project-backend/pkg/storage"
	"goals-project-backend/pkg/week"

	goredis "github.com/redis/go-redis/v9"
)

// @title           Goals Project API
// @version         1.0
// @description     Weekly goals, evidence, rankings and compatibility matching.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting goals backend", "port", cfg.Port, "timezone", cfg.Timezone.String())
	production := os.Getenv("GIN_MODE") == "release"
	environment := "development"
	if production {
		environment = "production"
	}
	audit := security.InitSecurityLogger("goals-backend", environment)
	defer audit.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Optional infrastructure: Redis and object storage
	redisClient, err := redis.Connect(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	if err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Keep the interface nil unless a store exists
	var evidenceStore domain.ObjectStore
	var storePinger usecase.Pinger
	publicBaseURL := cfg.SupabaseUrl + "/storage/v1/object/public"
	s3Client, err := storage.NewS3Client(ctx, storage.Config{
		Endpoint:        cfg.StorageEndpoint(),
		Region:          cfg.StorageRegion,
		AccessKeyID:     cfg.StorageAccessKeyID,
		SecretAccessKey: cfg.StorageSecretAccessKey,
		PublicBaseURL:   publicBaseURL,
	})
	switch {
	case err == nil:
		store := storage.NewStore(s3Client, cfg.EvidenceBucket, publicBaseURL)
		evidenceStore = store
		storePinger = store
	case errors.Is(err, storage.ErrNotConfigured):
		logger.Log.Warn("Evidence storage not configured, uploads disabled")
	default:
		logger.Log.Error("Failed to create storage client", "error", err)
	}

	var scanner antivirus.Scanner
	var scannerPinger usecase.Pinger
	if cfg.ClamAVAddress != "" {
		clam := antivirus.NewClamAV(cfg.ClamAVAddress, 30*time.Second)
		scanner = clam
		scannerPinger = clam
	} else {
		logger.Log.Warn("CLAMAV_ADDRESS not set, evidence is stored without malware scanning")
	}

	var metricsManager *metrics.Manager
	if cfg.MetricsEnabled {
		metricsManager = metrics.NewManager(metrics.WithRuntimeCollectors())
	}

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	macroRepo := postgres.NewMacroGoalRepository(dbPool)
	microRepo := postgres.NewMicroGoalRepository(dbPool)
	evidenceRepo := postgres.NewEvidenceRepository(dbPool)
	reviewRepo := postgres.NewReviewRepository(dbPool)
	rankingRepo := postgres.NewRankingRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)

	// 6. Setup UseCases
	validate := usecase.NewValidator()
	calc := week.NewCalculator(cfg.Timezone, nil)

	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	goalUC := usecase.NewGoalUsecase(macroRepo, calc, validate)
	rankingUC := usecase.NewRankingUsecase(rankingRepo, microRepo, calc, metricsManager)
	weeklyUC := usecase.NewWeeklyGoalUsecase(microRepo, macroRepo, evidenceRepo, rankingUC, calc, validate, metricsManager)
	evidenceUC := usecase.NewEvidenceUsecase(evidenceRepo, microRepo, evidenceStore,
		security.NewUploadLimiter(redisClient, cfg.EvidenceDailyLimit), audit, metricsManager,
		usecase.EvidenceOptions{
			MaxBytes:     cfg.EvidenceMaxUploadMB << 20,
			MaxDimension: cfg.EvidenceMaxDimension,
			JPEGQuality:  cfg.EvidenceJPEGQuality,
			TTL:          time.Duration(cfg.EvidenceTTLDays) * 24 * time.Hour,
			Scanner:      scanner,
		})
	reviewUC := usecase.NewReviewUsecase(microRepo, evidenceRepo, reviewRepo, calc, validate)
	matchUC := usecase.NewMatchUsecase(profileRepo, matchRepo, validate, metricsManager)
	dashboardUC := usecase.NewDashboardUsecase(profileRepo, macroRepo, microRepo, evidenceRepo, calc)
	adminUC := usecase.NewAdminUsecase(adminRepo, profileRepo, validate, audit)
	healthUC := usecase.NewHealthUsecase(map[string]usecase.Pinger{
		"database": dbPool,
		"redis":    redisPinger(redisClient),
		"storage":  storePinger,
		"clamav":   scannerPinger,
	})

	// 7. Setup Auth (Supabase JWKS + HS256 secret)
	jwksProvider := auth.NewProvider(cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json")
	verifier := auth.NewVerifier(cfg.SupabaseJWTSecret, jwksProvider)

	rateLimiter := middleware.NewRateLimiter(redisClient, audit)
	rateLimiter.StartCleanup(ctx, 5*time.Minute)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:    profileUC,
		GoalUC:       goalUC,
		WeeklyGoalUC: weeklyUC,
		EvidenceUC:   evidenceUC,
		ReviewUC:     reviewUC,
		RankingUC:    rankingUC,
		MatchUC:      matchUC,
		DashboardUC:  dashboardUC,
		AdminUC:      adminUC,
		HealthUC:     healthUC,
		Verifier:     verifier,
		Calculator:   calc,
		RateLimiter:  rateLimiter,
		Metrics:      metricsManager,
		Audit:        audit,
		Config:       cfg,
		Production:   production,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func redisPinger(client *goredis.Client) usecase.Pinger {
	if client == nil {
		return nil
	}
	return usecase.PingFunc(func(ctx context.Context) error {
		return redis.HealthCheck(ctx, client)
	})
}
