package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-api/adapters/http"
	"github.com/khoahotran/portfolio-api/adapters/mail"
	"github.com/khoahotran/portfolio-api/adapters/media_storage"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	contactUC "github.com/khoahotran/portfolio-api/internal/application/usecase/contact"
	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio API Server...", zap.String("env", cfg.App.Env))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := tracing.Setup(cfg.Tracing.OTLPEndpoint, "portfolio-api", appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracing", err)
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	if cfg.DB.AutoMigrate {
		if err := persistence.RunMigrations(cfg.DB.MigrationsPath, cfg.DB.DSN, appLogger); err != nil {
			appLogger.Fatal("Cannot apply migrations", err)
		}
	}

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	var publisher service.EventPublisher = event.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		appLogger.Warn("Kafka brokers not configured, content events are dropped")
	}

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("Cloudinary unavailable, file uploads are rejected", zap.Error(err))
		uploader = media_storage.NewUnconfiguredUploader()
	}
	mailer := mail.NewSMTPMailer(cfg, appLogger)

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	contactRepo := persistence.NewPostgresContactRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan, cfg.Auth.RefreshTokenLifespan)
	blacklist := persistence.NewRedisTokenBlacklist(redisClient)

	// Use Cases
	identifyUseCase := authUC.NewIdentifyUseCase(userRepo, jwtSvc)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	refreshUseCase := authUC.NewRefreshUseCase(userRepo, jwtSvc, blacklist, appLogger)
	logoutUseCase := authUC.NewLogoutUseCase(jwtSvc, blacklist)
	registerUseCase := authUC.NewRegisterUseCase(userRepo, appLogger)
	currentUserUseCase := authUC.NewCurrentUserUseCase(userRepo)

	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, uploader, publisher, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	getProjectUseCase := projectUC.NewGetProjectUseCase(projectRepo)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, uploader, publisher, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, publisher, appLogger)

	skillUseCase := skillUC.NewSkillUseCase(skillRepo, publisher, appLogger)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo, publisher, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, publisher, appLogger)
	contactUseCase := contactUC.NewContactUseCase(contactRepo, mailer, publisher, cfg.Mail.Operator, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, uploader, publisher, appLogger)

	// HTTP Handlers
	router := httpAdapter.NewRouter(httpAdapter.Dependencies{
		Logger:          appLogger,
		IdentifyUseCase: identifyUseCase,
		AuthHandler: httpAdapter.NewAuthHandler(
			loginUseCase,
			refreshUseCase,
			logoutUseCase,
			registerUseCase,
			currentUserUseCase,
		),
		ProjectHandler: httpAdapter.NewProjectHandler(
			createProjectUseCase,
			listProjectsUseCase,
			getProjectUseCase,
			updateProjectUseCase,
			deleteProjectUseCase,
		),
		SkillHandler:      httpAdapter.NewSkillHandler(skillUseCase),
		EducationHandler:  httpAdapter.NewEducationHandler(educationUseCase),
		ExperienceHandler: httpAdapter.NewExperienceHandler(experienceUseCase),
		ContactHandler:    httpAdapter.NewContactHandler(contactUseCase),
		ProfileHandler:    httpAdapter.NewProfileHandler(profileUseCase),
		SiteHandler:       httpAdapter.NewSiteHandler(cfg.Site),
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		appLogger.Error("Failed to flush traces", err)
	}
	appLogger.Info("Server exited")
}
