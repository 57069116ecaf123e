package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hiresage/recruitai/internal/agent"
	"github.com/hiresage/recruitai/internal/config"
	"github.com/hiresage/recruitai/internal/domain/fiber/handler"
	"github.com/hiresage/recruitai/internal/logger"
	"github.com/hiresage/recruitai/internal/middleware"
	"github.com/hiresage/recruitai/internal/model"
	"github.com/hiresage/recruitai/internal/repository"
	"github.com/hiresage/recruitai/internal/scheduler"
	"github.com/hiresage/recruitai/internal/service"
	"github.com/hiresage/recruitai/internal/usecase"
	"github.com/hiresage/recruitai/internal/util"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	appConfig := config.LoadAppConfig()
	zlog, err := logger.New(appConfig.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	db, err := connectDB()
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	ctx := context.Background()
	geminiService, err := service.NewGeminiService(ctx, zlog)
	if err != nil {
		zlog.Fatal("failed to init gemini service", zap.Error(err))
	}

	var textGen agent.TextGenerator = geminiService
	if config.LoadLLMConfig().Provider == "openrouter" {
		textGen = service.NewOpenRouterService(zlog)
		zlog.Info("using OpenRouter for text generation")
	}

	personaBuilder := agent.NewPersonaBuilder(textGen, zlog)
	evaluator := agent.NewEvaluator(textGen, zlog)
	profileExtractor := agent.NewProfileExtractor(textGen, zlog)
	jdClarifier := agent.NewJDClarifier(textGen, zlog)
	jdGenerator := agent.NewJDGenerator(textGen, zlog)

	jobRepo := repository.NewJobRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	userRepo := repository.NewUserRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	evalRepo := repository.NewEvaluationRepository(db)

	sched, err := scheduler.New(db, zlog)
	if err != nil {
		zlog.Fatal("failed to init scheduler", zap.Error(err))
	}
	sched.Start()
	sched.RescheduleActiveJobs()

	jobUsecase := usecase.NewJobUsecase(jobRepo, userRepo, notifRepo, sched, profileExtractor, zlog)
	candidateUsecase := usecase.NewCandidateUsecase(candidateRepo, jobRepo, geminiService, zlog)
	pipelineUsecase := usecase.NewPipelineUsecase(jobRepo, candidateRepo, evalRepo, personaBuilder, evaluator, zlog)
	jdUsecase := usecase.NewJDUsecase(jobRepo, jdClarifier, jdGenerator, zlog)
	notificationUsecase := usecase.NewNotificationUsecase(notifRepo)
	analyticsUsecase := usecase.NewAnalyticsUsecase(jobRepo, candidateRepo)

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal server error"
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    code,
				Message: message,
			}, err)
		},
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(healthcheck.New())
	app.Use(pprof.New())
	app.Use(middleware.RateLimiter(0, 0))

	api := app.Group("/api/v1", middleware.CurrentUser(userRepo))
	handler.NewJobHandler(jobUsecase).RegisterRoutes(api)
	handler.NewCandidateHandler(candidateUsecase).RegisterRoutes(api)
	handler.NewPipelineHandler(pipelineUsecase).RegisterRoutes(api)
	handler.NewJDHandler(jdUsecase).RegisterRoutes(api)
	handler.NewNotificationHandler(notificationUsecase).RegisterRoutes(api)
	handler.NewAnalyticsHandler(analyticsUsecase).RegisterRoutes(api)

	go func() {
		if err := app.Listen(appConfig.Port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.String("port", appConfig.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	if err := sched.Shutdown(); err != nil {
		zlog.Error("scheduler shutdown failed", zap.Error(err))
	}
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}
}

// connectDB opens the postgres connection. TranslateError is required so the
// unique-index guard on candidate evaluations surfaces as
// gorm.ErrDuplicatedKey.
func connectDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.LoadDBConfig().DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql pool: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	for _, ext := range []string{"uuid-ossp", "vector"} {
		if err := db.Exec(fmt.Sprintf("CREATE EXTENSION IF NOT EXISTS %q", ext)).Error; err != nil {
			return nil, fmt.Errorf("create extension %s: %w", ext, err)
		}
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.JobRequest{},
		&model.Candidate{},
		&model.CandidateEvaluation{},
		&model.Notification{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}
