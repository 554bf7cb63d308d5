package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tredora.backend/internal/config"
	"tredora.backend/internal/infrastructure/ai"
	"tredora.backend/internal/infrastructure/repositories"
	"tredora.backend/internal/interfaces/http/handlers"
	"tredora.backend/internal/interfaces/http/middleware"
	"tredora.backend/internal/usecases"
	"tredora.backend/pkg/jwt"
	"tredora.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	bankRepo := repositories.NewBankRepository(db)
	emailTemplateRepo := repositories.NewEmailTemplateRepository(db)
	formTemplateRepo := repositories.NewFormTemplateRepository(db)
	requestRepo := repositories.NewRequestRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// External services
	geminiClient := ai.NewGeminiClient(cfg.Gemini)

	// Initialize usecases
	tokenUsecase := usecases.NewTokenUsecase(tokenRepo, userRepo, jwtService)
	authUsecase := usecases.NewAuthUsecase(userRepo, otpRepo, tokenUsecase, jwtService, uow)
	bankUsecase := usecases.NewBankUsecase(bankRepo)
	emailTemplateUsecase := usecases.NewEmailTemplateUsecase(emailTemplateRepo)
	formTemplateUsecase := usecases.NewFormTemplateUsecase(formTemplateRepo, uow)
	requestUsecase := usecases.NewRequestUsecase(requestRepo, userRepo, formTemplateRepo)
	analyticsUsecase := usecases.NewAnalyticsUsecase(userRepo, requestRepo, formTemplateRepo)
	agentUsecase := usecases.NewAgentUsecase(geminiClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, tokenUsecase)
	bankHandler := handlers.NewBankHandler(bankUsecase)
	emailTemplateHandler := handlers.NewEmailTemplateHandler(emailTemplateUsecase)
	formTemplateHandler := handlers.NewFormTemplateHandler(formTemplateUsecase)
	requestHandler := handlers.NewRequestHandler(requestUsecase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUsecase)
	agentHandler := handlers.NewAgentHandler(agentUsecase)

	// Set up router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	registerAPIV1Routes(r, routeDeps{
		authHandler:          authHandler,
		bankHandler:          bankHandler,
		emailTemplateHandler: emailTemplateHandler,
		formTemplateHandler:  formTemplateHandler,
		requestHandler:       requestHandler,
		analyticsHandler:     analyticsHandler,
		agentHandler:         agentHandler,
		authMiddleware:       middleware.AuthMiddleware(jwtService),
	})

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}
