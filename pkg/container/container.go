package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/infrastructure/blob"
	"portfolio-backend/pkg/ai"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/render"

	// Auth domain imports
	"portfolio-backend/internal/domains/auth"
	authHandler "portfolio-backend/internal/domains/auth/handler"
	authRepo "portfolio-backend/internal/domains/auth/repository"
	authService "portfolio-backend/internal/domains/auth/service"

	// Editor domain imports
	"portfolio-backend/internal/domains/editor"
	editorHandler "portfolio-backend/internal/domains/editor/handler"
	editorService "portfolio-backend/internal/domains/editor/service"

	// Portfolio domain imports
	"portfolio-backend/internal/domains/portfolio"
	portfolioHandler "portfolio-backend/internal/domains/portfolio/handler"
	portfolioRepo "portfolio-backend/internal/domains/portfolio/repository"
	portfolioService "portfolio-backend/internal/domains/portfolio/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// Infrastructure - singletons shared across domains
	Config     *config.Config
	Blobs      blob.Store
	JWTManager *jwt.Manager
	Refiner    editor.Refiner

	// Repository layer
	PortfolioRepo portfolio.Repository
	SecretRepo    auth.SecretRepository

	// Service layer
	PortfolioService portfolio.Service
	AuthService      auth.Service
	EditorService    editor.Service

	// Handler layer
	PortfolioHandler *portfolioHandler.PortfolioHandler
	ExportHandler    *portfolioHandler.ExportHandler
	AuthHandler      *authHandler.AuthHandler
	EditorHandler    *editorHandler.EditorHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (blob store, JWT, AI client) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE BLOB STORE
	// ========================================
	log.Printf("🗄️  Initializing blob store (driver: %s)...", cfg.Storage.Driver)

	switch cfg.Storage.Driver {
	case "redis":
		store := blob.NewRedisStore(
			cfg.Redis.Host,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.KeyPrefix,
		)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := store.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.Blobs = store
	default:
		store, err := blob.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to init file store: %w", err)
		}
		c.Blobs = store
	}
	log.Println("✅ Blob store ready")

	// ========================================
	// STEP 3: JWT + REFINEMENT COLLABORATOR
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.SessionExpiry)*time.Hour)
	c.Refiner = ai.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if cfg.Gemini.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set - refine requests will keep the original text")
	}

	// ========================================
	// STEP 4: REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.PortfolioRepo = portfolioRepo.NewBlobRepository(c.Blobs)
	c.SecretRepo = authRepo.NewBlobRepository(c.Blobs, cfg.Auth.BootstrapSecret)

	// ========================================
	// STEP 5: SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.PortfolioService = portfolioService.NewPortfolioService(c.PortfolioRepo)
	c.AuthService = authService.NewGateService(c.SecretRepo, c.JWTManager)
	c.EditorService = editorService.NewEditorService(c.PortfolioService, c.Refiner)

	// ========================================
	// STEP 6: HANDLERS
	// ========================================
	c.PortfolioHandler = portfolioHandler.NewPortfolioHandler(c.PortfolioService)
	c.ExportHandler = portfolioHandler.NewExportHandler(c.PortfolioService, render.NewHTMLRenderer(), render.NewPDFRenderer())
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.EditorHandler = editorHandler.NewEditorHandler(c.EditorService)

	log.Println("✅ Container initialized")
	return c, nil
}

// Cleanup giải phóng resources khi shutdown
func (c *Container) Cleanup() {
	if c.Blobs != nil {
		if err := c.Blobs.Close(); err != nil {
			log.Printf("⚠️  Failed to close blob store: %v", err)
		}
	}
}
