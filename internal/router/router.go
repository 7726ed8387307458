package router

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/lucasmtr/blog-platform/backend/internal/handlers"
	"github.com/lucasmtr/blog-platform/backend/internal/middleware"
	"github.com/lucasmtr/blog-platform/backend/internal/models"
	"github.com/lucasmtr/blog-platform/backend/internal/repositories"
	"github.com/lucasmtr/blog-platform/backend/pkg/config"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
	e.HTTPErrorHandler = jsonErrorHandler
	log.Println("Global middleware configured.")
}

// jsonErrorHandler serializes every failure as {"error": "..."} so API
// clients get a uniform error envelope
func jsonErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = fmt.Sprintf("%v", he.Message)
		}
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"error": message})
}

// AutoMigrate runs schema migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	statusHandler := handlers.NewStatusHandler(db)
	e.GET("/api/status", statusHandler.Status)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)

	// --- Anonymous tier ---
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	authHandler.RegisterAuthRoutes(e)
	log.Println("Auth routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, commentRepo, likeRepo)
	postHandler.RegisterPublicPostRoutes(e, cfg.JWTSecret)
	log.Println("Public post routes configured.")

	// --- Authenticated tier (require JWT) ---
	authenticated := e.Group("")
	authenticated.Use(middleware.JWTAuth(cfg.JWTSecret))

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(authenticated)
	log.Println("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(authenticated)
	log.Println("Like routes configured.")

	// --- Admin tier ---
	admin := e.Group("")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret), middleware.AdminOnly())
	postHandler.RegisterAdminPostRoutes(admin)
	log.Println("Admin post routes configured.")

	// Static pages for the bundled frontend
	if cfg.PublicDir != "" {
		e.Static("/", cfg.PublicDir)
		log.Printf("Serving static files from %s.", cfg.PublicDir)
	}

	log.Println("All routes configured.")
}
