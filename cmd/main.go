package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"safetybot-backend/internal/config"
	"safetybot-backend/internal/features/audit_logs"
	"safetybot-backend/internal/features/avatar"
	"safetybot-backend/internal/features/blogs"
	"safetybot-backend/internal/features/chat"
	"safetybot-backend/internal/features/follows"
	"safetybot-backend/internal/features/journal"
	"safetybot-backend/internal/features/persona"
	"safetybot-backend/internal/features/translation"
	"safetybot-backend/internal/features/uploads"
	users_controllers "safetybot-backend/internal/features/users/controllers"
	users_middleware "safetybot-backend/internal/features/users/middleware"
	users_models "safetybot-backend/internal/features/users/models"
	users_services "safetybot-backend/internal/features/users/services"
	"safetybot-backend/internal/features/worklog"
	"safetybot-backend/internal/storage"
	env_utils "safetybot-backend/internal/util/env"
	"safetybot-backend/internal/util/logger"
	_ "safetybot-backend/swagger" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Safety Bot Backend API
// @version 1.0
// @description API for the worker safety companion backend

// @host localhost:4010
// @BasePath /api/v1
// @schemes http
func main() {
	log := logger.GetLogger()

	runMigrations(log)

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	// Add GZIP compression middleware
	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		// Don't compress already compressed files
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf", ".mp4"},
		),
	))

	enableCors(ginApp)
	setUpRoutes(ginApp)
	setUpDependencies()
	runBackgroundTasks(log)

	startServerWithGracefulShutdown(log, ginApp)
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	cfg := config.GetEnv()
	srv := &http.Server{
		Addr:    host + ":" + cfg.HTTPPort,
		Handler: app,
	}

	go func() {
		log.Info("Starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	log.Info("Safety Bot backend is running!", "http", "http://localhost:"+cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// The context is used to inform the server it has 10 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Mount Swagger UI
	v1.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes (only user auth routes should be public)
	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(v1)

	// Setup auth middleware
	userService := users_services.GetUserService()
	authMiddleware := users_middleware.AuthMiddleware(userService)

	// Protected routes
	protected := v1.Group("")
	protected.Use(authMiddleware)

	userController.RegisterProtectedRoutes(protected)
	journal.GetJournalController().RegisterRoutes(protected)
	blogs.GetBlogController().RegisterRoutes(protected)
	follows.GetFollowController().RegisterRoutes(protected)
	chat.GetChatController().RegisterRoutes(protected)
	translation.GetTranslationController().RegisterRoutes(protected)
	worklog.GetReportController().RegisterRoutes(protected)
	avatar.GetAvatarController().RegisterRoutes(protected)
	uploads.GetUploadController().RegisterRoutes(protected)
	audit_logs.GetAuditLogController().RegisterRoutes(protected)
}

func setUpDependencies() {
	audit_logs.SetupDependencies()
}

func runBackgroundTasks(log *slog.Logger) {
	log.Info("Preparing to run background tasks...")

	if uploadService := uploads.GetUploadService(); uploadService != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := uploadService.EnsureBucket(ctx); err != nil {
			log.Error("Failed to ensure uploads bucket", "error", err)
			os.Exit(1)
		}
	}

	persona.StartCron()
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files. So if we changed files, we generate
// new docs, but still need to restart the server to see them.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	storage.AutoMigrate(
		&users_models.User{},
		&audit_logs.AuditLog{},
		&journal.JournalEntry{},
		&blogs.BlogPost{},
		&blogs.Comment{},
		&blogs.PostLike{},
		&blogs.PostBookmark{},
		&blogs.CommentLike{},
		&follows.Follow{},
		&chat.ChatMessage{},
	)
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// Setup CORS
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
				"Access-Control-Allow-Methods",
				"Access-Control-Allow-Headers",
				"Access-Control-Allow-Origin",
			},
			AllowCredentials: true,
		}))
	}
}
