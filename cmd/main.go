package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deskstore/internal/config"
	"deskstore/internal/features/audit_logs"
	"deskstore/internal/features/credentials"
	credentials_middleware "deskstore/internal/features/credentials/middleware"
	"deskstore/internal/features/orders"
	"deskstore/internal/features/principals"
	"deskstore/internal/features/products"
	system_healthcheck "deskstore/internal/features/system/healthcheck"
	"deskstore/internal/storage"
	cache_utils "deskstore/internal/util/cache"
	env_utils "deskstore/internal/util/env"
	"deskstore/internal/util/logger"
	"deskstore/internal/util/rate_limit"
	_ "deskstore/swagger" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title DeskStore Admin API
// @version 1.0
// @description API key management, request auditing and store administration
// @termsOfService http://swagger.io/terms/

// @host localhost:4010
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name access_token
func main() {
	log := logger.GetLogger()

	// Opens the connection and applies migrations on first use.
	storage.GetDb()

	if config.GetEnv().ValkeyHost != "" {
		cache_utils.TestCacheConnection()
	}

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.New()

	// The audit middleware sits outermost so every request, including
	// ones rejected by auth or recovered from a panic, lands in the
	// audit trail exactly once.
	ginApp.Use(audit_logs.RequestAuditMiddleware(
		audit_logs.GetAuditLogService(),
		config.GetEnv().APIKeyHeader,
	))
	ginApp.Use(gin.Recovery())

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

	startServerWithGracefulShutdown(log, ginApp)
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	srv := &http.Server{
		Addr:    config.GetEnv().ServerAddress,
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

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

	// Public routes: registration, key issuance/rotation and health.
	// Key endpoints are rate limited per client address.
	principalController := principals.GetPrincipalController()
	principalController.RegisterRoutes(v1)

	keyLimiter := rate_limit.NewKeyedLimiter(5, 10)
	credentials.GetCredentialController().RegisterRoutes(v1, rate_limit.Middleware(keyLimiter))

	system_healthcheck.GetHealthcheckController().RegisterRoutes(v1)

	// Setup auth middleware
	credentialService := credentials.GetCredentialService()
	authMiddleware := credentials_middleware.AuthMiddleware(credentialService, config.GetEnv().APIKeyHeader)

	// Protected routes
	protected := v1.Group("")
	protected.Use(authMiddleware)

	principalController.RegisterProtectedRoutes(protected)
	audit_logs.GetAuditLogController().RegisterRoutes(protected)
	products.GetProductController().RegisterRoutes(protected)
	orders.GetOrderController().RegisterRoutes(protected)
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
