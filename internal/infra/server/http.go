package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/controller"
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/middleware"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
	"github.com/fedcourts/docket-engine/internal/infra/config"
)

// @title           Docket Engine API
// @version         1.0
// @description     Federal court case management backend - dockets, filings, service, and sealing

// @contact.name    API Support
// @contact.email   support@example.com

// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and JWT token

// HTTPServer represents the HTTP server instance.
type HTTPServer struct {
	engine *gin.Engine
	config *config.ServerConfig
}

// Controllers bundles every primary HTTP controller so NewHTTPServer's
// signature doesn't grow with each new resource.
type Controllers struct {
	Tenant        *controller.TenantController
	Case          *controller.CaseController
	DocketEntry   *controller.DocketEntryController
	Document      *controller.DocumentController
	Upload        *controller.UploadController
	Filing        *controller.FilingController
	Party         *controller.PartyController
	ServiceRecord *controller.ServiceRecordController
	Event         *controller.EventController
	Timeline      *controller.TimelineController
}

// NewHTTPServer creates a new HTTP server with all routes and middleware configured.
func NewHTTPServer(
	cfg *config.Config,
	tenantUC usecase.TenantUseCase,
	roleResolver usecase.RoleResolverUseCase,
	controllers *Controllers,
) *HTTPServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())
	engine.Use(corsMiddleware())

	// Health check endpoints, no auth required.
	engine.GET("/health", healthHandler)
	engine.GET("/ready", readyHandler)

	v1 := engine.Group("/api/v1")
	v1.Use(middleware.Operation())
	v1.Use(middleware.RequestTimeout(cfg.Server.RequestTimeoutDuration()))
	v1.Use(middleware.JWTAuth(&cfg.Auth))
	{
		// Court listing runs ahead of the tenant guard: there is no single
		// court to scope to when enumerating all of them.
		controllers.Tenant.RegisterRoutes(v1)

		scoped := v1.Group("")
		scoped.Use(middleware.TenantGuard(tenantUC))
		{
			controllers.Case.RegisterRoutes(scoped, roleResolver)
			controllers.DocketEntry.RegisterRoutes(scoped, roleResolver)
			controllers.Document.RegisterRoutes(scoped, roleResolver)
			controllers.Upload.RegisterRoutes(scoped, roleResolver)
			controllers.Filing.RegisterRoutes(scoped, roleResolver)
			controllers.Party.RegisterRoutes(scoped, roleResolver)
			controllers.ServiceRecord.RegisterRoutes(scoped, roleResolver)
			controllers.Event.RegisterRoutes(scoped, roleResolver)
			controllers.Timeline.RegisterRoutes(scoped, roleResolver)
		}
	}

	return &HTTPServer{
		engine: engine,
		config: &cfg.Server,
	}
}

// Start starts the HTTP server.
func (s *HTTPServer) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%s", s.config.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.config.ReadTimeoutDuration(),
		WriteTimeout: s.config.WriteTimeoutDuration(),
	}

	errChan := make(chan error, 1)

	go func() {
		slog.Info("starting HTTP server", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeoutDuration())
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		slog.Info("HTTP server stopped gracefully")
		return nil

	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

// Engine returns the underlying Gin engine. Useful for testing.
func (s *HTTPServer) Engine() *gin.Engine {
	return s.engine
}

// healthHandler returns OK if the service is running.
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "docket-engine",
	})
}

// readyHandler returns OK if the service is ready to accept traffic.
func readyHandler(c *gin.Context) {
	// TODO: add a database ping once the pool is threaded through here.
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// corsMiddleware configures CORS for the API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Court-District")
		c.Header("Access-Control-Expose-Headers", "Content-Length, X-Operation-ID")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
