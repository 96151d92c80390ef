package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"woosync/internal/actions"
	"woosync/internal/api/handlers"
	"woosync/internal/api/middleware"
	"woosync/internal/config"
	"woosync/internal/documents"
	"woosync/internal/logger"
	"woosync/internal/schema"
	"woosync/internal/validation"
)

// Dependencies are the components the HTTP surface exposes.
type Dependencies struct {
	Repository *documents.Repository
	Tester     *actions.ConnectionTester
	Fetcher    *actions.ProductFetcher
	Validator  *validation.Validator
	Schemas    schema.Registry
}

type Server struct {
	config  *config.Config
	logger  *logger.Logger
	router  *gin.Engine
	server  *http.Server
	limiter *middleware.RateLimiter
	done    chan struct{}
}

func New(cfg *config.Config, logger *logger.Logger, deps Dependencies) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Actions reach the proxy and the store; limit them per client.
	limiter := middleware.NewRateLimiter(rate.Every(time.Second), cfg.ActionRateLimit)

	settingsHandler := handlers.NewSettingsHandler(deps.Repository, deps.Tester, deps.Validator, logger)
	productHandler := handlers.NewProductHandler(deps.Repository, deps.Fetcher, deps.Validator, logger)
	schemaHandler := handlers.NewSchemaHandler(deps.Schemas, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Routes
	v1 := router.Group("/api/v1")
	{
		// Settings singleton
		settings := v1.Group("/settings")
		{
			settings.GET("", settingsHandler.Get)
			settings.PUT("", settingsHandler.Save)
		}

		// Product documents
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
			products.POST("/:id/fetch", limiter.Middleware(), productHandler.FetchDocument)
		}

		// Editor actions on the live form values
		editor := v1.Group("/actions")
		{
			editor.POST("/test-connection", limiter.Middleware(), settingsHandler.TestConnection)
			editor.POST("/test-connection/status", settingsHandler.Status)
			editor.POST("/debug", settingsHandler.Debug)
			editor.POST("/fetch", limiter.Middleware(), productHandler.Fetch)
			editor.POST("/fetch/status", productHandler.FetchStatus)
		}

		// Schema declarations
		v1.GET("/schemas", schemaHandler.List)
		v1.GET("/schemas.yaml", schemaHandler.YAML)
		v1.GET("/schemas/:name", schemaHandler.Get)
	}

	return &Server{
		config:  cfg,
		logger:  logger,
		router:  router,
		limiter: limiter,
		done:    make(chan struct{}),
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	// No write timeout: an action holds the request until the proxy answers.
	s.server = &http.Server{
		Addr:        addr,
		Handler:     s.router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go s.limiter.Cleanup(s.done, 3*time.Minute)

	s.logger.Info("Starting server on %s", addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	close(s.done)
	return s.server.Shutdown(ctx)
}

// Router exposes the handler, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
