package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Aidin1998/userfeed/api/responses"
	"github.com/Aidin1998/userfeed/common/apiutil"
	_ "github.com/Aidin1998/userfeed/docs"
	"github.com/Aidin1998/userfeed/internal/config"
	"github.com/Aidin1998/userfeed/internal/users"
	apperrors "github.com/Aidin1998/userfeed/pkg/errors"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Options configures the router.
type Options struct {
	ServiceName string
	CORS        config.CORSConfig
}

// DefaultOptions allows any origin with the methods and headers browsers
// need for the user and post endpoints.
func DefaultOptions() Options {
	return Options{
		ServiceName: "userfeed",
		CORS: config.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders: []string{"Content-Type", "Authorization"},
		},
	}
}

// Server represents the API server
type Server struct {
	router    *gin.Engine
	logger    *zap.Logger
	users     users.Repository
	validator *apiutil.Validator
}

// NewServer creates a new API server serving repo.
func NewServer(logger *zap.Logger, repo users.Repository, opts Options) *Server {
	server := &Server{
		logger:    logger,
		users:     repo,
		validator: apiutil.NewValidator(),
	}

	router := gin.New()

	router.Use(apiutil.RequestID())
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		Context: func(c *gin.Context) []zap.Field {
			return []zap.Field{zap.String("request_id", apiutil.GetRequestID(c))}
		},
	}))
	router.Use(ginzap.CustomRecoveryWithZap(logger, true, recoverInternal))
	router.Use(otelgin.Middleware(opts.ServiceName))
	router.Use(apiutil.MetricsMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORS.AllowOrigins,
		AllowMethods: opts.CORS.AllowMethods,
		AllowHeaders: opts.CORS.AllowHeaders,
	}))

	server.router = router
	server.registerRoutes()
	return server
}

// Start serves on addr until ctx is cancelled, then drains in-flight
// requests for at most shutdownTimeout.
func (s *Server) Start(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting API server", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router returns the internal Gin engine for testing purposes
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	u := s.router.Group("/users")
	{
		u.GET("", s.listUsers)
		u.GET("/:id/posts", s.listPosts)
		u.POST("/posts/add/:userId", s.createPost)
	}
}

// recoverInternal answers a recovered panic with an internal error body.
func recoverInternal(c *gin.Context, _ any) {
	responses.Error(c, apperrors.Internal.Explain("Internal Server Error"))
	c.Abort()
}

func (s *Server) healthCheck(c *gin.Context) {
	if err := s.users.Ping(c.Request.Context()); err != nil {
		apiutil.Logger(c, s.logger).Warn("Health check failed", zap.Error(err))
		responses.Error(c, err)
		return
	}
	responses.OK(c, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
