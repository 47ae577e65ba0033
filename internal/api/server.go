// Package api exposes the progression engine over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/mathpath/internal/attempt"
	"github.com/abhisek/mathpath/internal/events"
	"github.com/abhisek/mathpath/internal/session"
	"github.com/abhisek/mathpath/internal/store"
)

// Options configures the HTTP server.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string

	// Mode is the gin mode; empty leaves the global mode untouched.
	Mode string

	SessionDuration time.Duration
	ExerciseCount   int
}

// Deps are the collaborators behind the handlers.
type Deps struct {
	Evaluator *attempt.Evaluator
	Progress  store.ProgressRepo
	Sessions  *session.Hub
	Planner   *session.Planner
	Publisher events.Publisher
	Metrics   *Metrics
	Logger    *slog.Logger
}

// Server is the HTTP front of the service.
type Server struct {
	opts   Options
	deps   Deps
	engine *gin.Engine
	http   *http.Server

	// sessionCtx bounds session countdowns; cancelled on Shutdown.
	sessionCtx    context.Context
	cancelSession context.CancelFunc
}

// NewServer builds the router and the underlying http.Server.
func NewServer(opts Options, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Metrics == nil {
		deps.Metrics = NewMetrics()
	}
	deps.Publisher = events.NewBestEffort(deps.Publisher, deps.Logger)
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		opts:          opts,
		deps:          deps,
		sessionCtx:    ctx,
		cancelSession: cancel,
	}
	s.engine = s.routes()
	s.http = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.engine,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(
		requestID(),
		recovery(s.deps.Logger),
		requestLogger(s.deps.Logger),
		instrument(s.deps.Metrics),
		cors.New(s.corsConfig()),
	)

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.deps.Metrics.Registry(), promhttp.HandlerOpts{})))

	r.POST("/check-exercise-answer", s.handleCheckAnswer)
	r.POST("/readiness", s.handleAssessReadiness)

	users := r.Group("/users/:userId/subtopics/:subtopicId")
	{
		users.GET("/readiness", s.handleStoredReadiness)
		users.GET("/progress", s.handleProgress)
	}

	sessions := r.Group("/sessions")
	{
		sessions.POST("", s.handleStartSession)
		sessions.GET("/:userId", s.handleGetSession)
		sessions.GET("/:userId/next", s.handleNextExercise)
		sessions.POST("/:userId/complete", s.handleCompleteExercise)
		sessions.POST("/:userId/pause", s.handlePause)
		sessions.POST("/:userId/resume", s.handleResume)
		sessions.POST("/:userId/end", s.handleEndSession)
	}
	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	origins := s.opts.CORSOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves until Shutdown. It returns http.ErrServerClosed
// after a clean shutdown.
func (s *Server) ListenAndServe() error {
	s.deps.Logger.Info("http server listening", "addr", s.opts.Addr)
	return s.http.ListenAndServe()
}

// Shutdown stops accepting requests, ends live sessions and waits for
// in-flight requests up to ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	s.cancelSession()
	if s.deps.Sessions != nil {
		s.deps.Sessions.EndAll(ctx, session.ReasonShutdown)
	}
	return err
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
