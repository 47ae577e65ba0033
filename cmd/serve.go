package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpath/internal/api"
	"github.com/abhisek/mathpath/internal/attempt"
	"github.com/abhisek/mathpath/internal/config"
	"github.com/abhisek/mathpath/internal/events"
	"github.com/abhisek/mathpath/internal/oracle"
	"github.com/abhisek/mathpath/internal/problemgen"
	"github.com/abhisek/mathpath/internal/session"
	"github.com/abhisek/mathpath/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		return serve(cmd.Context(), cfg, st, newLogger(cfg))
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}

func serve(ctx context.Context, cfg *config.Config, st *store.Store, logger *slog.Logger) error {
	publisher := newPublisher(cfg, logger)
	defer publisher.Close()

	var gen problemgen.Generator
	if cfg.OracleEnabled() {
		o, err := oracle.New(ctx, cfg.Oracle, st.OracleEvents(), logger)
		if err != nil {
			logger.Warn("content oracle not configured, using stored exercises", "error", err)
		} else {
			gen = problemgen.NewOracleGenerator(o, st.Exercises(), problemgen.DefaultConfig())
			logger.Info("content oracle ready", "provider", cfg.Oracle.Provider, "model", o.ModelID())
		}
	} else {
		logger.Info("no content oracle configured, using stored exercises")
	}

	sessionEvents := events.NewBestEffort(publisher, logger)
	hub := session.NewHub(func(string) *session.Manager {
		return session.NewManager(
			session.WithCooldown(cfg.Engine.TipCooldown),
			session.WithSummaryStore(st.Sessions()),
			session.WithExercises(st.Exercises()),
			session.WithPublisher(sessionEvents),
			session.WithLogger(logger),
		)
	})

	server := api.NewServer(api.Options{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		CORSOrigins:     cfg.Server.CORSOrigins,
		Mode:            cfg.Server.Mode,
		SessionDuration: cfg.Engine.SessionDuration,
		ExerciseCount:   cfg.Engine.ExerciseCount,
	}, api.Deps{
		Evaluator: attempt.NewEvaluator(st.Exercises(), st.Attempts(),
			attempt.WithLookback(cfg.Engine.Lookback),
			attempt.WithLogger(logger),
		),
		Progress:  st.Progress(),
		Sessions:  hub,
		Planner:   session.NewPlanner(gen, st.Exercises(), logger, session.WithPlanTimeout(cfg.Engine.PlanTimeout)),
		Publisher: publisher,
		Metrics:   api.NewMetrics(),
		Logger:    logger,
	})

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh

		logger.Info("received signal, shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
		close(done)
	}()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	<-done
	logger.Info("server stopped")
	return nil
}

// newPublisher connects to RabbitMQ when configured. A broker that cannot
// be reached disables publishing rather than the service.
func newPublisher(cfg *config.Config, logger *slog.Logger) events.Publisher {
	if cfg.Events.AMQPURL == "" {
		return events.Nop{}
	}
	p, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange, logger)
	if err != nil {
		logger.Warn("event publishing disabled", "error", err)
		return events.Nop{}
	}
	return p
}
