package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/infrastructure/database"
	"ticketdesk/internal/infrastructure/migration"
	"ticketdesk/internal/infrastructure/repository"
	"ticketdesk/internal/infrastructure/repository/pgxstore"
	"ticketdesk/internal/infrastructure/tracing"
	httpRouter "ticketdesk/internal/interfaces/http"
	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
	sharedConfig "ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

const shutdownTimeout = 30 * time.Second

var (
	env               string
	configPath        string
	autoMigrate       bool
	migrationStrategy string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the ticketdesk HTTP API with the given environment and configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")
	cmd.Flags().StringVar(&migrationStrategy, "migration-strategy", migration.StrategyGoose, "Migration strategy used with --auto-migrate (goose, auto)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("starting server",
		"environment", env,
		"backend", cfg.Database.Backend,
		"driver", cfg.Database.Driver,
		"auto_migrate", autoMigrate)

	tp, shutdownTracing, err := tracing.NewProvider(ctx, &cfg.Tracing, tracing.Options{Environment: env}, log)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	tracing.Install(tp)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Errorw("failed to flush traces", "error", err)
		}
	}()

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	db, err := database.Open(ctx, &cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if err := handleMigrations(ctx, cfg, db, log); err != nil {
		return err
	}

	executor, closeExecutor, err := newExecutor(ctx, &cfg.Database, db, log)
	if err != nil {
		return err
	}
	defer closeExecutor()

	ticketHandler := tickethandlers.NewTicketHandler(
		usecases.NewCreateTicketUseCase(executor, log),
		usecases.NewCloseTicketUseCase(executor, log),
		usecases.NewAssignTicketUseCase(executor, log),
		usecases.NewGetTicketUseCase(executor, log),
		log,
	)

	router := httpRouter.NewRouter(ticketHandler, httpRouter.RouterConfig{
		ServiceName:    cfg.Tracing.ServiceName,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("server listening", "address", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Errorw("server stopped with error", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(ctx context.Context, cfg *config.Config, db *gorm.DB, log logger.Interface) error {
	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment")
		}

		mgr, err := migration.NewManager(migrationStrategy, cfg.Database.Driver, log)
		if err != nil {
			return err
		}
		if err := mgr.Migrate(ctx, db); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver, log)
	if err != nil {
		log.Warnw("skipping migration check", "error", err)
		return nil
	}
	version, err := strategy.GetVersion(ctx, db)
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version)
	return nil
}

// newExecutor returns the transaction executor for the configured backend
// and a function releasing whatever it opened beyond db.
func newExecutor(ctx context.Context, cfg *sharedConfig.DatabaseConfig, db *gorm.DB, log logger.Interface) (ticket.Executor, func(), error) {
	switch cfg.Backend {
	case sharedConfig.BackendPgx:
		pool, err := database.OpenPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize pgx pool: %w", err)
		}
		return pgxstore.NewExecutor(pool, log), pool.Close, nil
	default:
		return repository.NewTransactionExecutor(db, log), func() {}, nil
	}
}
