package migrate

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/infrastructure/database"
	"ticketdesk/internal/infrastructure/migration"
	"ticketdesk/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	dir        string
	steps      int
	strategy   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}

	cmd.Flags().StringVar(&strategy, "strategy", migration.StrategyGoose, "Migration strategy (goose, auto)")

	return cmd
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and the state of every migration.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new timestamped SQL migration for the configured driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&dir, "dir", "", "Target directory (default: the scripts directory of the configured driver)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func loadConfig() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

func initEnv(ctx context.Context) (*config.Config, *gorm.DB, logger.Interface, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Open(ctx, &cfg.Database, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, db, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, db, log, err := initEnv(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Infow("running up migrations", "environment", env, "strategy", strategy)

	mgr, err := migration.NewManager(strategy, cfg.Database.Driver, log)
	if err != nil {
		return err
	}
	if err := mgr.Migrate(ctx, db); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, db, log, err := initEnv(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Infow("running down migrations", "environment", env, "steps", steps)

	gs, err := migration.NewGooseStrategy(cfg.Database.Driver, log)
	if err != nil {
		return err
	}
	if err := gs.MigrateDown(ctx, db, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, db, log, err := initEnv(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db)

	gs, err := migration.NewGooseStrategy(cfg.Database.Driver, log)
	if err != nil {
		return err
	}

	version, err := gs.GetVersion(ctx, db)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	statuses, err := gs.Status(ctx, db)
	if err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Environment:     %s\n", env)
	fmt.Fprintf(out, "Driver:          %s\n", cfg.Database.Driver)
	fmt.Fprintf(out, "Current Version: %d\n\n", version)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
	for _, st := range statuses {
		applied := "-"
		if !st.AppliedAt.IsZero() {
			applied = st.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", st.Source.Version, st.State, applied, st.Source.Path)
	}
	return tw.Flush()
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	target := dir
	if target == "" {
		target, err = migration.ScriptsDir(cfg.Database.Driver)
		if err != nil {
			return err
		}
	}

	if err := migration.Create(target, name, log); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration %q created in %s\n", name, target)
	return nil
}
