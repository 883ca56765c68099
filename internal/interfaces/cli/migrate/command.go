package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/estately-inc/estately/internal/infrastructure/config"
	"github.com/estately-inc/estately/internal/infrastructure/database"
	"github.com/estately-inc/estately/internal/infrastructure/migration"
	"github.com/estately-inc/estately/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	dialect    string
	steps      int
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
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations with the configured strategy.`,
		RunE:  runUp,
	}
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
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new migration files for the configured strategy and dialect.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVarP(&dialect, "dialect", "d", "", "Target dialect (mysql, postgres, sqlite); defaults to the configured driver")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

type migrateEnv struct {
	cfg     *config.Config
	log     logger.Interface
	manager *migration.Manager
}

func initEnv(connect bool) (*migrateEnv, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	scriptsPath, err := filepath.Abs(cfg.Migration.ScriptsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get scripts path: %w", err)
	}
	cfg.Migration.ScriptsPath = scriptsPath

	manager, err := migration.NewManager(&cfg.Migration, log)
	if err != nil {
		return nil, err
	}

	if connect {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return &migrateEnv{cfg: cfg, log: log, manager: manager}, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	e.log.Infow("running up migrations", "environment", env)

	if err := e.manager.Migrate(database.Get()); err != nil {
		return err
	}

	e.log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	e.log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := e.manager.Rollback(database.Get(), steps); err != nil {
		e.log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	e.log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	info := e.manager.GetStrategyInfo()
	version, err := e.manager.Version(database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Strategy:        %s (%s)\n", info["name"], info["description"])
	fmt.Printf("  Current Version: %d\n", version)

	if goose, ok := e.manager.GetStrategy().(*migration.GooseStrategy); ok {
		if err := goose.Status(database.Get()); err != nil {
			return fmt.Errorf("failed to get detailed status: %w", err)
		}
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	e, err := initEnv(false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	target := dialect
	if target == "" {
		target = e.cfg.Database.GetDriver()
	}

	switch s := e.manager.GetStrategy().(type) {
	case *migration.GooseStrategy:
		if err := s.Create(target, name); err != nil {
			return err
		}
	case *migration.GolangMigrateStrategy:
		upPath, err := migration.NewGenerator(e.cfg.Migration.ScriptsPath, e.log).CreateMigration(target, name)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s\n", upPath)
	default:
		return fmt.Errorf("create is not supported by the %s strategy", s.GetName())
	}

	e.log.Infow("migration created successfully", "name", name, "dialect", target)
	return nil
}
