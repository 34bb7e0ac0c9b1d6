package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/config"
	"github.com/gunnargantzel/NMS-sub000/internal/database"
	"github.com/gunnargantzel/NMS-sub000/internal/logger"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"github.com/gunnargantzel/NMS-sub000/migrations"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrationsDir is where "create" writes new files. The other commands read
// the copies embedded in the binary.
var migrationsDir = "./migrations"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Migration error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the PostgreSQL schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&migrationsDir, "dir", migrationsDir, "directory for new migration files")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withDB(func(db *sql.DB, _ []string) error {
				if err := goose.Up(db, "."); err != nil {
					return fmt.Errorf("failed to run up migrations: %w", err)
				}
				fmt.Println("Migrations applied successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			RunE: withDB(func(db *sql.DB, _ []string) error {
				if err := goose.Down(db, "."); err != nil {
					return fmt.Errorf("failed to run down migration: %w", err)
				}
				fmt.Println("Migration rolled back successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE: withDB(func(db *sql.DB, _ []string) error {
				if err := goose.Status(db, "."); err != nil {
					return fmt.Errorf("failed to get migration status: %w", err)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: withDB(func(db *sql.DB, _ []string) error {
				if err := goose.Version(db, "."); err != nil {
					return fmt.Errorf("failed to get version: %w", err)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "create NAME",
			Short: "Create a new SQL migration file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				goose.SetBaseFS(nil)
				if err := goose.Create(nil, migrationsDir, args[0], "sql"); err != nil {
					return fmt.Errorf("failed to create migration: %w", err)
				}
				fmt.Printf("Migration created: %s\n", args[0])
				return nil
			},
		},
		newSeedAdminCommand(),
	)

	return root
}

// withDB opens the configured database and points goose at the embedded
// migrations before running fn
func withDB(fn func(db *sql.DB, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err := sql.Open("postgres", cfg.Database.ConnectionString())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(cmd.Context()); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}

		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("failed to set dialect: %w", err)
		}

		return fn(db, args)
	}
}

func newSeedAdminCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the first admin account when no users exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			basicCfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			cfg, err := config.LoadWithSecrets(cmd.Context(), log)
			if err != nil {
				return fmt.Errorf("failed to load secrets: %w", err)
			}
			if username == "" {
				username = cfg.Auth.BootstrapAdminUsername
			}
			if password == "" {
				password = cfg.Auth.BootstrapAdminPassword
			}

			return seedAdmin(cmd.Context(), cfg, log, username, password)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "admin username (defaults to AUTH_BOOTSTRAPADMINUSERNAME)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (defaults to AUTH_BOOTSTRAPADMINPASSWORD)")

	return cmd
}

func seedAdmin(ctx context.Context, cfg *config.Config, log *zap.Logger, username, password string) error {
	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	if err != nil {
		return err
	}

	authService := service.NewAuthService(repository.NewUserRepository(db), tokens, log)
	user, err := authService.EnsureAdmin(ctx, username, password)
	switch {
	case errors.Is(err, service.ErrBootstrapSkipped):
		fmt.Println("Users already exist, nothing to do")
		return nil
	case err != nil:
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Printf("Admin created: %s\n", user.Username)
	return nil
}
