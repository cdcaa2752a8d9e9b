package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medoxido/medoxido/internal/config"
	"github.com/medoxido/medoxido/internal/platform/db"
	"github.com/medoxido/medoxido/migrations"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medoxido-server",
		Short: "Medication tracking API server",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; real environment variables take precedence.
			if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(namespaceCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// connect loads configuration and opens a pool bound to the namespace
// override, or DB_NAMESPACE when the override is empty.
func connect(ctx context.Context, namespace string) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if namespace != "" {
		cfg.DBNamespace = namespace
	}
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBNamespace, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrate, _ := cmd.Flags().GetBool("migrate")
			return runServer(migrate)
		},
	}
	cmd.Flags().Bool("migrate", true, "Create the namespace and apply pending migrations before serving")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace, _ := cmd.Flags().GetString("namespace")

			ctx := context.Background()
			cfg, pool, err := connect(ctx, namespace)
			if err != nil {
				return err
			}
			defer pool.Close()

			fmt.Printf("Running migrations on namespace: %s\n", cfg.DBNamespace)
			if err := db.CreateNamespace(ctx, pool, cfg.DBNamespace, nil); err != nil {
				return err
			}
			count, err := db.NewMigrator(pool, migrations.FS).Up(ctx, cfg.DBNamespace)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("namespace", "", "Target namespace (defaults to DB_NAMESPACE)")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace, _ := cmd.Flags().GetString("namespace")

			ctx := context.Background()
			cfg, pool, err := connect(ctx, namespace)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := db.NewMigrator(pool, migrations.FS).Status(ctx, cfg.DBNamespace)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("Migration status for namespace: %s\n", cfg.DBNamespace)
			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("namespace", "", "Target namespace (defaults to DB_NAMESPACE)")
	cmd.AddCommand(statusCmd)

	return cmd
}

func namespaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "namespace",
		Short: "Manage database namespaces",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a namespace and apply all migrations to it",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			if !db.ValidNamespace(name) {
				return fmt.Errorf("invalid namespace %q: use lowercase letters, digits and underscores", name)
			}

			ctx := context.Background()
			_, pool, err := connect(ctx, name)
			if err != nil {
				return err
			}
			defer pool.Close()

			fmt.Printf("Creating namespace: %s\n", name)
			if err := db.CreateNamespace(ctx, pool, name, migrations.FS); err != nil {
				return err
			}
			fmt.Println("Namespace created successfully. Start the server with DB_NAMESPACE=" + name)
			return nil
		},
	}
	createCmd.Flags().String("name", "", "Namespace (Postgres schema) name")

	cmd.AddCommand(createCmd)
	return cmd
}

func runServer(migrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		l := newLogger(os.Getenv("ENV"))
		l.Fatal().Err(err).Msg("failed to load config")
	}
	logger := newLogger(cfg.Env)

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.IsDev() && cfg.HMACKey == "" {
		logger.Warn().Msg("HMAC_KEY is unset; acceptable in development only")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBNamespace, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Str("namespace", cfg.DBNamespace).Msg("connected to database")

	if migrate {
		if err := db.CreateNamespace(ctx, pool, cfg.DBNamespace, migrations.FS); err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare namespace")
		}
	}

	e := newServer(cfg, pool, logger)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
