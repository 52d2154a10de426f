package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/minjaeee24/JDBC-Workspace/internal/console"
	"github.com/minjaeee24/JDBC-Workspace/internal/queries"
	"github.com/minjaeee24/JDBC-Workspace/internal/repository/postgres"
	"github.com/minjaeee24/JDBC-Workspace/internal/repository/sqlite"
	"github.com/minjaeee24/JDBC-Workspace/internal/repository/sqlstore"
	"github.com/minjaeee24/JDBC-Workspace/internal/service"
)

var (
	flagDriver  string
	flagDB      string
	flagQueries string
)

func main() {
	// Optional; real environment variables take precedence.
	_ = godotenv.Load()

	var level slog.Level
	if err := level.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		level = slog.LevelInfo
	}
	// stdout belongs to the menu.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "member-registry",
	Short:         "Console member registry",
	Long:          "Add, list, and look up members stored in SQLite or PostgreSQL through a text menu.",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runMenu,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the member table if it does not exist",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "database backend: sqlite|postgres (default: $DB_DRIVER or sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite file path or PostgreSQL DSN (default: $DATABASE_PATH or $DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagQueries, "queries", "", "SQL statement file (default: $QUERIES_PATH or resources/queries.<driver>.env)")

	rootCmd.AddCommand(migrateCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	members := service.NewMemberService(db.Members())
	return console.NewMenu(cmd.InOrStdin(), cmd.OutOrStdout(), members).Run(cmd.Context())
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	slog.Info("database migrations applied", "driver", db.Dialect().Name())
	return nil
}

// openDatabase loads statement overrides and opens the configured backend.
// An unreadable statement file is logged and the built-ins are used.
func openDatabase() (*sqlstore.DB, error) {
	driver := firstNonEmpty(flagDriver, envOrDefault("DB_DRIVER", "sqlite"))
	queriesPath := firstNonEmpty(flagQueries, envOrDefault("QUERIES_PATH", "resources/queries."+driver+".env"))
	overrides, err := queries.LoadFile(queriesPath)
	if err != nil {
		slog.Warn("statement file not loaded, using built-in statements", "path", queriesPath, "error", err)
	}

	opts := []sqlstore.Option{
		sqlstore.WithStatements(overrides),
		sqlstore.WithLogger(slog.Default()),
	}

	var db *sqlstore.DB
	switch driver {
	case "sqlite":
		dbPath := firstNonEmpty(flagDB, envOrDefault("DATABASE_PATH", "members.db"))
		db, err = sqlite.Open(dbPath, opts...)
	case "postgres":
		dsn := firstNonEmpty(flagDB, os.Getenv("DATABASE_URL"))
		if dsn == "" {
			dsn = postgres.DSNFromEnv()
		}
		db, err = postgres.Open(dsn, opts...)
	default:
		return nil, fmt.Errorf("unknown driver %q (want sqlite or postgres)", driver)
	}
	if err != nil {
		return nil, err
	}

	if names := db.Queries().Overridden(); len(names) > 0 {
		slog.Info("external statements loaded", "path", queriesPath, "statements", names)
	}
	return db, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
