package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/lib/pq"

	"github.com/minjaeee24/JDBC-Workspace/internal/domain"
	"github.com/minjaeee24/JDBC-Workspace/internal/repository/sqlstore"
)

// DriverName is the database/sql driver registered by lib/pq.
const DriverName = "postgres"

// Open prepares a PostgreSQL database for dsn. No connection is made until
// the first operation.
func Open(dsn string, opts ...sqlstore.Option) (*sqlstore.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, &domain.StoreError{Op: "open database", Kind: domain.ErrConnection, Err: fmt.Errorf("open database: %w", err)}
	}

	// Operations are serial; a released connection is closed, not reused.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	return sqlstore.New(db, Dialect{}, opts...), nil
}

// DSNFromEnv builds a connection string from DB_* environment variables.
func DSNFromEnv() string {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	name := getEnv("DB_NAME", "members")
	sslMode := getEnv("DB_SSLMODE", "disable")

	slog.Debug("postgres connection settings",
		"host", host,
		"port", port,
		"database", name,
		"user", user,
		"ssl_mode", sslMode)

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
