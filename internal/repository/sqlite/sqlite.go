package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/minjaeee24/JDBC-Workspace/internal/domain"
	"github.com/minjaeee24/JDBC-Workspace/internal/repository/sqlstore"
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Pragmas applied to every new connection. They live in the DSN because
// connections are not reused between operations.
const pragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

// Open prepares a SQLite database at dbPath. No connection is made until
// the first operation.
func Open(dbPath string, opts ...sqlstore.Option) (*sqlstore.DB, error) {
	db, err := sql.Open(DriverName, dbPath+pragmas)
	if err != nil {
		return nil, &domain.StoreError{Op: "open database", Kind: domain.ErrConnection, Err: fmt.Errorf("open database: %w", err)}
	}

	// One connection at a time, closed on release instead of parked in the pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	return sqlstore.New(db, Dialect{}, opts...), nil
}
