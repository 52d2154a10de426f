package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"io/fs"
	"strings"

	"github.com/minjaeee24/JDBC-Workspace/internal/migrations"
	"github.com/minjaeee24/JDBC-Workspace/internal/queries"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const memberColumns = `user_no, user_id, user_pwd, user_name, gender, age, email, phone, address, hobby, enroll_date`

// user_no is assigned from SQLite's AUTOINCREMENT sequence and enroll_date
// from the column default, so neither appears in the insert.
var statements = map[string]string{
	queries.InsertMember: `INSERT INTO member (user_id, user_pwd, user_name, gender, age, email, phone, address, hobby)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	queries.SelectAll:        `SELECT ` + memberColumns + ` FROM member`,
	queries.SelectByUserID:   `SELECT ` + memberColumns + ` FROM member WHERE user_id = ?`,
	queries.SelectByUserName: `SELECT ` + memberColumns + ` FROM member WHERE user_name LIKE '%' || ? || '%'`,
}

// Dialect is the SQLite implementation of sqlstore.Dialect.
type Dialect struct{}

func (Dialect) Name() string { return "sqlite" }

func (Dialect) Statements() map[string]string { return statements }

// IsUniqueViolation reports whether err is a SQLite unique constraint failure.
func (Dialect) IsUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (Dialect) Migrate(ctx context.Context, db *sql.DB) error {
	files, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	return migrations.Run(ctx, db, files, "INSERT INTO schema_migrations (filename) VALUES (?)")
}
