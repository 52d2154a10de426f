package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"io/fs"

	"github.com/lib/pq"

	"github.com/minjaeee24/JDBC-Workspace/internal/migrations"
	"github.com/minjaeee24/JDBC-Workspace/internal/queries"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation pq.ErrorCode = "23505"

const memberColumns = `user_no, user_id, user_pwd, user_name, gender, age, email, phone, address, hobby, enroll_date`

var statements = map[string]string{
	queries.InsertMember: `INSERT INTO member (user_no, user_id, user_pwd, user_name, gender, age, email, phone, address, hobby)
		VALUES (nextval('seq_member_no'), $1, $2, $3, $4, $5, $6, $7, $8, $9)`,
	queries.SelectAll:        `SELECT ` + memberColumns + ` FROM member`,
	queries.SelectByUserID:   `SELECT ` + memberColumns + ` FROM member WHERE user_id = $1`,
	queries.SelectByUserName: `SELECT ` + memberColumns + ` FROM member WHERE user_name LIKE '%' || $1 || '%'`,
}

// Dialect is the PostgreSQL implementation of sqlstore.Dialect.
type Dialect struct{}

func (Dialect) Name() string { return "postgres" }

func (Dialect) Statements() map[string]string { return statements }

// IsUniqueViolation reports whether err carries SQLSTATE 23505.
func (Dialect) IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (Dialect) Migrate(ctx context.Context, db *sql.DB) error {
	files, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	return migrations.Run(ctx, db, files, "INSERT INTO schema_migrations (filename) VALUES ($1)")
}
