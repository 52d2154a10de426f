// Package sqlstore is the backend-neutral record store. Backends supply a
// Dialect (built-in statements, constraint detection, schema files) and a
// configured *sql.DB; this package owns the per-operation connection
// lifecycle on top of them.
package sqlstore

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/minjaeee24/JDBC-Workspace/internal/queries"
)

// Dialect describes the parts of a SQL backend that differ between engines.
type Dialect interface {
	Name() string
	// Statements returns the built-in SQL keyed by queries statement name.
	Statements() map[string]string
	IsUniqueViolation(err error) bool
	Migrate(ctx context.Context, db *sql.DB) error
}

// DB bundles an open database with its dialect and statement catalog.
type DB struct {
	SqlDB   *sql.DB
	dialect Dialect
	queries *queries.Catalog
	logger  *slog.Logger
}

// Option configures a DB.
type Option func(*options)

type options struct {
	overrides map[string]string
	logger    *slog.Logger
}

// WithStatements replaces built-in statements by name, typically with the
// result of queries.LoadFile.
func WithStatements(overrides map[string]string) Option {
	return func(o *options) { o.overrides = overrides }
}

// WithLogger sets the logger used for release failures. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New wraps an already-configured *sql.DB. The statement catalog is built
// once here and never changes afterwards.
func New(sqlDB *sql.DB, dialect Dialect, opts ...Option) *DB {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &DB{
		SqlDB:   sqlDB,
		dialect: dialect,
		queries: queries.New(dialect.Statements(), o.overrides),
		logger:  o.logger,
	}
}

// Dialect returns the backend dialect.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Queries returns the statement catalog in use.
func (db *DB) Queries() *queries.Catalog {
	return db.queries
}

// Migrate applies the backend's schema files.
func (db *DB) Migrate(ctx context.Context) error {
	return db.dialect.Migrate(ctx, db.SqlDB)
}

// Close closes the underlying database handle.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Members returns the member record store.
func (db *DB) Members() *MemberRepository {
	return NewMemberRepository(db)
}
