package domain

import "context"

// Database defines lifecycle operations for the backing store. The SQLite
// and Postgres backends each carry their own schema files.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
