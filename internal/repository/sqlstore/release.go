package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/minjaeee24/JDBC-Workspace/internal/domain"
)

// releaseStack closes acquired resources in reverse acquisition order.
// Only resources that were pushed are ever closed.
type releaseStack struct {
	op     string
	logger *slog.Logger
	items  []resource
}

type resource struct {
	name  string
	close func() error
}

func newReleaseStack(op string, logger *slog.Logger) *releaseStack {
	return &releaseStack{op: op, logger: logger}
}

func (s *releaseStack) push(name string, close func() error) {
	s.items = append(s.items, resource{name: name, close: close})
}

// release closes every pushed resource, newest first. A failure is logged
// as a ResourceReleaseError and does not stop the remaining closes. Nothing
// is returned: a release problem never replaces an operation's own result.
func (s *releaseStack) release() {
	for i := len(s.items) - 1; i >= 0; i-- {
		r := s.items[i]
		if err := r.close(); err != nil {
			releaseErr := &domain.StoreError{
				Op:   s.op,
				Kind: domain.ErrResourceRelease,
				Err:  fmt.Errorf("close %s: %w", r.name, err),
			}
			s.logger.Warn("resource release failed", "op", s.op, "resource", r.name, "error", releaseErr)
		}
	}
	s.items = nil
}

// rollbackUnlessDone rolls tx back if it is still open.
func rollbackUnlessDone(tx *sql.Tx) func() error {
	return func() error {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			return err
		}
		return nil
	}
}
