package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/minjaeee24/JDBC-Workspace/internal/domain"
	"github.com/minjaeee24/JDBC-Workspace/internal/queries"
)

// MemberRepository implements domain.MemberRepository. Each call acquires a
// dedicated connection, runs one statement, and releases everything it
// acquired before returning.
type MemberRepository struct {
	db      *sql.DB
	dialect Dialect
	queries *queries.Catalog
	logger  *slog.Logger
}

// NewMemberRepository creates a MemberRepository over db.
func NewMemberRepository(db *DB) *MemberRepository {
	return &MemberRepository{
		db:      db.SqlDB,
		dialect: db.dialect,
		queries: db.queries,
		logger:  db.logger,
	}
}

// Insert stores a candidate member. The transaction is committed when at
// least one row was affected and rolled back otherwise.
func (r *MemberRepository) Insert(ctx context.Context, m *domain.Member) (int64, error) {
	const op = "insert member"
	query, err := r.queries.Lookup(queries.InsertMember)
	if err != nil {
		return 0, err
	}

	stack := newReleaseStack(op, r.logger)
	defer stack.release()

	conn, err := r.acquireConn(ctx, op)
	if err != nil {
		return 0, err
	}
	stack.push("connection", conn.Close)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, &domain.StoreError{Op: op, Kind: domain.ErrConnection, Err: fmt.Errorf("begin transaction: %w", err)}
	}
	stack.push("transaction", rollbackUnlessDone(tx))

	n, err := r.exec(ctx, tx, op, query,
		m.LoginID, m.Password, m.Name, m.Gender, m.Age, m.Email, m.Phone, m.Address, m.Hobby)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		if err := tx.Commit(); err != nil {
			return 0, &domain.StoreError{Op: op, Kind: domain.ErrStatement, Err: fmt.Errorf("commit: %w", err)}
		}
		return n, nil
	}

	if err := tx.Rollback(); err != nil {
		return 0, &domain.StoreError{Op: op, Kind: domain.ErrStatement, Err: fmt.Errorf("rollback: %w", err)}
	}
	return 0, nil
}

// SelectAll returns every member in the engine's natural row order.
func (r *MemberRepository) SelectAll(ctx context.Context) ([]domain.Member, error) {
	return r.selectMembers(ctx, "select all members", queries.SelectAll, 0)
}

// SelectByLoginID returns the first member whose login id equals loginID.
func (r *MemberRepository) SelectByLoginID(ctx context.Context, loginID string) (domain.Member, bool, error) {
	members, err := r.selectMembers(ctx, "select member by login id", queries.SelectByUserID, 1, loginID)
	if err != nil {
		return domain.Member{}, false, err
	}
	if len(members) == 0 {
		return domain.Member{}, false, nil
	}
	return members[0], true, nil
}

// SelectByNameKeyword returns members whose display name contains keyword.
func (r *MemberRepository) SelectByNameKeyword(ctx context.Context, keyword string) ([]domain.Member, error) {
	return r.selectMembers(ctx, "select members by name", queries.SelectByUserName, 0, keyword)
}

func (r *MemberRepository) acquireConn(ctx context.Context, op string) (*sql.Conn, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, &domain.StoreError{Op: op, Kind: domain.ErrConnection, Err: err}
	}
	return conn, nil
}

// exec prepares query on tx, executes it, and closes the statement before
// returning the affected row count.
func (r *MemberRepository) exec(ctx context.Context, tx *sql.Tx, op, query string, args ...any) (int64, error) {
	stack := newReleaseStack(op, r.logger)
	defer stack.release()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, r.statementError(op, err)
	}
	stack.push("statement", stmt.Close)

	result, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return 0, r.statementError(op, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, r.statementError(op, fmt.Errorf("rows affected: %w", err))
	}
	return n, nil
}

// selectMembers runs a member query and materializes the result. A positive
// limit stops reading after that many rows.
func (r *MemberRepository) selectMembers(ctx context.Context, op, name string, limit int, args ...any) ([]domain.Member, error) {
	query, err := r.queries.Lookup(name)
	if err != nil {
		return nil, err
	}

	stack := newReleaseStack(op, r.logger)
	defer stack.release()

	conn, err := r.acquireConn(ctx, op)
	if err != nil {
		return nil, err
	}
	stack.push("connection", conn.Close)

	stmt, err := conn.PrepareContext(ctx, query)
	if err != nil {
		return nil, r.statementError(op, err)
	}
	stack.push("statement", stmt.Close)

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, r.statementError(op, err)
	}
	stack.push("cursor", rows.Close)

	columns, err := rows.Columns()
	if err != nil {
		return nil, r.statementError(op, fmt.Errorf("columns: %w", err))
	}
	var row memberRow
	dest, err := row.targets(columns)
	if err != nil {
		return nil, r.statementError(op, err)
	}

	members := []domain.Member{}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, r.statementError(op, fmt.Errorf("scan member: %w", err))
		}
		members = append(members, row.member())
		if limit > 0 && len(members) >= limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, r.statementError(op, err)
	}
	return members, nil
}

func (r *MemberRepository) statementError(op string, err error) error {
	if r.dialect.IsUniqueViolation(err) {
		err = fmt.Errorf("%w: %w", domain.ErrDuplicateLoginID, err)
	}
	return &domain.StoreError{Op: op, Kind: domain.ErrStatement, Err: err}
}
