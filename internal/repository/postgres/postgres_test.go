package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/minjaeee24/JDBC-Workspace/internal/domain"
	"github.com/minjaeee24/JDBC-Workspace/internal/queries"
	"github.com/minjaeee24/JDBC-Workspace/internal/repository/postgres"
)

func TestDialect_IsUniqueViolation(t *testing.T) {
	d := postgres.Dialect{}

	if !d.IsUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Fatal("expected 23505 to be a unique violation")
	}
	if !d.IsUniqueViolation(fmt.Errorf("exec: %w", &pq.Error{Code: "23505"})) {
		t.Fatal("expected wrapped 23505 to be a unique violation")
	}
	if d.IsUniqueViolation(&pq.Error{Code: "23514"}) {
		t.Fatal("check violation is not a unique violation")
	}
	if d.IsUniqueViolation(errors.New("duplicate")) {
		t.Fatal("plain error is not a unique violation")
	}
}

func TestDialect_InsertUsesSequence(t *testing.T) {
	stmts := postgres.Dialect{}.Statements()

	insert := stmts[queries.InsertMember]
	if !strings.Contains(insert, "nextval('seq_member_no')") {
		t.Fatalf("expected sequence-sourced identifier, got %q", insert)
	}
	if strings.Contains(insert, "enroll_date") {
		t.Fatalf("enroll_date must come from the column default, got %q", insert)
	}
	for _, name := range []string{queries.InsertMember, queries.SelectAll, queries.SelectByUserID, queries.SelectByUserName} {
		if strings.Contains(stmts[name], "?") {
			t.Fatalf("%s uses ? placeholders: %q", name, stmts[name])
		}
	}
}

func TestDSNFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "registry")
	t.Setenv("DB_SSLMODE", "require")

	dsn := postgres.DSNFromEnv()
	for _, want := range []string{"host=db.internal", "dbname=registry", "sslmode=require", "port=5432"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("expected %q in %q", want, dsn)
		}
	}
}

// TestMemberRepository_Postgres runs against a live server when
// TEST_DATABASE_URL is set.
func TestMemberRepository_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := postgres.Open(dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	loginID := fmt.Sprintf("t%d", time.Now().UnixNano()%1_000_000_000)
	t.Cleanup(func() {
		db.SqlDB.Exec("DELETE FROM member WHERE user_id = $1", loginID)
	})

	repo := db.Members()
	m := &domain.Member{LoginID: loginID, Password: "pw1", Name: "Kim", Gender: "M", Age: 30, Email: "kim@x.com", Phone: "010", Address: "Seoul", Hobby: "reading"}
	n, err := repo.Insert(ctx, m)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row, got %d", n)
	}

	if _, err := repo.Insert(ctx, m); !errors.Is(err, domain.ErrDuplicateLoginID) {
		t.Fatalf("expected ErrDuplicateLoginID, got %v", err)
	}

	found, ok, err := repo.SelectByLoginID(ctx, loginID)
	if err != nil || !ok {
		t.Fatalf("SelectByLoginID: ok=%v err=%v", ok, err)
	}
	if found.ID == 0 || found.EnrolledAt.IsZero() || found.Gender != "M" {
		t.Fatalf("unexpected member %+v", found)
	}
}
