package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjaeee24/JDBC-Workspace/internal/queries"
)

func setFlags(t *testing.T, driver, db, queriesPath string) {
	t.Helper()
	flagDriver, flagDB, flagQueries = driver, db, queriesPath
	t.Cleanup(func() { flagDriver, flagDB, flagQueries = "", "", "" })
}

func TestOpenDatabase_MissingStatementFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	setFlags(t, "sqlite", filepath.Join(dir, "members.db"), filepath.Join(dir, "missing.env"))

	db, err := openDatabase()
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, "sqlite", db.Dialect().Name())
	assert.Empty(t, db.Queries().Overridden())
	_, err = db.Queries().Lookup(queries.InsertMember)
	assert.NoError(t, err)
}

func TestOpenDatabase_LoadsShippedStatements(t *testing.T) {
	setFlags(t, "sqlite", filepath.Join(t.TempDir(), "members.db"), filepath.Join("resources", "queries.sqlite.env"))

	db, err := openDatabase()
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, []string{queries.SelectAll, queries.SelectByUserID}, db.Queries().Overridden())
}

func TestOpenDatabase_DriverFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	setFlags(t, "", "", filepath.Join(t.TempDir(), "missing.env"))

	_, err := openDatabase()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown driver "oracle"`)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestRootCommand_RunsMenu(t *testing.T) {
	setFlags(t, "sqlite", filepath.Join(t.TempDir(), "members.db"), filepath.Join(t.TempDir(), "missing.env"))

	input := strings.Join([]string{"1", "kim01", "pw1", "Kim", "M", "30", "kim@x.com", "010", "Seoul", "reading", "2", "0"}, "\n") + "\n"
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Member kim01 added successfully.")
	assert.Contains(t, out.String(), "1 member(s) found.")
}
