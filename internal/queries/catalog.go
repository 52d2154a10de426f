// Package queries holds the SQL text used by the record store. Statements
// ship as per-backend built-ins and can be replaced from an external
// key=value file without rebuilding.
package queries

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"github.com/minjaeee24/JDBC-Workspace/internal/domain"
)

// Statement names understood by the record store.
const (
	InsertMember     = "insertMember"
	SelectAll        = "selectAll"
	SelectByUserID   = "selectByUserId"
	SelectByUserName = "selectByUserName"
)

// Catalog maps statement names to SQL text. It is immutable once built.
type Catalog struct {
	builtin   map[string]string
	overrides map[string]string
}

// New builds a catalog from a backend's built-in statements and optional
// overrides. Both maps are copied.
func New(builtin, overrides map[string]string) *Catalog {
	c := &Catalog{
		builtin:   maps.Clone(builtin),
		overrides: make(map[string]string, len(overrides)),
	}
	if c.builtin == nil {
		c.builtin = map[string]string{}
	}
	for name, text := range overrides {
		if strings.TrimSpace(text) == "" {
			continue
		}
		c.overrides[name] = text
	}
	return c
}

// Lookup returns the SQL registered under name. An override wins over the
// built-in; a name known to neither is a configuration error.
func (c *Catalog) Lookup(name string) (string, error) {
	if text, ok := c.overrides[name]; ok {
		return text, nil
	}
	if text, ok := c.builtin[name]; ok {
		return text, nil
	}
	return "", &domain.StoreError{Op: "lookup " + name, Kind: domain.ErrConfigurationLoad, Err: fmt.Errorf("no statement named %q", name)}
}

// Overridden lists the statement names replaced by external text, sorted.
func (c *Catalog) Overridden() []string {
	return slices.Sorted(maps.Keys(c.overrides))
}

// LoadFile reads statement overrides from a key=value file.
func LoadFile(path string) (map[string]string, error) {
	stmts, err := godotenv.Read(path)
	if err != nil {
		return nil, &domain.StoreError{Op: "load " + path, Kind: domain.ErrConfigurationLoad, Err: err}
	}
	return stmts, nil
}
