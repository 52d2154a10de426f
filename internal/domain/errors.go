package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateLoginID = errors.New("login id already exists")
	ErrInvalidInput     = errors.New("invalid input")
)

// Failure kinds reported by the record store.
var (
	ErrConnection        = errors.New("database connection failed")
	ErrStatement         = errors.New("statement rejected")
	ErrConfigurationLoad = errors.New("query configuration unavailable")
	ErrResourceRelease   = errors.New("resource release failed")
)

// StoreError is returned by record store operations. errors.Is matches
// both Kind and anything wrapped by Err.
type StoreError struct {
	Op   string
	Kind error
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
