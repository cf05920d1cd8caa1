// Package repository contains the persistence gateway for spouse records.
// Implementations live in subpackages (postgres, memory).
package repository

import (
	"context"
	"errors"

	"spouseshowcase/internal/model"
	"spouseshowcase/internal/schema"
)

// SpouseRepository defines data access for spouse submissions.
// No business logic here, strictly persistence operations.
type SpouseRepository interface {
	// List returns every stored record in the store's default order.
	List(ctx context.Context) ([]model.Spouse, error)

	// Create inserts one record and returns it with the id assigned by the store.
	Create(ctx context.Context, in schema.SpouseInput) (*model.Spouse, error)
}

// ErrNoRowReturned is the cause recorded when an insert reports no row back.
var ErrNoRowReturned = errors.New("insert returned no row")

const (
	MsgListFailed   = "Failed to fetch spouses from database"
	MsgCreateFailed = "Failed to create spouse in database"
)

// StorageError wraps a connectivity or query failure. Error returns only the
// generic Message; the driver error stays reachable through Unwrap for logs.
type StorageError struct {
	Op      string
	Message string
	Err     error
}

func (e *StorageError) Error() string { return e.Message }

func (e *StorageError) Unwrap() error { return e.Err }

// ListError wraps a failure of List.
func ListError(err error) *StorageError {
	return &StorageError{Op: "list", Message: MsgListFailed, Err: err}
}

// CreateError wraps a failure of Create.
func CreateError(err error) *StorageError {
	return &StorageError{Op: "create", Message: MsgCreateFailed, Err: err}
}
