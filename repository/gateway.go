package repository

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Keyed is satisfied by pointers to records with a system-assigned integer id.
type Keyed[T any] interface {
	*T
	Key() uint
	SetKey(id uint)
}

// Gateway is the persistence boundary for one record type. Missing ids yield
// ErrNotFound and leave the store untouched.
type Gateway[T any] interface {
	Create(ctx context.Context, rec *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	// ListAll returns records in ascending id order, which is insertion order.
	ListAll(ctx context.Context) ([]T, error)
	// Update replaces every mutable field of the record with the given id.
	Update(ctx context.Context, id uint, rec *T) error
	// PartialUpdate loads the record, applies the mutation and stores the result.
	PartialUpdate(ctx context.Context, id uint, apply func(*T)) (*T, error)
	Delete(ctx context.Context, id uint) error
}
