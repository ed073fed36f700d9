// Package store holds the persistence layer of vowvenues: the document
// models, the collection interfaces the handlers program against, the
// mongo-backed implementation and an in-memory one, plus the lazily
// established single-flight connection cache both share.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when no document matches a lookup.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateUsername is returned when an insert would violate
	// username uniqueness.
	ErrDuplicateUsername = errors.New("store: username already taken")
)

// ConfigError marks required process configuration that was absent at first
// use. It maps to a 500 like any other server-side failure but is logged
// under a distinct taxonomy from infrastructure errors.
type ConfigError struct {
	Name string
}

func (c ConfigError) Error() string {
	return fmt.Sprintf("store: required configuration %v is not set", c.Name)
}

type (
	// Users is the account collection.
	Users interface {
		FindByUsername(ctx context.Context, username string) (*User, error)
		FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
		Insert(ctx context.Context, u *User) (*User, error)
	}

	// Venues is the venue collection.
	Venues interface {
		All(ctx context.Context) ([]Venue, error)
		FindByID(ctx context.Context, id primitive.ObjectID) (*Venue, error)
		InsertMany(ctx context.Context, vs []Venue) error
		Count(ctx context.Context) (int64, error)
	}
)
