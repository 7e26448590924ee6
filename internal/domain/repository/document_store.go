package repository

import (
	"context"
	"errors"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
)

// ErrNotFound is returned by a DocumentStore when no document matches an id.
// It is an outcome, not a backend failure.
var ErrNotFound = errors.New("document not found")

// DocumentStore is the capability contract shared by every storage backend.
// Ids are strings; a document matches an id when either its "_id" or its legacy
// "id" field equals it.
type DocumentStore interface {
	// Name identifies the backend in logs and health output
	Name() string
	// Ping checks that the backend is reachable
	Ping(ctx context.Context) error
	// Insert stores doc and returns the id assigned to it. Any "_id" in doc is ignored.
	Insert(ctx context.Context, doc entity.Record) (string, error)
	// FindByID returns the raw document matching id
	FindByID(ctx context.Context, id string) (entity.Record, error)
	// Update merges fields over the matching document
	Update(ctx context.Context, id string, fields entity.Record) error
	// Delete removes the matching document
	Delete(ctx context.Context, id string) error
	// FindAll returns every document, in no particular order
	FindAll(ctx context.Context) ([]entity.Record, error)
}
