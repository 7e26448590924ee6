package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	domainRepo "github.com/fng-app/fng-sales-api/internal/domain/repository"
)

// Router serves every call from the primary backend and falls back to the
// secondary when the primary is unreachable or the operation fails. The two
// backends are alternate destinations for the same dataset, not replicas:
// nothing is written to both and nothing is reconciled between them.
type Router struct {
	primary  domainRepo.DocumentStore
	fallback domainRepo.DocumentStore
	fileMode bool
	log      logrus.FieldLogger
}

// NewRouter creates a router. With fileMode set, or without a primary, every
// call goes straight to fallback.
func NewRouter(primary, fallback domainRepo.DocumentStore, fileMode bool, log logrus.FieldLogger) *Router {
	return &Router{
		primary:  primary,
		fallback: fallback,
		fileMode: fileMode,
		log:      log,
	}
}

// Name returns the router name
func (r *Router) Name() string {
	if r.direct() {
		return r.fallback.Name()
	}
	return r.primary.Name() + "+" + r.fallback.Name()
}

// Active reports the backend that would serve a call right now
func (r *Router) Active(ctx context.Context) string {
	if r.direct() {
		return r.fallback.Name()
	}
	if err := r.primary.Ping(ctx); err != nil {
		return r.fallback.Name()
	}
	return r.primary.Name()
}

// Ping succeeds when either backend is reachable
func (r *Router) Ping(ctx context.Context) error {
	return r.run(ctx, "ping", func(s domainRepo.DocumentStore) error {
		return s.Ping(ctx)
	})
}

func (r *Router) Insert(ctx context.Context, doc entity.Record) (string, error) {
	var id string
	err := r.run(ctx, "insert", func(s domainRepo.DocumentStore) error {
		var err error
		id, err = s.Insert(ctx, doc)
		return err
	})
	return id, err
}

func (r *Router) FindByID(ctx context.Context, id string) (entity.Record, error) {
	var doc entity.Record
	err := r.run(ctx, "find", func(s domainRepo.DocumentStore) error {
		var err error
		doc, err = s.FindByID(ctx, id)
		return err
	})
	return doc, err
}

func (r *Router) Update(ctx context.Context, id string, fields entity.Record) error {
	return r.run(ctx, "update", func(s domainRepo.DocumentStore) error {
		return s.Update(ctx, id, fields)
	})
}

func (r *Router) Delete(ctx context.Context, id string) error {
	return r.run(ctx, "delete", func(s domainRepo.DocumentStore) error {
		return s.Delete(ctx, id)
	})
}

func (r *Router) FindAll(ctx context.Context) ([]entity.Record, error) {
	var docs []entity.Record
	err := r.run(ctx, "list", func(s domainRepo.DocumentStore) error {
		var err error
		docs, err = s.FindAll(ctx)
		return err
	})
	return docs, err
}

func (r *Router) direct() bool {
	return r.fileMode || r.primary == nil
}

// run executes op on the primary and retries it once on the fallback.
// ErrNotFound is an answer from a healthy backend and is returned as is.
func (r *Router) run(ctx context.Context, name string, op func(domainRepo.DocumentStore) error) error {
	if r.direct() {
		return op(r.fallback)
	}

	primaryErr := r.primary.Ping(ctx)
	if primaryErr == nil {
		primaryErr = op(r.primary)
		if primaryErr == nil || errors.Is(primaryErr, domainRepo.ErrNotFound) {
			return primaryErr
		}
	}

	r.log.WithFields(logrus.Fields{
		"operation": name,
		"primary":   r.primary.Name(),
		"fallback":  r.fallback.Name(),
		"error":     primaryErr.Error(),
	}).Warn("Primary store failed, falling back")

	fallbackErr := op(r.fallback)
	if fallbackErr == nil || errors.Is(fallbackErr, domainRepo.ErrNotFound) {
		return fallbackErr
	}
	return fmt.Errorf("%s failed on %s (%v) and %s: %w", name, r.primary.Name(), primaryErr, r.fallback.Name(), fallbackErr)
}
