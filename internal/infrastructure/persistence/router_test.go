package persistence

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	domainRepo "github.com/fng-app/fng-sales-api/internal/domain/repository"
	"github.com/fng-app/fng-sales-api/pkg/logger"
)

// stubStore is a DocumentStore whose failures are switched on per test
type stubStore struct {
	*FileStore
	name    string
	pingErr error
	opErr   error
	calls   int
}

func newStubStore(t *testing.T, name string) *stubStore {
	t.Helper()
	return &stubStore{FileStore: NewFileStore(filepath.Join(t.TempDir(), name+".json")), name: name}
}

func (s *stubStore) Name() string { return s.name }

func (s *stubStore) Ping(ctx context.Context) error { return s.pingErr }

func (s *stubStore) Insert(ctx context.Context, doc entity.Record) (string, error) {
	s.calls++
	if s.opErr != nil {
		return "", s.opErr
	}
	return s.FileStore.Insert(ctx, doc)
}

func (s *stubStore) FindByID(ctx context.Context, id string) (entity.Record, error) {
	s.calls++
	if s.opErr != nil {
		return nil, s.opErr
	}
	return s.FileStore.FindByID(ctx, id)
}

func (s *stubStore) FindAll(ctx context.Context) ([]entity.Record, error) {
	s.calls++
	if s.opErr != nil {
		return nil, s.opErr
	}
	return s.FileStore.FindAll(ctx)
}

func TestRouterUsesPrimaryWhenHealthy(t *testing.T) {
	ctx := context.Background()
	primary, fallback := newStubStore(t, "mongodb"), newStubStore(t, "file")
	router := NewRouter(primary, fallback, false, logger.Discard())

	id, err := router.Insert(ctx, entity.Record{"customer": "Budi"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := primary.FileStore.FindByID(ctx, id); err != nil {
		t.Fatalf("expected document on primary: %v", err)
	}
	if fallback.calls != 0 {
		t.Fatalf("fallback must not be touched, got %d calls", fallback.calls)
	}
	if got := router.Active(ctx); got != "mongodb" {
		t.Fatalf("expected mongodb active, got %q", got)
	}
}

func TestRouterFailsOverWhenPrimaryUnreachable(t *testing.T) {
	ctx := context.Background()
	primary, fallback := newStubStore(t, "mongodb"), newStubStore(t, "file")
	primary.pingErr = errors.New("server selection timeout")
	router := NewRouter(primary, fallback, false, logger.Discard())

	id, err := router.Insert(ctx, entity.Record{"customer": "Budi"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if primary.calls != 0 {
		t.Fatalf("primary op must be skipped after a failed ping")
	}

	docs, err := router.FindAll(ctx)
	if err != nil || len(docs) != 1 || docs[0]["_id"] != id {
		t.Fatalf("expected the record via fallback, got %v, %v", docs, err)
	}
	if got := router.Active(ctx); got != "file" {
		t.Fatalf("expected file active, got %q", got)
	}
}

func TestRouterFailsOverWhenOperationFails(t *testing.T) {
	ctx := context.Background()
	primary, fallback := newStubStore(t, "mongodb"), newStubStore(t, "file")
	primary.opErr = errors.New("write concern error")
	router := NewRouter(primary, fallback, false, logger.Discard())

	if _, err := router.Insert(ctx, entity.Record{"customer": "Budi"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Fatalf("expected one attempt on each backend, got %d and %d", primary.calls, fallback.calls)
	}
}

func TestRouterNotFoundDoesNotFailOver(t *testing.T) {
	ctx := context.Background()
	primary, fallback := newStubStore(t, "mongodb"), newStubStore(t, "file")
	router := NewRouter(primary, fallback, false, logger.Discard())

	_, err := router.FindByID(ctx, "missing")
	if !errors.Is(err, domainRepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if fallback.calls != 0 {
		t.Fatalf("not-found must not trigger failover")
	}
}

func TestRouterBothBackendsFail(t *testing.T) {
	ctx := context.Background()
	primary, fallback := newStubStore(t, "mongodb"), newStubStore(t, "file")
	primary.pingErr = errors.New("unreachable")
	diskFull := errors.New("disk full")
	fallback.opErr = diskFull
	router := NewRouter(primary, fallback, false, logger.Discard())

	_, err := router.Insert(ctx, entity.Record{"customer": "Budi"})
	if err == nil {
		t.Fatalf("expected an error when both backends fail")
	}
	if !errors.Is(err, diskFull) {
		t.Fatalf("expected the fallback error to be wrapped, got %v", err)
	}
}

func TestRouterFileMode(t *testing.T) {
	ctx := context.Background()
	primary, fallback := newStubStore(t, "mongodb"), newStubStore(t, "file")
	router := NewRouter(primary, fallback, true, logger.Discard())

	if _, err := router.Insert(ctx, entity.Record{"customer": "Budi"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if primary.calls != 0 || fallback.calls != 1 {
		t.Fatalf("file mode must bypass the primary, got %d / %d", primary.calls, fallback.calls)
	}
	if router.Name() != "file" {
		t.Fatalf("unexpected name %q", router.Name())
	}

	noPrimary := NewRouter(nil, fallback, false, logger.Discard())
	if got := noPrimary.Active(ctx); got != "file" {
		t.Fatalf("expected file without a primary, got %q", got)
	}
}
