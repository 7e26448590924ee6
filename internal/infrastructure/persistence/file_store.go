package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	"github.com/fng-app/fng-sales-api/internal/domain/normalizer"
	domainRepo "github.com/fng-app/fng-sales-api/internal/domain/repository"
)

// FileStore keeps a collection as one pretty-printed JSON array on disk.
// Every mutation rewrites the whole file. The mutex serialises writers inside
// this process only; separate processes sharing the file still race.
type FileStore struct {
	path  string
	mutex sync.Mutex
	now   func() time.Time
}

// NewFileStore creates a file backend at path. The file and its directory are
// created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Name returns the backend name
func (s *FileStore) Name() string {
	return "file"
}

// Path returns the location of the backing file
func (s *FileStore) Path() string {
	return s.path
}

// Ping checks that the backing file, if present, can be read
func (s *FileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Insert(ctx context.Context, doc entity.Record) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	docs, err := s.load()
	if err != nil {
		return "", err
	}

	id := s.nextID(docs)
	stored := doc.Clone()
	delete(stored, "id")
	stored["_id"] = id
	docs = append(docs, stored)

	if err := s.save(docs); err != nil {
		return "", err
	}
	return id, nil
}

func (s *FileStore) FindByID(ctx context.Context, id string) (entity.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	docs, err := s.load()
	if err != nil {
		return nil, err
	}
	i := indexOf(docs, id)
	if i < 0 {
		return nil, domainRepo.ErrNotFound
	}
	return docs[i], nil
}

func (s *FileStore) Update(ctx context.Context, id string, fields entity.Record) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	docs, err := s.load()
	if err != nil {
		return err
	}
	i := indexOf(docs, id)
	if i < 0 {
		return domainRepo.ErrNotFound
	}
	for k, v := range fields {
		if k == "_id" || k == "id" {
			continue
		}
		docs[i][k] = v
	}
	return s.save(docs)
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	docs, err := s.load()
	if err != nil {
		return err
	}
	i := indexOf(docs, id)
	if i < 0 {
		return domainRepo.ErrNotFound
	}
	docs = append(docs[:i], docs[i+1:]...)
	return s.save(docs)
}

func (s *FileStore) FindAll(ctx context.Context) ([]entity.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.load()
}

// load reads the whole collection. A missing file is an empty collection; a
// corrupt one is an error.
func (s *FileStore) load() ([]entity.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entity.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return []entity.Record{}, nil
	}

	docs := []entity.Record{}
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", s.path, err)
	}
	return docs, nil
}

func (s *FileStore) save(docs []entity.Record) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal documents: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// nextID returns the current millisecond timestamp, bumped past any id already taken
func (s *FileStore) nextID(docs []entity.Record) string {
	ms := s.now().UnixMilli()
	for indexOf(docs, strconv.FormatInt(ms, 10)) >= 0 {
		ms++
	}
	return strconv.FormatInt(ms, 10)
}

// indexOf matches id against both the "_id" and legacy "id" fields
func indexOf(docs []entity.Record, id string) int {
	if id == "" {
		return -1
	}
	for i, doc := range docs {
		if normalizer.String(doc["_id"]) == id || normalizer.String(doc["id"]) == id {
			return i
		}
	}
	return -1
}
