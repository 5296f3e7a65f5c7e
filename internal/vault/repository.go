package vault

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/spacesedan/postcraft/internal/models"
)

var ErrNotFound = errors.New("content not found")

// Repository persists vault records. Save is an upsert keyed by ID.
type Repository interface {
	Save(ctx context.Context, content models.SavedContent) error
	Get(ctx context.Context, id string) (models.SavedContent, error)
	List(ctx context.Context) ([]models.SavedContent, error)
	Delete(ctx context.Context, id string) error
}

// MemoryRepository keeps records in process memory. Each instance is an
// independent store.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]models.SavedContent
}

func NewMemoryRepository(seed ...models.SavedContent) *MemoryRepository {
	r := &MemoryRepository{records: make(map[string]models.SavedContent, len(seed))}
	for _, c := range seed {
		r.records[c.ID] = clone(c)
	}
	return r
}

func (r *MemoryRepository) Save(_ context.Context, content models.SavedContent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[content.ID] = clone(content)
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (models.SavedContent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.records[id]
	if !ok {
		return models.SavedContent{}, ErrNotFound
	}
	return clone(c), nil
}

func (r *MemoryRepository) List(_ context.Context) ([]models.SavedContent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.SavedContent, 0, len(r.records))
	for _, c := range r.records {
		out = append(out, clone(c))
	}
	return out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func clone(c models.SavedContent) models.SavedContent {
	c.PublishedTo = slices.Clone(c.PublishedTo)
	c.Tags = slices.Clone(c.Tags)
	if c.ScheduledFor != nil {
		at := *c.ScheduledFor
		c.ScheduledFor = &at
	}
	return c
}
