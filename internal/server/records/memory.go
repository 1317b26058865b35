package records

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/hrconsole/internal/common"
)

// MemoryRepository keeps documents in process memory. Used for development
// and tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string]map[int64]Document
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string]map[int64]Document)}
}

func (r *MemoryRepository) List(ctx context.Context, entity string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, 0, len(r.data[entity]))
	for id, doc := range r.data[entity] {
		out = append(out, Record{ID: id, Doc: doc.Clone()})
	}
	slices.SortFunc(out, func(a, b Record) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, entity string, id int64) (Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.data[entity][id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return doc.Clone(), nil
}

func (r *MemoryRepository) Insert(ctx context.Context, entity string, id int64, doc Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.collection(entity)
	if _, ok := c[id]; ok {
		return common.ErrorConflict
	}
	c[id] = doc.Clone()
	return nil
}

func (r *MemoryRepository) InsertNext(ctx context.Context, entity string, doc Document) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.collection(entity)
	var next int64 = 1
	for id := range c {
		if id >= next {
			next = id + 1
		}
	}
	c[next] = doc.Clone()
	return next, nil
}

func (r *MemoryRepository) Update(ctx context.Context, entity string, id int64, doc Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.data[entity]
	if _, ok := c[id]; !ok {
		return common.ErrorNotFound
	}
	c[id] = doc.Clone()
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, entity string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.data[entity]
	if _, ok := c[id]; !ok {
		return common.ErrorNotFound
	}
	delete(c, id)
	return nil
}

// collection returns the map of entity, creating it. Callers hold mu.
func (r *MemoryRepository) collection(entity string) map[int64]Document {
	c, ok := r.data[entity]
	if !ok {
		c = make(map[int64]Document)
		r.data[entity] = c
	}
	return c
}
