// Package editcache holds the per-row draft buffer of a table. Drafts are
// independent copies, so editing never touches the committed records until a
// save succeeds.
//
// Cache is not safe for concurrent use; the owning table serialises access.
package editcache

import (
	"slices"

	"github.com/dmitrijs2005/hrconsole/internal/client/models"
)

// Entry is the edit state of one row.
type Entry[T models.Record[T]] struct {
	Editing bool
	// Saving is set while a store call for this row is in flight.
	Saving bool
	Draft  T
}

type Cache[T models.Record[T]] struct {
	entries map[models.RecordID]*Entry[T]
}

func New[T models.Record[T]]() *Cache[T] {
	return &Cache[T]{entries: make(map[models.RecordID]*Entry[T])}
}

// Rebuild replaces every entry with a non-editing copy of the given records.
//
// Pending rows keep their entry as is, since they have no committed value to
// fall back to, and a row with a save in flight keeps its Saving flag.
func (c *Cache[T]) Rebuild(list []T) {
	next := make(map[models.RecordID]*Entry[T], len(list))
	for _, r := range list {
		id := r.GetID()
		old, had := c.entries[id]
		if had && id.IsPending() {
			next[id] = old
			continue
		}
		e := &Entry[T]{Draft: r.Clone()}
		if had {
			e.Saving = old.Saving
		}
		next[id] = e
	}
	c.entries = next
}

// Begin marks the row as being edited. Absent ids are ignored.
func (c *Cache[T]) Begin(id models.RecordID) {
	if e, ok := c.entries[id]; ok {
		e.Editing = true
	}
}

// Reset leaves edit mode and replaces the draft with a copy of committed.
func (c *Cache[T]) Reset(id models.RecordID, committed T) {
	c.entries[id] = &Entry[T]{Draft: committed.Clone()}
}

// Restore keeps the row in edit mode with the draft replaced by a copy of
// committed. Used after a failed save.
func (c *Cache[T]) Restore(id models.RecordID, committed T) {
	c.entries[id] = &Entry[T]{Editing: true, Draft: committed.Clone()}
}

func (c *Cache[T]) Put(id models.RecordID, r T, editing bool) {
	c.entries[id] = &Entry[T]{Editing: editing, Draft: r.Clone()}
}

func (c *Cache[T]) Delete(id models.RecordID) {
	delete(c.entries, id)
}

// Move re-keys an entry after a pending row received its persisted id.
// The new entry is not editing and its draft is a copy of r.
func (c *Cache[T]) Move(from, to models.RecordID, r T) {
	delete(c.entries, from)
	c.entries[to] = &Entry[T]{Draft: r.Clone()}
}

// Get returns a copy of the entry; the draft is shared.
func (c *Cache[T]) Get(id models.RecordID) (Entry[T], bool) {
	e, ok := c.entries[id]
	if !ok {
		return Entry[T]{}, false
	}
	return *e, true
}

// Draft returns the live draft for in-place edits.
func (c *Cache[T]) Draft(id models.RecordID) (T, bool) {
	e, ok := c.entries[id]
	if !ok {
		var zero T
		return zero, false
	}
	return e.Draft, true
}

func (c *Cache[T]) Editing(id models.RecordID) bool {
	e, ok := c.entries[id]
	return ok && e.Editing
}

func (c *Cache[T]) Saving(id models.RecordID) bool {
	e, ok := c.entries[id]
	return ok && e.Saving
}

// SetSaving flips the in-flight flag. It reports false when id is absent.
func (c *Cache[T]) SetSaving(id models.RecordID, saving bool) bool {
	e, ok := c.entries[id]
	if !ok {
		return false
	}
	e.Saving = saving
	return true
}

func (c *Cache[T]) Len() int { return len(c.entries) }

// IDs returns the cached ids ordered by value.
func (c *Cache[T]) IDs() []models.RecordID {
	out := make([]models.RecordID, 0, len(c.entries))
	for id := range c.entries {
		out = append(out, id)
	}
	slices.SortFunc(out, func(a, b models.RecordID) int {
		if a.Value < b.Value {
			return -1
		}
		if a.Value > b.Value {
			return 1
		}
		return int(a.Kind) - int(b.Kind)
	})
	return out
}
