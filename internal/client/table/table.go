// Package table implements the editable, searchable table behind every
// console screen (admins, employees, attendance, leave).
//
// A Table owns three pieces of state for one entity collection:
//
//   - the committed list, the last rows confirmed by the record store;
//   - the filtered view, the committed rows matching the search term;
//   - the edit cache, one draft per visible row.
//
// Drafts become committed only through SaveEdit. A failed save of an
// existing row keeps it in edit mode with the draft reset to the committed
// value; a failed save of a new row discards the row.
//
// The mutex guards local state only and is never held across a store call,
// so saves of different rows run concurrently and may finish in any order.
// A row with a save or delete in flight rejects another one with ErrBusy.
package table

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/hrconsole/internal/client/editcache"
	"github.com/dmitrijs2005/hrconsole/internal/client/filter"
	"github.com/dmitrijs2005/hrconsole/internal/client/models"
	"github.com/dmitrijs2005/hrconsole/internal/logging"
)

// Store is the record store collection a table reconciles with.
type Store[T models.Record[T]] interface {
	List(ctx context.Context) ([]T, error)
	Find(ctx context.Context, query url.Values) ([]T, error)
	Create(ctx context.Context, r T) (T, error)
	Update(ctx context.Context, id string, r T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Notifier receives the user-facing outcome of table operations.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// Row is a display snapshot of one visible row. Fields come from the draft
// while the row is being edited.
type Row struct {
	ID      models.RecordID
	Editing bool
	Saving  bool
	Title   string
	Fields  []models.Field
}

type Table[T models.Record[T]] struct {
	mu sync.Mutex

	entity models.Entity[T]
	store  Store[T]
	notify Notifier
	log    logging.Logger

	committed []T
	view      []T
	cache     *editcache.Cache[T]
	term      string
	scope     url.Values
	loading   bool

	search *filter.Debouncer
}

// New builds an empty table. Call Load to fill it. A non-positive debounce
// selects filter.DefaultDelay.
func New[T models.Record[T]](e models.Entity[T], store Store[T], n Notifier, log logging.Logger, debounce time.Duration) *Table[T] {
	t := &Table[T]{
		entity: e,
		store:  store,
		notify: n,
		log:    log.With("module", "table", "entity", e.Name),
		cache:  editcache.New[T](),
	}
	t.search = filter.NewDebouncer(debounce, t.ApplyFilter)
	return t
}

func (t *Table[T]) Entity() models.Entity[T] { return t.entity }

// Label is the display name of the entity ("Employee").
func (t *Table[T]) Label() string { return t.entity.Label }

// Scope restricts subsequent loads to records whose fields equal query
// (e.g. employeeId=7). A nil query lists the whole collection.
func (t *Table[T]) Scope(query url.Values) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scope = query
}

// Load replaces the committed list with a fresh read and rebuilds the view
// and edit cache. Unsaved local edits, including new rows, are discarded.
// On failure the previous state is kept.
func (t *Table[T]) Load(ctx context.Context) error {
	t.mu.Lock()
	t.loading = true
	scope := t.scope
	t.mu.Unlock()

	var (
		list []T
		err  error
	)
	if len(scope) > 0 {
		list, err = t.store.Find(ctx, scope)
	} else {
		list, err = t.store.List(ctx)
	}

	t.mu.Lock()
	t.loading = false
	if err != nil {
		t.mu.Unlock()
		t.log.Error(ctx, "load failed", "error", err)
		t.notify.Error(fmt.Sprintf("Failed to load %s from server.", t.entity.Plural))
		return fmt.Errorf("load %s: %w", t.entity.Name, err)
	}

	for _, r := range list {
		maskSecret(r)
	}
	t.committed = list
	t.refilter()
	t.cache.Rebuild(t.view)
	t.mu.Unlock()

	t.log.Debug(ctx, "loaded", "count", len(list))
	return nil
}

// Refresh is Load under the name the console uses for "refetch and rebuild".
func (t *Table[T]) Refresh(ctx context.Context) error { return t.Load(ctx) }

// Find scopes the table to query and loads it.
func (t *Table[T]) Find(ctx context.Context, query url.Values) error {
	t.Scope(query)
	return t.Load(ctx)
}

// Loading reports whether a load is in flight. It does not prevent a second
// concurrent load.
func (t *Table[T]) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Search schedules a debounced ApplyFilter for term.
func (t *Table[T]) Search(term string) {
	t.search.Schedule(term)
}

// ApplyFilter sets the search term, recomputes the view and rebuilds the
// edit cache over it. New rows stay visible and keep their drafts.
func (t *Table[T]) ApplyFilter(term string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.term = term
	t.refilter()
	t.cache.Rebuild(t.view)
}

func (t *Table[T]) Term() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.term
}

// Close stops the debounced search.
func (t *Table[T]) Close() {
	t.search.Stop()
}

// View returns a snapshot of the visible rows.
func (t *Table[T]) View() []Row {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Row, 0, len(t.view))
	for _, r := range t.view {
		id := r.GetID()
		row := Row{ID: id, Title: r.Title(), Fields: r.Fields()}
		if e, ok := t.cache.Get(id); ok {
			row.Editing, row.Saving = e.Editing, e.Saving
			if e.Editing {
				row.Title, row.Fields = e.Draft.Title(), e.Draft.Fields()
			}
		}
		out = append(out, row)
	}
	return out
}

// Rows returns copies of the visible committed records, in view order.
func (t *Table[T]) Rows() []T {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]T, 0, len(t.view))
	for _, r := range t.view {
		out = append(out, r.Clone())
	}
	return out
}

// Get returns a copy of a committed record.
func (t *Table[T]) Get(id models.RecordID) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i := t.index(id); i >= 0 {
		return t.committed[i].Clone(), true
	}
	var zero T
	return zero, false
}

// Resolve maps an id typed by the user to a committed row.
func (t *Table[T]) Resolve(value string) (models.RecordID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range t.committed {
		if id := r.GetID(); id.Value == value {
			return id, true
		}
	}
	return models.RecordID{}, false
}

// refilter recomputes the view from the committed list and the term. New
// rows are always part of it. Callers hold mu.
func (t *Table[T]) refilter() {
	matched := filter.Apply(t.committed, t.term)
	if len(matched) == len(t.committed) {
		t.view = matched
		return
	}

	keep := make(map[models.RecordID]struct{}, len(matched))
	for _, r := range matched {
		keep[r.GetID()] = struct{}{}
	}
	view := make([]T, 0, len(matched))
	for _, r := range t.committed {
		id := r.GetID()
		if _, ok := keep[id]; ok || id.IsPending() {
			view = append(view, r)
		}
	}
	t.view = view
}

// syncCache adds entries for visible rows that have none and drops entries
// of rows no longer visible, leaving other entries untouched. Callers hold mu.
func (t *Table[T]) syncCache() {
	visible := make(map[models.RecordID]struct{}, len(t.view))
	for _, r := range t.view {
		id := r.GetID()
		visible[id] = struct{}{}
		if _, ok := t.cache.Get(id); !ok {
			t.cache.Put(id, r, false)
		}
	}
	for _, id := range t.cache.IDs() {
		if _, ok := visible[id]; !ok && !t.cache.Saving(id) {
			t.cache.Delete(id)
		}
	}
}

func (t *Table[T]) index(id models.RecordID) int {
	return slices.IndexFunc(t.committed, func(r T) bool { return r.GetID() == id })
}

func (t *Table[T]) remove(id models.RecordID) {
	if i := t.index(id); i >= 0 {
		t.committed = slices.Delete(slices.Clone(t.committed), i, i+1)
	}
	t.cache.Delete(id)
	t.refilter()
}

// maskSecret keeps plaintext passwords out of committed rows.
func maskSecret[T models.Record[T]](r T) {
	if s, ok := r.Secret(); ok && s != "" {
		r.SetSecret(models.PasswordMask)
	}
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	return !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil())
}
