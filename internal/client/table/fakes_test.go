package table

import (
	"context"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/hrconsole/internal/client/models"
)

type fakeStore[T models.Record[T]] struct {
	mu sync.Mutex

	list      []T
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	// createResp/updateResp shape the store answer; nil echoes the payload.
	createResp func(T) T
	updateResp func(T) T

	// updateGate, when set, is received from before Update answers.
	updateGate map[string]chan struct{}

	calls   []string
	created []T
	updated []T
	query   url.Values
}

func (f *fakeStore[T]) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeStore[T]) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeStore[T]) clones() []T {
	out := make([]T, 0, len(f.list))
	for _, r := range f.list {
		out = append(out, r.Clone())
	}
	return out
}

func (f *fakeStore[T]) List(ctx context.Context) ([]T, error) {
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.clones(), nil
}

func (f *fakeStore[T]) Find(ctx context.Context, q url.Values) ([]T, error) {
	f.record("find")
	f.mu.Lock()
	f.query = q
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.clones(), nil
}

func (f *fakeStore[T]) Create(ctx context.Context, r T) (T, error) {
	f.record("create")
	f.mu.Lock()
	f.created = append(f.created, r.Clone())
	f.mu.Unlock()
	if f.createErr != nil {
		var zero T
		return zero, f.createErr
	}
	if f.createResp != nil {
		return f.createResp(r), nil
	}
	return r.Clone(), nil
}

func (f *fakeStore[T]) Update(ctx context.Context, id string, r T) (T, error) {
	f.record("update " + id)
	if gate, ok := f.updateGate[id]; ok {
		<-gate
	}
	f.mu.Lock()
	f.updated = append(f.updated, r.Clone())
	f.mu.Unlock()
	if f.updateErr != nil {
		var zero T
		return zero, f.updateErr
	}
	if f.updateResp != nil {
		return f.updateResp(r), nil
	}
	return r.Clone(), nil
}

func (f *fakeStore[T]) Delete(ctx context.Context, id string) error {
	f.record("delete " + id)
	return f.deleteErr
}

type note struct {
	kind string
	msg  string
}

type fakeNotifier struct {
	mu    sync.Mutex
	notes []note
}

func (n *fakeNotifier) add(kind, msg string) {
	n.mu.Lock()
	n.notes = append(n.notes, note{kind, msg})
	n.mu.Unlock()
}

func (n *fakeNotifier) Success(msg string) { n.add("success", msg) }
func (n *fakeNotifier) Info(msg string)    { n.add("info", msg) }
func (n *fakeNotifier) Warning(msg string) { n.add("warning", msg) }
func (n *fakeNotifier) Error(msg string)   { n.add("error", msg) }

func (n *fakeNotifier) last() note {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notes) == 0 {
		return note{}
	}
	return n.notes[len(n.notes)-1]
}

func (n *fakeNotifier) count(kind string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, x := range n.notes {
		if x.kind == kind {
			c++
		}
	}
	return c
}

func saving[T models.Record[T]](tbl *Table[T], id models.RecordID) bool {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	return tbl.cache.Saving(id)
}
