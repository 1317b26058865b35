package table

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hrconsole/internal/client/ids"
	"github.com/dmitrijs2005/hrconsole/internal/client/models"
)

// AddNew prepends a blank record with a pending id and puts it in edit mode.
func (t *Table[T]) AddNew() models.RecordID {
	r := t.entity.New()
	id := ids.NewPendingID()
	r.SetID(id)

	t.mu.Lock()
	t.committed = append([]T{r}, t.committed...)
	t.refilter()
	t.cache.Rebuild(t.view)
	t.cache.Begin(id)
	t.mu.Unlock()

	t.notify.Info(fmt.Sprintf("New %s row added. Fill in the required fields and save.", strings.ToLower(t.entity.Label)))
	return id
}

// BeginEdit puts a visible row in edit mode.
func (t *Table[T]) BeginEdit(id models.RecordID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.cache.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	t.cache.Begin(id)
	return nil
}

// Edit applies fn to the draft of a row in edit mode.
func (t *Table[T]) Edit(id models.RecordID, fn func(draft T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.cache.Get(id)
	switch {
	case !ok:
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	case !e.Editing:
		return fmt.Errorf("%w: %s", ErrNotEditing, id)
	case e.Saving:
		return fmt.Errorf("%w: %s", ErrBusy, id)
	}
	return fn(e.Draft)
}

// SetField sets one named field of a draft.
func (t *Table[T]) SetField(id models.RecordID, name, value string) error {
	return t.Edit(id, func(d T) error { return d.Set(name, value) })
}

// DiscardEdit cancels editing. An existing row gets its draft reset to the
// committed value; a new row is removed altogether.
func (t *Table[T]) DiscardEdit(id models.RecordID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.cache.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if e.Saving {
		return fmt.Errorf("%w: %s", ErrBusy, id)
	}

	if id.IsPending() {
		t.remove(id)
		return nil
	}

	i := t.index(id)
	if i < 0 {
		t.cache.Delete(id)
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	t.cache.Reset(id, t.committed[i])
	return nil
}

// IsValid reports whether the draft of id has every required field.
func (t *Table[T]) IsValid(id models.RecordID) bool {
	return len(t.Missing(id)) == 0
}

// Missing lists the required fields of the draft that are blank. A new row
// also needs a password when its type has one. An unknown id yields nil.
func (t *Table[T]) Missing(id models.RecordID) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	d, ok := t.cache.Draft(id)
	if !ok {
		return nil
	}
	return missing(id, d)
}

func missing[T models.Record[T]](id models.RecordID, d T) []string {
	var out []string
	for _, name := range d.Required() {
		if strings.TrimSpace(models.FieldValue(d, name)) == "" {
			out = append(out, name)
		}
	}
	if s, ok := d.Secret(); ok && id.IsPending() && strings.TrimSpace(s) == "" {
		out = append(out, "password")
	}
	return out
}
