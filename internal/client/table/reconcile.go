package table

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hrconsole/internal/client/ids"
	"github.com/dmitrijs2005/hrconsole/internal/client/models"
)

// SaveEdit commits the draft of a row in edit mode.
//
// A new row is created under the next sequential id computed from a fresh
// read of the whole collection. An existing row is updated; its password is
// only sent when it was actually changed.
//
// Missing required fields yield ErrValidation without contacting the store.
func (t *Table[T]) SaveEdit(ctx context.Context, id models.RecordID) error {
	t.mu.Lock()
	e, ok := t.cache.Get(id)
	switch {
	case !ok:
		t.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	case !e.Editing:
		t.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotEditing, id)
	case e.Saving:
		t.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrBusy, id)
	}

	if m := missing(id, e.Draft); len(m) > 0 {
		t.mu.Unlock()
		t.notify.Warning("Please fill in all required fields: " + strings.Join(m, ", ") + ".")
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(m, ", "))
	}

	payload := e.Draft.Clone()
	t.cache.SetSaving(id, true)
	t.mu.Unlock()

	if id.IsPending() {
		return t.create(ctx, id, payload)
	}
	return t.update(ctx, id, payload)
}

func (t *Table[T]) create(ctx context.Context, pending models.RecordID, payload T) error {
	existing, err := t.store.List(ctx)
	if err != nil {
		return t.createFailed(ctx, pending, err)
	}

	next := ids.NextPersistedID(ids.Collect(existing))
	payload.SetID(next)

	created, err := t.store.Create(ctx, payload)
	if err != nil {
		return t.createFailed(ctx, pending, err)
	}
	if isNil(created) {
		created = payload
	} else if created.GetID().IsZero() {
		created.SetID(next)
	}
	maskSecret(created)
	id := created.GetID()

	t.mu.Lock()
	if i := t.index(pending); i >= 0 {
		t.committed[i] = created
	} else if t.index(id) < 0 {
		// a reload dropped the new row while it was being saved
		t.committed = append([]T{created}, t.committed...)
	}
	t.cache.Move(pending, id, created)
	t.refilter()
	t.syncCache()
	t.mu.Unlock()

	t.log.Info(ctx, "record created", "id", id.Value)
	t.notify.Success(fmt.Sprintf("%s %s saved successfully! ID: %s", t.entity.Label, created.Title(), id.Value))
	return nil
}

func (t *Table[T]) createFailed(ctx context.Context, pending models.RecordID, err error) error {
	t.mu.Lock()
	t.remove(pending)
	t.mu.Unlock()

	t.log.Error(ctx, "create failed", "id", pending.Value, "error", err)
	t.notify.Error(fmt.Sprintf("Failed to create %s: %s", strings.ToLower(t.entity.Label), Category(err)))
	return fmt.Errorf("create %s: %w", t.entity.Name, err)
}

func (t *Table[T]) update(ctx context.Context, id models.RecordID, payload T) error {
	if s, ok := payload.Secret(); ok && (strings.TrimSpace(s) == "" || s == models.PasswordMask) {
		payload.SetSecret("")
	}

	resp, err := t.store.Update(ctx, id.Value, payload)

	t.mu.Lock()
	i := t.index(id)
	if err != nil {
		if i >= 0 {
			t.cache.Restore(id, t.committed[i])
		} else {
			t.cache.Delete(id)
		}
		t.mu.Unlock()

		t.log.Error(ctx, "update failed", "id", id.Value, "error", err)
		t.notify.Error(fmt.Sprintf("Failed to update %s: %s", strings.ToLower(t.entity.Label), Category(err)))
		return fmt.Errorf("update %s %s: %w", t.entity.Name, id, err)
	}

	if i < 0 {
		// reloaded away while saving; the store has the change
		t.cache.Delete(id)
		t.refilter()
		t.syncCache()
		t.mu.Unlock()
		t.notify.Success(fmt.Sprintf("%s updated successfully!", t.entity.Label))
		return nil
	}

	merged := t.committed[i].Clone()
	if isNil(resp) {
		merged.Merge(payload)
	} else {
		merged.Merge(resp)
	}
	merged.SetID(id)
	maskSecret(merged)

	t.committed[i] = merged
	t.cache.Reset(id, merged)
	t.refilter()
	t.syncCache()
	t.mu.Unlock()

	t.log.Info(ctx, "record updated", "id", id.Value)
	t.notify.Success(fmt.Sprintf("%s updated successfully!", t.entity.Label))
	return nil
}

// Delete removes a row. A new row is dropped locally; an existing row is
// deleted from the store first and left untouched if that fails.
func (t *Table[T]) Delete(ctx context.Context, id models.RecordID) error {
	t.mu.Lock()
	if t.index(id) < 0 {
		t.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if t.cache.Saving(id) {
		t.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrBusy, id)
	}

	if id.IsPending() {
		t.remove(id)
		t.mu.Unlock()
		t.notify.Success(fmt.Sprintf("New %s discarded.", strings.ToLower(t.entity.Label)))
		return nil
	}

	t.cache.SetSaving(id, true)
	t.mu.Unlock()

	err := t.store.Delete(ctx, id.Value)

	t.mu.Lock()
	if err != nil {
		t.cache.SetSaving(id, false)
		t.mu.Unlock()

		t.log.Error(ctx, "delete failed", "id", id.Value, "error", err)
		t.notify.Error(fmt.Sprintf("Failed to delete %s: %s", strings.ToLower(t.entity.Label), Category(err)))
		return fmt.Errorf("delete %s %s: %w", t.entity.Name, id, err)
	}
	t.remove(id)
	t.mu.Unlock()

	t.log.Info(ctx, "record deleted", "id", id.Value)
	t.notify.Success(fmt.Sprintf("%s deleted successfully!", t.entity.Label))
	return nil
}
