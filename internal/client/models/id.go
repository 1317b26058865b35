package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// IDKind tags which identifier space a RecordID belongs to.
type IDKind uint8

const (
	// Persisted ids are assigned (or echoed) by the record store.
	Persisted IDKind = iota + 1
	// Pending ids are client placeholders for rows that were never saved.
	Pending
)

func (k IDKind) String() string {
	switch k {
	case Persisted:
		return "persisted"
	case Pending:
		return "pending"
	default:
		return "none"
	}
}

// ErrPendingID is returned when a pending placeholder would leave the process.
var ErrPendingID = errors.New("pending id must not be sent to the record store")

// RecordID identifies a record. The zero value means "no id yet".
// RecordID is comparable and is used directly as a map key.
type RecordID struct {
	Kind  IDKind
	Value string
}

func PersistedID(v string) RecordID { return RecordID{Kind: Persisted, Value: v} }

func PendingID(v string) RecordID { return RecordID{Kind: Pending, Value: v} }

func (id RecordID) IsPending() bool   { return id.Kind == Pending }
func (id RecordID) IsPersisted() bool { return id.Kind == Persisted }
func (id RecordID) IsZero() bool      { return id.Kind == 0 && id.Value == "" }
func (id RecordID) String() string    { return id.Value }

// Int returns the numeric value of a persisted id.
func (id RecordID) Int() (int64, bool) {
	if !id.IsPersisted() {
		return 0, false
	}
	n, err := strconv.ParseInt(id.Value, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (id RecordID) MarshalJSON() ([]byte, error) {
	switch id.Kind {
	case Pending:
		return nil, fmt.Errorf("%w: %s", ErrPendingID, id.Value)
	case 0:
		return []byte("null"), nil
	default:
		return json.Marshal(id.Value)
	}
}

// UnmarshalJSON accepts a string or a number. Anything read from the wire is
// a persisted id; numbers are normalised to their decimal form.
func (id *RecordID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = RecordID{}
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*id = RecordID{}
			return nil
		}
		*id = PersistedID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid record id %s: %w", string(b), err)
	}
	if i, err := n.Int64(); err == nil {
		*id = PersistedID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = PersistedID(n.String())
	return nil
}
