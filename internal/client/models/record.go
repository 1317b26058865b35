// Package models defines the HR record types edited by the console tables,
// the typed RecordID and the entity descriptors binding a type to its
// record store collection.
package models

import (
	"errors"
	"fmt"
)

// PasswordMask is what the record store renders in place of a stored password.
const PasswordMask = "••••••••"

var ErrUnknownField = errors.New("unknown field")

// Field is one named column of a record, in display order.
type Field struct {
	Name  string
	Value string
}

// Record is implemented by the pointer types of every entity
// (*Admin, *Employee, *Attendance, *Leave).
type Record[T any] interface {
	GetID() RecordID
	SetID(RecordID)

	// Clone returns an independent copy.
	Clone() T
	// Merge copies every field of src over the receiver, blanks included.
	// A blank password keeps the receiver's. The id is left untouched.
	Merge(src T)

	Fields() []Field
	Set(name, value string) error

	// Required lists the field names that must be non-blank before save.
	Required() []string
	// SearchFields are the values matched by the filter view, id first.
	SearchFields() []string

	// Secret reports the password field, if the type has one.
	Secret() (value string, ok bool)
	SetSecret(string)

	Title() string
}

// Entity binds a record type to its collection.
type Entity[T Record[T]] struct {
	Name   string
	Path   string
	Label  string
	Plural string
	// New returns a blank record carrying the entity defaults.
	New func() T
}

// passwordColumn is omitted from responses, so a blank value means unchanged.
const passwordColumn = "password"

type column[T any] struct {
	name string
	get  func(T) string
	set  func(T, string)
}

type columns[T any] []column[T]

func (cs columns[T]) fields(r T) []Field {
	out := make([]Field, 0, len(cs))
	for _, c := range cs {
		out = append(out, Field{Name: c.name, Value: c.get(r)})
	}
	return out
}

func (cs columns[T]) set(r T, name, value string) error {
	for _, c := range cs {
		if c.name == name {
			c.set(r, value)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func (cs columns[T]) merge(dst, src T) {
	for _, c := range cs {
		v := c.get(src)
		if v == "" && c.name == passwordColumn {
			continue
		}
		c.set(dst, v)
	}
}

func (cs columns[T]) values(r T, names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		for _, c := range cs {
			if c.name == n {
				out = append(out, c.get(r))
				break
			}
		}
	}
	return out
}

// FieldValue returns the value of the named field, or "" when absent.
func FieldValue[T Record[T]](r T, name string) string {
	for _, f := range r.Fields() {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}
