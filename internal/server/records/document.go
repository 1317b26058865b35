package records

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hrconsole/internal/common"
)

// Collections served by the record store.
const (
	Admins     = "admin"
	Users      = "users"
	Attendance = "attendance"
	Leave      = "leave"
)

var Collections = []string{Admins, Users, Attendance, Leave}

// PasswordMask replaces stored password hashes in every response.
const PasswordMask = "••••••••"

const (
	fieldID       = "id"
	fieldPassword = "password"
	fieldUsername = "username"
)

// Document is one stored record, as decoded from JSON. The id lives next to
// the document, not inside it.
type Document map[string]any

// Clone copies the top level of d.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}
	return maps.Clone(d)
}

// String renders the field the way a query string would spell it.
func (d Document) String(name string) string {
	return stringify(d[name])
}

func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

func knownCollection(entity string) bool {
	return slices.Contains(Collections, entity)
}

func hasUsername(entity string) bool {
	return entity == Admins || entity == Users
}

// ParseID reads a record id from a path segment or a JSON value.
func ParseID(v any) (int64, error) {
	s := strings.TrimSpace(stringify(v))
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", common.ErrorValidation, s)
	}
	return id, nil
}

// render is the response shape of a stored document: the id set and the
// password masked.
func render(id int64, doc Document) Document {
	out := doc.Clone()
	out[fieldID] = id
	if out.String(fieldPassword) != "" {
		out[fieldPassword] = PasswordMask
	}
	return out
}

// Record pairs a document with its id.
type Record struct {
	ID  int64
	Doc Document
}
