package models

import "strings"

// Employee is a staff account (collection "users").
type Employee struct {
	ID         RecordID `json:"id,omitzero"`
	FirstName  string   `json:"firstName"`
	MiddleName string   `json:"middleName"`
	LastName   string   `json:"lastName"`
	Contact    string   `json:"contact"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Password   string   `json:"password,omitempty"`
}

var employeeColumns = columns[*Employee]{
	{"firstName", func(e *Employee) string { return e.FirstName }, func(e *Employee, v string) { e.FirstName = v }},
	{"middleName", func(e *Employee) string { return e.MiddleName }, func(e *Employee, v string) { e.MiddleName = v }},
	{"lastName", func(e *Employee) string { return e.LastName }, func(e *Employee, v string) { e.LastName = v }},
	{"contact", func(e *Employee) string { return e.Contact }, func(e *Employee, v string) { e.Contact = v }},
	{"department", func(e *Employee) string { return e.Department }, func(e *Employee, v string) { e.Department = v }},
	{"position", func(e *Employee) string { return e.Position }, func(e *Employee, v string) { e.Position = v }},
	{"username", func(e *Employee) string { return e.Username }, func(e *Employee, v string) { e.Username = v }},
	{"email", func(e *Employee) string { return e.Email }, func(e *Employee, v string) { e.Email = v }},
	{"password", func(e *Employee) string { return e.Password }, func(e *Employee, v string) { e.Password = v }},
}

var Employees = Entity[*Employee]{
	Name:   "employee",
	Path:   "users",
	Label:  "Employee",
	Plural: "employees",
	New:    func() *Employee { return &Employee{} },
}

func (e *Employee) GetID() RecordID          { return e.ID }
func (e *Employee) SetID(id RecordID)        { e.ID = id }
func (e *Employee) Clone() *Employee         { c := *e; return &c }
func (e *Employee) Merge(src *Employee)      { employeeColumns.merge(e, src) }
func (e *Employee) Fields() []Field          { return employeeColumns.fields(e) }
func (e *Employee) Set(name, v string) error { return employeeColumns.set(e, name, v) }
func (e *Employee) Secret() (string, bool)   { return e.Password, true }
func (e *Employee) SetSecret(v string)       { e.Password = v }

func (e *Employee) Required() []string {
	return []string{"firstName", "lastName", "contact", "department", "position", "username", "email"}
}

func (e *Employee) SearchFields() []string {
	return append([]string{e.ID.Value},
		employeeColumns.values(e, "firstName", "lastName", "email", "department", "position", "username")...)
}

// Title is the display name, "First Middle Last" without empty parts.
func (e *Employee) Title() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FirstName, e.MiddleName, e.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
