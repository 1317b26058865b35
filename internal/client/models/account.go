package models

import "strings"

// Role is the kind of account a session is logged in with.
type Role string

const (
	RoleNone  Role = ""
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Account is the subset of an admin or employee record kept in the session.
type Account struct {
	ID        RecordID `json:"id,omitzero"`
	Username  string   `json:"username"`
	Email     string   `json:"email,omitempty"`
	Fullname  string   `json:"fullname,omitempty"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Access    string   `json:"access,omitempty"`
	Role      Role     `json:"role,omitempty"`
}

func (a *Account) DisplayName() string {
	if a.Fullname != "" {
		return a.Fullname
	}
	if n := strings.TrimSpace(a.FirstName + " " + a.LastName); n != "" {
		return n
	}
	return a.Username
}

// Clone copies a; a nil account stays nil.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
