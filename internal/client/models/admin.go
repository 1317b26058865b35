package models

// Admin is a console administrator account (collection "admin").
type Admin struct {
	ID       RecordID `json:"id,omitzero"`
	Username string   `json:"username"`
	Password string   `json:"password,omitempty"`
	Email    string   `json:"email"`
	Fullname string   `json:"fullname"`
	Access   string   `json:"access"`
}

var adminColumns = columns[*Admin]{
	{"username", func(a *Admin) string { return a.Username }, func(a *Admin, v string) { a.Username = v }},
	{"password", func(a *Admin) string { return a.Password }, func(a *Admin, v string) { a.Password = v }},
	{"email", func(a *Admin) string { return a.Email }, func(a *Admin, v string) { a.Email = v }},
	{"fullname", func(a *Admin) string { return a.Fullname }, func(a *Admin, v string) { a.Fullname = v }},
	{"access", func(a *Admin) string { return a.Access }, func(a *Admin, v string) { a.Access = v }},
}

var Admins = Entity[*Admin]{
	Name:   "admin",
	Path:   "admin",
	Label:  "Admin",
	Plural: "admins",
	New:    func() *Admin { return &Admin{Access: "admin"} },
}

func (a *Admin) GetID() RecordID        { return a.ID }
func (a *Admin) SetID(id RecordID)      { a.ID = id }
func (a *Admin) Clone() *Admin          { c := *a; return &c }
func (a *Admin) Merge(src *Admin)       { adminColumns.merge(a, src) }
func (a *Admin) Fields() []Field        { return adminColumns.fields(a) }
func (a *Admin) Required() []string     { return []string{"username", "email", "fullname"} }
func (a *Admin) Secret() (string, bool) { return a.Password, true }
func (a *Admin) SetSecret(v string)     { a.Password = v }
func (a *Admin) Title() string          { return a.Fullname }

func (a *Admin) Set(name, value string) error { return adminColumns.set(a, name, value) }

func (a *Admin) SearchFields() []string {
	return append([]string{a.ID.Value}, adminColumns.values(a, "username", "email", "fullname", "access")...)
}

// AccessLabel renders an access level for display.
func AccessLabel(access string) string {
	switch access {
	case "admin":
		return "Administrator"
	case "super-admin", "superadmin":
		return "Super Administrator"
	case "":
		return "-"
	default:
		return access
	}
}
