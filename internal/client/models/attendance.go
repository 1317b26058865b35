package models

import "strings"

// Attendance is one day's time record of an employee (collection "attendance").
type Attendance struct {
	ID         RecordID `json:"id,omitzero"`
	Date       string   `json:"date"`
	EmployeeID string   `json:"employeeId"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Position   string   `json:"position"`
	Department string   `json:"department"`
	TimeIn     string   `json:"time-in"`
	TimeOut    string   `json:"time-out"`
	Status     string   `json:"status"`
}

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusLeave   = "leave"
	StatusHalfDay = "half-day"
)

// NoTimeOut marks an attendance row whose employee has not clocked out.
const NoTimeOut = "--"

var attendanceColumns = columns[*Attendance]{
	{"date", func(a *Attendance) string { return a.Date }, func(a *Attendance, v string) { a.Date = v }},
	{"employeeId", func(a *Attendance) string { return a.EmployeeID }, func(a *Attendance, v string) { a.EmployeeID = v }},
	{"firstName", func(a *Attendance) string { return a.FirstName }, func(a *Attendance, v string) { a.FirstName = v }},
	{"lastName", func(a *Attendance) string { return a.LastName }, func(a *Attendance, v string) { a.LastName = v }},
	{"position", func(a *Attendance) string { return a.Position }, func(a *Attendance, v string) { a.Position = v }},
	{"department", func(a *Attendance) string { return a.Department }, func(a *Attendance, v string) { a.Department = v }},
	{"time-in", func(a *Attendance) string { return a.TimeIn }, func(a *Attendance, v string) { a.TimeIn = v }},
	{"time-out", func(a *Attendance) string { return a.TimeOut }, func(a *Attendance, v string) { a.TimeOut = v }},
	{"status", func(a *Attendance) string { return a.Status }, func(a *Attendance, v string) { a.Status = v }},
}

var AttendanceRecords = Entity[*Attendance]{
	Name:   "attendance",
	Path:   "attendance",
	Label:  "Attendance",
	Plural: "attendance records",
	New: func() *Attendance {
		return &Attendance{Status: StatusPresent, TimeOut: NoTimeOut}
	},
}

func (a *Attendance) GetID() RecordID          { return a.ID }
func (a *Attendance) SetID(id RecordID)        { a.ID = id }
func (a *Attendance) Clone() *Attendance       { c := *a; return &c }
func (a *Attendance) Merge(src *Attendance)    { attendanceColumns.merge(a, src) }
func (a *Attendance) Fields() []Field          { return attendanceColumns.fields(a) }
func (a *Attendance) Set(name, v string) error { return attendanceColumns.set(a, name, v) }
func (a *Attendance) Secret() (string, bool)   { return "", false }
func (a *Attendance) SetSecret(string)         {}

func (a *Attendance) Required() []string {
	return []string{"date", "employeeId", "status", "time-in"}
}

func (a *Attendance) SearchFields() []string {
	return append([]string{a.ID.Value}, attendanceColumns.values(a, "firstName", "lastName", "position", "department")...)
}

func (a *Attendance) Title() string {
	return strings.TrimSpace(a.FirstName+" "+a.LastName) + " " + a.Date
}

// AssignEmployee copies the identifying fields of e into the attendance row.
func (a *Attendance) AssignEmployee(e *Employee) {
	a.EmployeeID = e.ID.Value
	a.FirstName = e.FirstName
	a.LastName = e.LastName
	a.Position = e.Position
	a.Department = e.Department
}

// StatusLabel renders an attendance status for display.
func StatusLabel(status string) string {
	switch status {
	case StatusPresent:
		return "Present"
	case StatusAbsent:
		return "Absent"
	case StatusLate:
		return "Late"
	case StatusLeave:
		return "On Leave"
	case StatusHalfDay:
		return "Half Day"
	default:
		return status
	}
}
