package models

import "strings"

// Leave is a leave request (collection "leave").
type Leave struct {
	ID             RecordID `json:"id,omitzero"`
	EmployeeID     string   `json:"employeeId"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Position       string   `json:"position"`
	Department     string   `json:"department"`
	Apply          string   `json:"apply"`
	DateTo         string   `json:"date-to"`
	DateFrom       string   `json:"date-from"`
	Reason         string   `json:"reason"`
	Approval       string   `json:"approval"`
	DateOfApproval string   `json:"date-of-approval"`
}

const (
	LeaveTypeLeave     = "leave"
	LeaveTypeSick      = "sick"
	LeaveTypeVacation  = "vacation"
	LeaveTypeEmergency = "emergency"

	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
)

var leaveColumns = columns[*Leave]{
	{"employeeId", func(l *Leave) string { return l.EmployeeID }, func(l *Leave, v string) { l.EmployeeID = v }},
	{"firstName", func(l *Leave) string { return l.FirstName }, func(l *Leave, v string) { l.FirstName = v }},
	{"lastName", func(l *Leave) string { return l.LastName }, func(l *Leave, v string) { l.LastName = v }},
	{"position", func(l *Leave) string { return l.Position }, func(l *Leave, v string) { l.Position = v }},
	{"department", func(l *Leave) string { return l.Department }, func(l *Leave, v string) { l.Department = v }},
	{"apply", func(l *Leave) string { return l.Apply }, func(l *Leave, v string) { l.Apply = v }},
	{"date-from", func(l *Leave) string { return l.DateFrom }, func(l *Leave, v string) { l.DateFrom = v }},
	{"date-to", func(l *Leave) string { return l.DateTo }, func(l *Leave, v string) { l.DateTo = v }},
	{"reason", func(l *Leave) string { return l.Reason }, func(l *Leave, v string) { l.Reason = v }},
	{"approval", func(l *Leave) string { return l.Approval }, func(l *Leave, v string) { l.Approval = v }},
	{"date-of-approval", func(l *Leave) string { return l.DateOfApproval }, func(l *Leave, v string) { l.DateOfApproval = v }},
}

var LeaveRequests = Entity[*Leave]{
	Name:   "leave",
	Path:   "leave",
	Label:  "Leave request",
	Plural: "leave requests",
	New: func() *Leave {
		return &Leave{Apply: LeaveTypeLeave, Approval: ApprovalPending}
	},
}

func (l *Leave) GetID() RecordID          { return l.ID }
func (l *Leave) SetID(id RecordID)        { l.ID = id }
func (l *Leave) Clone() *Leave            { c := *l; return &c }
func (l *Leave) Merge(src *Leave)         { leaveColumns.merge(l, src) }
func (l *Leave) Fields() []Field          { return leaveColumns.fields(l) }
func (l *Leave) Set(name, v string) error { return leaveColumns.set(l, name, v) }
func (l *Leave) Secret() (string, bool)   { return "", false }
func (l *Leave) SetSecret(string)         {}

func (l *Leave) Required() []string {
	return []string{"firstName", "lastName", "date-to", "date-from", "reason"}
}

func (l *Leave) SearchFields() []string {
	return append([]string{l.ID.Value},
		leaveColumns.values(l, "firstName", "lastName", "position", "department", "apply", "reason", "approval")...)
}

func (l *Leave) Title() string {
	return strings.TrimSpace(l.FirstName+" "+l.LastName) + " " + l.DateFrom + ".." + l.DateTo
}

// LeaveTypeLabel renders a leave type for display.
func LeaveTypeLabel(apply string) string {
	switch apply {
	case LeaveTypeLeave:
		return "Leave"
	case LeaveTypeSick:
		return "Sick Leave"
	case LeaveTypeVacation:
		return "Vacation"
	case LeaveTypeEmergency:
		return "Emergency Leave"
	default:
		return apply
	}
}
