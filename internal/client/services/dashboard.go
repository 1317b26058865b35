// Package services contains console services built on top of several record
// store collections.
package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/hrconsole/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// Lister lists one collection.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Finder lists the records of a collection matching a field equality query.
type Finder[T any] interface {
	Find(ctx context.Context, query url.Values) ([]T, error)
}

type Source[T any] interface {
	Lister[T]
	Finder[T]
}

// Summary is what the dashboard screen shows.
type Summary struct {
	Admins     int
	Employees  int
	TotalUsers int

	Attendance         int
	AttendanceByStatus map[string]int
	Leave              int
	LeaveByApproval    map[string]int
}

type Dashboard struct {
	admins     Lister[*models.Admin]
	employees  Lister[*models.Employee]
	attendance Source[*models.Attendance]
	leave      Source[*models.Leave]
}

func NewDashboard(
	admins Lister[*models.Admin],
	employees Lister[*models.Employee],
	attendance Source[*models.Attendance],
	leave Source[*models.Leave],
) *Dashboard {
	return &Dashboard{admins: admins, employees: employees, attendance: attendance, leave: leave}
}

// Summarize counts every collection. The four reads run concurrently; the
// first failure cancels the rest.
func (d *Dashboard) Summarize(ctx context.Context) (Summary, error) {
	var (
		admins     []*models.Admin
		employees  []*models.Employee
		attendance []*models.Attendance
		leave      []*models.Leave
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { admins, err = d.admins.List(ctx); return })
	g.Go(func() (err error) { employees, err = d.employees.List(ctx); return })
	g.Go(func() (err error) { attendance, err = d.attendance.List(ctx); return })
	g.Go(func() (err error) { leave, err = d.leave.List(ctx); return })
	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("dashboard: %w", err)
	}

	s := Summary{
		Admins:     len(admins),
		Employees:  len(employees),
		TotalUsers: len(admins) + len(employees),
	}
	s.Attendance, s.AttendanceByStatus = countAttendance(attendance)
	s.Leave, s.LeaveByApproval = countLeave(leave)
	return s, nil
}

// SummarizeEmployee is the dashboard of a non-admin session: only the
// attendance and leave records of that employee.
func (d *Dashboard) SummarizeEmployee(ctx context.Context, employeeID string) (Summary, error) {
	q := url.Values{"employeeId": {employeeID}}

	var (
		attendance []*models.Attendance
		leave      []*models.Leave
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { attendance, err = d.attendance.Find(ctx, q); return })
	g.Go(func() (err error) { leave, err = d.leave.Find(ctx, q); return })
	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("dashboard: %w", err)
	}

	var s Summary
	s.Attendance, s.AttendanceByStatus = countAttendance(attendance)
	s.Leave, s.LeaveByApproval = countLeave(leave)
	return s, nil
}

func countAttendance(list []*models.Attendance) (int, map[string]int) {
	by := make(map[string]int)
	for _, a := range list {
		by[a.Status]++
	}
	return len(list), by
}

func countLeave(list []*models.Leave) (int, map[string]int) {
	by := make(map[string]int)
	for _, l := range list {
		approval := l.Approval
		if approval == "" {
			approval = models.ApprovalPending
		}
		by[approval]++
	}
	return len(list), by
}
