package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrijs2005/hrconsole/internal/client/models"
	"github.com/dmitrijs2005/hrconsole/internal/client/services"
	"github.com/dmitrijs2005/hrconsole/internal/client/table"
)

var (
	errNotLoggedIn = errors.New("please log in first")
	errNoTable     = errors.New("no table selected, type 'use <table>'")
	errForbidden   = errors.New("table not available for your account")
)

// newRowAlias refers to the row created by the last "add".
const newRowAlias = "new"

func (a *App) allowed(role models.Role, name string) bool {
	switch role {
	case models.RoleAdmin:
		return slices.Contains(tableOrder, name)
	case models.RoleUser:
		return name == tableAttendance || name == tableLeave
	}
	return false
}

func (a *App) account() (*models.Account, error) {
	acc := a.session.Current()
	if acc == nil {
		return nil, errNotLoggedIn
	}
	return acc, nil
}

func (a *App) table() (tableView, error) {
	if _, err := a.account(); err != nil {
		return nil, err
	}
	if a.current == "" {
		return nil, errNoTable
	}
	return a.tables[a.current], nil
}

// resolve maps user input to a row id of t.
func (a *App) resolve(t tableView, value string) (models.RecordID, error) {
	if value == newRowAlias && !a.lastNew.IsZero() {
		return a.lastNew, nil
	}
	if id, ok := t.Resolve(value); ok {
		return id, nil
	}
	for _, r := range t.View() {
		if r.ID.Value == value {
			return r.ID, nil
		}
	}
	return models.RecordID{}, fmt.Errorf("no %s with id %q", strings.ToLower(t.Label()), value)
}

// reported drops errors the table has already notified the user about.
func reported(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, table.ErrBusy), errors.Is(err, table.ErrNotFound), errors.Is(err, table.ErrNotEditing):
		return err
	}
	return nil
}

func (a *App) Tables() error {
	acc, err := a.account()
	if err != nil {
		return err
	}
	for _, name := range tableOrder {
		if a.allowed(acc.Role, name) {
			printlnFn(" ", name)
		}
	}
	return nil
}

// Use selects and loads a table. Employees only see their own rows.
func (a *App) Use(ctx context.Context, name string) error {
	acc, err := a.account()
	if err != nil {
		return err
	}
	t, ok := a.tables[name]
	if !ok {
		return fmt.Errorf("unknown table %q (tables: %s)", name, strings.Join(tableOrder, ", "))
	}
	if !a.allowed(acc.Role, name) {
		return errForbidden
	}

	if acc.Role == models.RoleUser {
		t.Scope(url.Values{"employeeId": {acc.ID.Value}})
	} else {
		t.Scope(nil)
	}

	a.current = name
	a.lastNew = models.RecordID{}
	if err := t.Load(ctx); err != nil {
		return nil
	}
	return a.List()
}

func (a *App) List() error {
	t, err := a.table()
	if err != nil {
		return err
	}
	if term := t.Term(); term != "" {
		printlnFn(fmt.Sprintf("Filter: %q", term))
	}
	return renderRows(a.out, t.View())
}

func (a *App) Refresh(ctx context.Context) error {
	t, err := a.table()
	if err != nil {
		return err
	}
	a.lastNew = models.RecordID{}
	if err := t.Refresh(ctx); err != nil {
		return nil
	}
	return a.List()
}

// Search applies term after the debounce delay; Filter applies it at once.
func (a *App) Search(term string) error {
	t, err := a.table()
	if err != nil {
		return err
	}
	t.Search(term)
	return nil
}

func (a *App) Filter(term string) error {
	t, err := a.table()
	if err != nil {
		return err
	}
	t.ApplyFilter(term)
	return a.List()
}

// Add opens a new row in edit mode. Employees get their own details filled
// in.
func (a *App) Add() error {
	t, err := a.table()
	if err != nil {
		return err
	}
	acc, _ := a.account()

	id := t.AddNew()
	a.lastNew = id

	if acc.Role == models.RoleUser {
		for name, value := range map[string]string{
			"employeeId": acc.ID.Value,
			"firstName":  acc.FirstName,
			"lastName":   acc.LastName,
		} {
			if err := t.SetField(id, name, value); err != nil {
				return err
			}
		}
	}

	printlnFn(fmt.Sprintf("Editing new row %s (refer to it as %q).", id, newRowAlias))
	printlnFn("Set fields with: set new <field> <value>; then: save new")
	return nil
}

func (a *App) Edit(value string) error {
	t, err := a.table()
	if err != nil {
		return err
	}
	id, err := a.resolve(t, value)
	if err != nil {
		return err
	}
	if err := t.BeginEdit(id); err != nil {
		return err
	}
	return a.Show(value)
}

func (a *App) Set(value, field, fieldValue string) error {
	t, err := a.table()
	if err != nil {
		return err
	}
	id, err := a.resolve(t, value)
	if err != nil {
		return err
	}
	return t.SetField(id, field, fieldValue)
}

func (a *App) Save(ctx context.Context, value string) error {
	t, err := a.table()
	if err != nil {
		return err
	}
	id, err := a.resolve(t, value)
	if err != nil {
		return err
	}
	err = t.SaveEdit(ctx, id)
	if err == nil && id == a.lastNew {
		a.lastNew = models.RecordID{}
	}
	return reported(err)
}

func (a *App) Cancel(value string) error {
	t, err := a.table()
	if err != nil {
		return err
	}
	id, err := a.resolve(t, value)
	if err != nil {
		return err
	}
	if id == a.lastNew {
		a.lastNew = models.RecordID{}
	}
	return t.DiscardEdit(id)
}

func (a *App) Delete(ctx context.Context, value string) error {
	t, err := a.table()
	if err != nil {
		return err
	}
	id, err := a.resolve(t, value)
	if err != nil {
		return err
	}
	if id == a.lastNew {
		a.lastNew = models.RecordID{}
	}
	return reported(t.Delete(ctx, id))
}

func (a *App) Show(value string) error {
	t, err := a.table()
	if err != nil {
		return err
	}
	id, err := a.resolve(t, value)
	if err != nil {
		return err
	}
	for _, r := range t.View() {
		if r.ID == id {
			if err := renderRow(a.out, t.Label(), r); err != nil {
				return err
			}
			if r.Editing {
				if m := t.Missing(id); len(m) > 0 {
					printlnFn("Missing:", strings.Join(m, ", "))
				}
			}
			return nil
		}
	}
	return fmt.Errorf("%s %s is hidden by the current filter", strings.ToLower(t.Label()), id)
}

// Assign copies an employee's details into an attendance row's draft.
func (a *App) Assign(ctx context.Context, attendanceID, employeeID string) error {
	acc, err := a.account()
	if err != nil {
		return err
	}
	if acc.Role != models.RoleAdmin {
		return errForbidden
	}

	id, err := a.resolve(a.attendance, attendanceID)
	if err != nil {
		return err
	}
	emp, err := a.employees.Get(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("employee %s: %s", employeeID, table.Category(err))
	}

	if err := a.attendance.BeginEdit(id); err != nil {
		return err
	}
	if err := a.attendance.Edit(id, func(d *models.Attendance) error {
		d.AssignEmployee(emp)
		return nil
	}); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Assigned %s to attendance %s; save to keep it.", emp.Title(), id))
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	acc, err := a.account()
	if err != nil {
		return err
	}

	var s services.Summary
	if acc.Role == models.RoleAdmin {
		s, err = a.dashboard.Summarize(ctx)
	} else {
		s, err = a.dashboard.SummarizeEmployee(ctx, acc.ID.Value)
	}
	if err != nil {
		a.log.Error(ctx, "dashboard failed", "error", err)
		return errors.New(table.Category(err))
	}

	if acc.Role == models.RoleAdmin {
		printlnFn(fmt.Sprintf("Admins: %d  Employees: %d  Total users: %d", s.Admins, s.Employees, s.TotalUsers))
	}
	printlnFn(fmt.Sprintf("Attendance records: %d", s.Attendance))
	for _, status := range slices.Sorted(maps.Keys(s.AttendanceByStatus)) {
		printlnFn(fmt.Sprintf("  %s: %d", models.StatusLabel(status), s.AttendanceByStatus[status]))
	}
	printlnFn(fmt.Sprintf("Leave requests: %d", s.Leave))
	for _, approval := range slices.Sorted(maps.Keys(s.LeaveByApproval)) {
		printlnFn(fmt.Sprintf("  %s: %d", approval, s.LeaveByApproval[approval]))
	}
	return nil
}
