package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/hrconsole/internal/client/models"
	"github.com/dmitrijs2005/hrconsole/internal/client/table"
)

// tableView is the entity-independent surface of table.Table the commands
// drive.
type tableView interface {
	Label() string
	Scope(query url.Values)
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
	Search(term string)
	ApplyFilter(term string)
	Term() string
	AddNew() models.RecordID
	BeginEdit(id models.RecordID) error
	SetField(id models.RecordID, name, value string) error
	SaveEdit(ctx context.Context, id models.RecordID) error
	DiscardEdit(id models.RecordID) error
	Delete(ctx context.Context, id models.RecordID) error
	Missing(id models.RecordID) []string
	Resolve(value string) (models.RecordID, bool)
	View() []table.Row
	Close()
}

// displayValue decorates coded values with their labels.
func displayValue(name, value string) string {
	switch name {
	case "password":
		if value == "" {
			return ""
		}
		return models.PasswordMask
	case "status":
		return models.StatusLabel(value)
	case "apply":
		return models.LeaveTypeLabel(value)
	case "access":
		return models.AccessLabel(value)
	}
	return value
}

func rowState(r table.Row) string {
	switch {
	case r.Saving:
		return "saving"
	case r.ID.IsPending():
		return "new"
	case r.Editing:
		return "editing"
	}
	return ""
}

// renderRows writes rows as an aligned table. Passwords are not listed.
func renderRows(w io.Writer, rows []table.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No records.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := []string{"ID", "STATE"}
	for _, f := range rows[0].Fields {
		if f.Name != "password" {
			header = append(header, strings.ToUpper(f.Name))
		}
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, r := range rows {
		cells := []string{r.ID.String(), rowState(r)}
		for _, f := range r.Fields {
			if f.Name != "password" {
				cells = append(cells, displayValue(f.Name, f.Value))
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// renderRow writes one row as "field: value" lines.
func renderRow(w io.Writer, label string, r table.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", label+":", r.Title)
	fmt.Fprintf(tw, "id:\t%s\n", r.ID)
	if s := rowState(r); s != "" {
		fmt.Fprintf(tw, "state:\t%s\n", s)
	}
	for _, f := range r.Fields {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Name, displayValue(f.Name, f.Value))
	}
	return tw.Flush()
}
