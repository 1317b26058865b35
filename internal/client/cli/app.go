package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/hrconsole/internal/client/client"
	"github.com/dmitrijs2005/hrconsole/internal/client/config"
	"github.com/dmitrijs2005/hrconsole/internal/client/models"
	"github.com/dmitrijs2005/hrconsole/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/hrconsole/internal/client/services"
	"github.com/dmitrijs2005/hrconsole/internal/client/session"
	"github.com/dmitrijs2005/hrconsole/internal/client/table"
	"github.com/dmitrijs2005/hrconsole/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Table names accepted by the "use" command.
const (
	tableAdmin      = "admin"
	tableEmployees  = "employees"
	tableAttendance = "attendance"
	tableLeave      = "leave"
)

var tableOrder = []string{tableAdmin, tableEmployees, tableAttendance, tableLeave}

type pinger interface {
	Ping(ctx context.Context) error
}

type employeeGetter interface {
	Get(ctx context.Context, id string) (*models.Employee, error)
}

type summarizer interface {
	Summarize(ctx context.Context) (services.Summary, error)
	SummarizeEmployee(ctx context.Context, employeeID string) (services.Summary, error)
}

// stores are the record store collections behind the four tables.
type stores struct {
	admins     table.Store[*models.Admin]
	employees  table.Store[*models.Employee]
	attendance table.Store[*models.Attendance]
	leave      table.Store[*models.Leave]
}

type App struct {
	config *config.Config
	log    logging.Logger
	out    io.Writer
	in     *bufio.Scanner

	closer    io.Closer
	pinger    pinger
	session   *session.Session
	dashboard summarizer
	employees employeeGetter

	tables     map[string]tableView
	attendance *table.Table[*models.Attendance]
	current    string
	lastNew    models.RecordID

	unsubscribe func()

	modeMu sync.Mutex
	mode   Mode
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabaseFile)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.StoreBaseURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	admins := client.ForEntity(api, models.Admins)
	employees := client.ForEntity(api, models.Employees)
	attendance := client.ForEntity(api, models.AttendanceRecords)
	leave := client.ForEntity(api, models.LeaveRequests)

	sess := session.New(
		client.NewDirectory(api, models.Admins.Path),
		client.NewDirectory(api, models.Employees.Path),
		metadata.NewSQLiteRepository(db),
		log,
	)

	a := &App{
		config:    c,
		log:       log.With("module", "cli"),
		out:       os.Stdout,
		in:        bufio.NewScanner(os.Stdin),
		closer:    db,
		pinger:    api,
		session:   sess,
		dashboard: services.NewDashboard(admins, employees, attendance, leave),
		employees: employees,
		mode:      ModeOffline,
	}
	a.bind(stores{admins: admins, employees: employees, attendance: attendance, leave: leave})
	return a, nil
}

// bind builds the tables over s and follows session changes.
func (a *App) bind(s stores) {
	n := newConsoleNotifier(a.out)
	d := a.config.SearchDebounce

	a.attendance = table.New[*models.Attendance](models.AttendanceRecords, s.attendance, n, a.log, d)
	a.tables = map[string]tableView{
		tableAdmin:      table.New[*models.Admin](models.Admins, s.admins, n, a.log, d),
		tableEmployees:  table.New[*models.Employee](models.Employees, s.employees, n, a.log, d),
		tableAttendance: a.attendance,
		tableLeave:      table.New[*models.Leave](models.LeaveRequests, s.leave, n, a.log, d),
	}
	a.unsubscribe = a.session.Subscribe(a.onSession)
}

func (a *App) onSession(acc *models.Account) {
	if acc == nil || !a.allowed(acc.Role, a.current) {
		a.current = ""
	}
}

// Run restores the saved session, starts the connectivity watcher and
// blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if acc, err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	} else if acc != nil {
		printlnFn("Welcome back,", acc.DisplayName())
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	printlnFn("Welcome to HR console (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.in)
}

func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	for _, t := range a.tables {
		t.Close()
	}
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.log.Warn(context.Background(), "close database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

// status is shown in the prompt: "(ana@attendance online)".
func (a *App) status() string {
	s := ""
	if acc := a.session.Current(); acc != nil {
		s = acc.Username
		if a.current != "" {
			s += "@" + a.current
		}
		s += " "
	}
	return fmt.Sprintf("(%s%s)", s, a.Mode())
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, interval)
			err := a.pinger.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
