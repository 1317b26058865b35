package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI() error
	Tables() error
	Use(ctx context.Context, name string) error
	List() error
	Refresh(ctx context.Context) error
	Search(term string) error
	Filter(term string) error
	Add() error
	Edit(id string) error
	Set(id, field, value string) error
	Save(ctx context.Context, id string) error
	Cancel(id string) error
	Delete(ctx context.Context, id string) error
	Show(id string) error
	Assign(ctx context.Context, attendanceID, employeeID string) error
	Dashboard(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, exit"
	helpLoggedIn  = `Available commands:
  tables | use <table> | (l)ist | refresh
  search <text> | filter [text]
  add | edit <id> | set <id> <field> <value> | save <id> | cancel <id> | delete <id> | show <id>
  assign <attendance-id> <employee-id> | dashboard
  whoami | logout | exit`
)

// runREPL starts a read-eval-print loop for the HR console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Command errors are printed and
// the loop continues. The loop exits on scanner EOF, on ctx cancellation or
// when the user types "exit" or "quit".
//
// The id argument of row commands is a record id as listed, or "new" for the
// row opened by the last "add". The value of "set" and the text of "search"
// and "filter" run to the end of the line.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("hr %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI()

		case "tables":
			err = a.Tables()

		case "use":
			if err = need(cmd, args, 1, "<table>"); err == nil {
				err = a.Use(ctx, args[0])
			}

		case "l", "list":
			err = a.List()

		case "refresh":
			err = a.Refresh(ctx)

		case "search":
			err = a.Search(strings.Join(args, " "))

		case "filter":
			err = a.Filter(strings.Join(args, " "))

		case "add":
			err = a.Add()

		case "edit":
			if err = need(cmd, args, 1, "<id>"); err == nil {
				err = a.Edit(args[0])
			}

		case "set":
			if err = need(cmd, args, 2, "<id> <field> <value>"); err == nil {
				err = a.Set(args[0], args[1], strings.Join(args[2:], " "))
			}

		case "save":
			if err = need(cmd, args, 1, "<id>"); err == nil {
				err = a.Save(ctx, args[0])
			}

		case "cancel":
			if err = need(cmd, args, 1, "<id>"); err == nil {
				err = a.Cancel(args[0])
			}

		case "delete", "rm":
			if err = need(cmd, args, 1, "<id>"); err == nil {
				err = a.Delete(ctx, args[0])
			}

		case "show":
			if err = need(cmd, args, 1, "<id>"); err == nil {
				err = a.Show(args[0])
			}

		case "assign":
			if err = need(cmd, args, 2, "<attendance-id> <employee-id>"); err == nil {
				err = a.Assign(ctx, args[0], args[1])
			}

		case "dashboard":
			err = a.Dashboard(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

func need(cmd string, args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("usage: %s %s", cmd, usage)
	}
	return nil
}
