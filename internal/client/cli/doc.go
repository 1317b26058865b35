// Package cli provides the interactive HR console.
//
// It wires configuration, the local metadata store, the record store client
// and one editable table per collection, then runs a read-eval-print loop.
// A background watcher pings the record store and flips the prompt between
// online and offline.
//
// Admins work on every table. Employees see only their own attendance and
// leave rows and the dashboard summary for themselves.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
