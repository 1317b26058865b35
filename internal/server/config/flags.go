package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/hrconsole/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   listen address (e.g., ":3000")
//	-d string   PostgreSQL DSN, or "memory"
//	-s string   seed admin username
//	-p string   seed admin password
//	-w int      shutdown timeout, seconds
//
// Only the flags listed above are parsed; the rest of args is filtered out
// with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-p", "-w"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SeedAdminUsername, "s", cfg.SeedAdminUsername, "seed admin username")
	fs.StringVar(&cfg.SeedAdminPassword, "p", cfg.SeedAdminPassword, "seed admin password")
	shutdown := fs.Int("w", int(cfg.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ShutdownTimeout = time.Duration(*shutdown) * time.Second
}
