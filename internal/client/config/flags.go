package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/hrconsole/internal/flagx"
)

func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-s", "-i", "-f"})

	fs := flag.NewFlagSet("hrconsole", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StoreBaseURL, "a", cfg.StoreBaseURL, "record store base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	debounce := fs.Int("s", int(cfg.SearchDebounce.Milliseconds()), "search debounce (in milliseconds)")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabaseFile, "f", cfg.DatabaseFile, "local database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.SearchDebounce = time.Duration(*debounce) * time.Millisecond
	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
}
