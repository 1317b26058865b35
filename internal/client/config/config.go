package config

import (
	"os"
	"time"
)

type Config struct {
	StoreBaseURL        string
	RequestTimeout      time.Duration
	SearchDebounce      time.Duration
	OnlineCheckInterval time.Duration
	DatabaseFile        string
}

func (c *Config) LoadDefaults() {
	c.StoreBaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.SearchDebounce = 300 * time.Millisecond
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabaseFile = "hrconsole.db"
}

// LoadConfig applies defaults, then the JSON file, then flags. It panics on
// an unreadable file or malformed flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
