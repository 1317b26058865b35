package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hrconsole/internal/flagx"
	"github.com/dmitrijs2005/hrconsole/internal/timex"
)

// JsonConfig is the on-disk shape. Durations accept "5s" or nanoseconds.
// Absent keys keep the current value.
type JsonConfig struct {
	ListenAddr        string         `json:"listen_addr"`
	DatabaseDSN       string         `json:"database_dsn"`
	SeedAdminUsername string         `json:"seed_admin_username"`
	SeedAdminPassword string         `json:"seed_admin_password"`
	ShutdownTimeout   timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SeedAdminUsername != "" {
		cfg.SeedAdminUsername = jc.SeedAdminUsername
	}
	if jc.SeedAdminPassword != "" {
		cfg.SeedAdminPassword = jc.SeedAdminPassword
	}
	if jc.ShutdownTimeout.Duration > 0 {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
}
