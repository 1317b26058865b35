package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hrconsole/internal/flagx"
	"github.com/dmitrijs2005/hrconsole/internal/timex"
)

// JsonConfig is the on-disk shape. Absent keys keep the current value.
type JsonConfig struct {
	StoreBaseURL        string         `json:"store_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	SearchDebounce      timex.Duration `json:"search_debounce"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DatabaseFile        string         `json:"database_file"`
}

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

	if jc.StoreBaseURL != "" {
		cfg.StoreBaseURL = jc.StoreBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SearchDebounce.Duration > 0 {
		cfg.SearchDebounce = jc.SearchDebounce.Duration
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
}
