// Package config loads runtime configuration for the HR console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   record store base URL
//	-t int      request timeout (seconds)
//	-s int      search debounce (milliseconds)
//	-i int      online status check interval (seconds)
//	-f string   local SQLite file holding the session
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "300ms" or
// integer nanoseconds:
//
//	{
//	  "store_base_url": "http://localhost:3000",
//	  "request_timeout": "10s",
//	  "search_debounce": "300ms",
//	  "online_check_interval": "3s",
//	  "database_file": "hrconsole.db"
//	}
package config
