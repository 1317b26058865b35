package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://localhost:3000", "-x", "1"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:3000"},
		},
		{
			name:    "equals form",
			args:    []string{"-s=250", "-a", "x"},
			allowed: []string{"-s"},
			want:    []string{"-s=250"},
		},
		{
			name:    "order is preserved across flags",
			args:    []string{"-t", "5", "-a", "http://h", "-f", "local.db"},
			allowed: []string{"-f", "-t"},
			want:    []string{"-t", "5", "-f", "local.db"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "dangling flag kept alone",
			args:    []string{"-a"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "next flag is not consumed as value",
			args:    []string{"-a", "-t", "3"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "value containing equals after flag name",
			args:    []string{"-d=postgres://u:p@h/db?sslmode=disable"},
			allowed: []string{"-d"},
			want:    []string{"-d=postgres://u:p@h/db?sslmode=disable"},
		},
		{
			name:    "repeated flag kept in order",
			args:    []string{"-c", "one.json", "-c", "two.json"},
			allowed: []string{"-c"},
			want:    []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:    "empty input",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/hr.json"}, "/etc/hr.json"},
		{"long", []string{"-config", "/etc/hr.json"}, "/etc/hr.json"},
		{"long equals", []string{"-config=/tmp/a.json", "-a", "x"}, "/tmp/a.json"},
		{"absent", []string{"-a", "x", "-t", "2"}, ""},
		{"last wins", []string{"-c", "/1.json", "-config", "/2.json"}, "/2.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigPath(tt.args))
		})
	}
}
