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
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-a", "localhost"},
			allowed: []string{"-c", "--config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "long flag with equals",
			args:    []string{"--config=alt.json", "-a", "localhost"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "unknown flags ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end is kept",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-m", "-d", "users.db"},
			allowed: []string{"-m", "-d"},
			want:    []string{"-m", "-d", "users.db"},
		},
		{
			name:    "several allowed flags keep their order",
			args:    []string{"-a", ":50051", "-c", "conf.json", "-m", "models"},
			allowed: []string{"-a", "-m"},
			want:    []string{"-a", ":50051", "-m", "models"},
		},
		{
			name:    "empty args",
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

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFile([]string{"-c", "a.json"}))
	assert.Equal(t, "b.json", ConfigFile([]string{"-d", "users.db", "-config", "b.json"}))
	assert.Equal(t, "c.json", ConfigFile([]string{"-config=c.json"}))
	assert.Equal(t, "", ConfigFile([]string{"-d", "users.db"}))
}
