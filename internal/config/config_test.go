package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanRulev/wordtrainer/internal/models"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
	return dir
}

const validYAML = `
env: production
app:
  timeout: 3s
api:
  base_url: https://words.example.com
table:
  page_size: 25
session:
  ttl: 1h
  cleanup_interval: 5m
rate_limit:
  rps: 2
  burst: 4
log:
  file: /tmp/wordtrainer.log
`

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_NAME", "test")
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := load(writeConfig(t, "test", validYAML))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, 3*time.Second, cfg.App.Timeout)
	assert.Equal(t, "https://words.example.com", cfg.API.BaseURL)
	assert.Equal(t, 25, cfg.Table.PageSize)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Session.CleanupInterval)
	assert.Equal(t, 2.0, cfg.RateLimit.RPS)
	assert.Equal(t, 4, cfg.RateLimit.Burst)
	assert.Equal(t, "/tmp/wordtrainer.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_NAME", "test")
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("API_BASE_URL", "http://127.0.0.1:9000")
	t.Setenv("APP_TIMEOUT", "1m")

	cfg, err := load(writeConfig(t, "test", validYAML))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000", cfg.API.BaseURL)
	assert.Equal(t, time.Minute, cfg.App.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		token     string
		wantField string
	}{
		{
			name:      "missing bot token",
			yaml:      validYAML,
			wantField: "bot_token",
		},
		{
			name:      "bad base url",
			yaml:      "env: production\napi:\n  base_url: not a url\n",
			token:     "t",
			wantField: "base_url",
		},
		{
			name:      "unknown env",
			yaml:      "env: qa\napi:\n  base_url: http://x.io\n",
			token:     "t",
			wantField: "env",
		},
		{
			name:      "page size",
			yaml:      "api:\n  base_url: http://x.io\ntable:\n  page_size: 7\n",
			token:     "t",
			wantField: "page_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_NAME", "test")
			t.Setenv("BOT_TOKEN", tt.token)

			_, err := load(writeConfig(t, "test", tt.yaml))

			var verrs models.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_NAME", "absent")

	_, err := load(t.TempDir())
	require.Error(t, err)
}
