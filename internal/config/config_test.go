package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"SHEET_ID", "SHEET_BASE_URL", "SHEET_TIMEOUT",
	"SENDER_EMAIL", "SENDER_PASSWORD",
	"SMTP_HOST", "SMTP_PORT",
	"MAIL_SUBJECT", "MAIL_TEST_SUBJECT", "SEND_INTERVAL",
	"LOG_LEVEL", "LOG_FILE",
}

// clearEnv blanks every key so the host environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mailer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://docs.google.com", cfg.SheetBaseURL)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, time.Second, cfg.SendInterval)
	assert.Equal(t, DefaultSubject, cfg.Subject)
	assert.Equal(t, DefaultSubject+" (TEST)", cfg.TestSubject)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.SheetTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHEET_ID", "sheet-123")
	t.Setenv("SENDER_EMAIL", "team@example.com")
	t.Setenv("SENDER_PASSWORD", "app-secret")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SEND_INTERVAL", "250ms")
	t.Setenv("MAIL_SUBJECT", "Round one")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sheet-123", cfg.SheetID)
	assert.Equal(t, "team@example.com", cfg.SenderEmail)
	assert.Equal(t, "app-secret", cfg.SenderPassword)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, 250*time.Millisecond, cfg.SendInterval)
	assert.Equal(t, "Round one (TEST)", cfg.TestSubject)
}

func TestLoad_InvalidNumbersKeepDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_PORT", "not-a-port")
	t.Setenv("SEND_INTERVAL", "soon")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, time.Second, cfg.SendInterval)
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
sheet_id: from-file
sender_email: file@example.com
sender_password: file-secret
smtp_host: relay.internal
send_interval: 2s
test_subject: Dry run
`)
	t.Setenv("SHEET_ID", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SheetID)
	assert.Equal(t, "file@example.com", cfg.SenderEmail)
	assert.Equal(t, "relay.internal", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, 2*time.Second, cfg.SendInterval)
	assert.Equal(t, "Dry run", cfg.TestSubject)
}

func TestLoad_FileErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")

	_, err = Load(writeFile(t, "sheet_id: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	valid := Config{
		SheetID:        "sheet",
		SenderEmail:    "team@example.com",
		SenderPassword: "secret",
		SMTPPort:       587,
		SendInterval:   time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "missing credentials",
			mutate:  func(c *Config) { c.SenderEmail = ""; c.SenderPassword = "" },
			wantErr: "SENDER_EMAIL, SENDER_PASSWORD",
		},
		{
			name:    "blank sheet id",
			mutate:  func(c *Config) { c.SheetID = "   " },
			wantErr: "SHEET_ID",
		},
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.SMTPPort = 0 },
			wantErr: "invalid SMTP_PORT",
		},
		{
			name:    "negative interval",
			mutate:  func(c *Config) { c.SendInterval = -time.Second },
			wantErr: "invalid SEND_INTERVAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_MissingIsSentinel(t *testing.T) {
	err := (&Config{SMTPPort: 587}).Validate()
	assert.ErrorIs(t, err, ErrMissingRequired)
}

func TestValidate_Partial(t *testing.T) {
	sheetOnly := &Config{SheetID: "sheet"}
	assert.NoError(t, sheetOnly.ValidateSheet())
	assert.ErrorIs(t, sheetOnly.ValidateSender(), ErrMissingRequired)

	senderOnly := &Config{SenderEmail: "team@example.com", SenderPassword: "secret", SMTPPort: 587}
	assert.NoError(t, senderOnly.ValidateSender())

	err := senderOnly.ValidateSheet()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHEET_ID")
	assert.NotContains(t, err.Error(), "SENDER")
}
