// package config loads mailer configuration from a YAML file, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingRequired is returned by Validate when a required key is unset.
var ErrMissingRequired = errors.New("missing required configuration")

// DefaultSubject is the subject line of the batch email.
const DefaultSubject = "GDGC Web Development Volunteer Recruitment – First Round Assignment"

// Config holds all application configuration.
type Config struct {
	// sheet
	SheetID      string        `yaml:"sheet_id"`
	SheetBaseURL string        `yaml:"sheet_base_url"`
	SheetTimeout time.Duration `yaml:"sheet_timeout"`

	// sender identity; the password is an application credential, not the
	// account password
	SenderEmail    string `yaml:"sender_email"`
	SenderPassword string `yaml:"sender_password"`

	// relay
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort int    `yaml:"smtp_port"`

	// mail
	Subject      string        `yaml:"subject"`
	TestSubject  string        `yaml:"test_subject"`
	SendInterval time.Duration `yaml:"send_interval"`

	// logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Load builds the configuration. Values come from defaults, then the YAML
// file at path (if any), then environment variables, each layer overriding
// the previous one. A .env file in the working directory is loaded into the
// environment first when present.
func Load(path string) (*Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	cfg := &Config{
		SheetBaseURL: "https://docs.google.com",
		SMTPHost:     "smtp.gmail.com",
		SMTPPort:     587,
		Subject:      DefaultSubject,
		SendInterval: time.Second,
		LogLevel:     "info",
	}

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.SheetID = getEnv("SHEET_ID", cfg.SheetID)
	cfg.SheetBaseURL = getEnv("SHEET_BASE_URL", cfg.SheetBaseURL)
	cfg.SheetTimeout = getEnvDuration("SHEET_TIMEOUT", cfg.SheetTimeout)
	cfg.SenderEmail = getEnv("SENDER_EMAIL", cfg.SenderEmail)
	cfg.SenderPassword = getEnv("SENDER_PASSWORD", cfg.SenderPassword)
	cfg.SMTPHost = getEnv("SMTP_HOST", cfg.SMTPHost)
	cfg.SMTPPort = getEnvInt("SMTP_PORT", cfg.SMTPPort)
	cfg.Subject = getEnv("MAIL_SUBJECT", cfg.Subject)
	cfg.TestSubject = getEnv("MAIL_TEST_SUBJECT", cfg.TestSubject)
	cfg.SendInterval = getEnvDuration("SEND_INTERVAL", cfg.SendInterval)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)

	if cfg.TestSubject == "" {
		cfg.TestSubject = cfg.Subject + " (TEST)"
	}

	return cfg, nil
}

// Validate reports every required key that is still empty after Load.
func (c *Config) Validate() error {
	return c.validate(true, true)
}

// ValidateSheet checks only what is needed to read the recipient sheet.
func (c *Config) ValidateSheet() error {
	return c.validate(true, false)
}

// ValidateSender checks only what is needed to send through the relay.
func (c *Config) ValidateSender() error {
	return c.validate(false, true)
}

func (c *Config) validate(sheet, sender bool) error {
	var missing []string
	if sheet && strings.TrimSpace(c.SheetID) == "" {
		missing = append(missing, "SHEET_ID")
	}
	if sender && strings.TrimSpace(c.SenderEmail) == "" {
		missing = append(missing, "SENDER_EMAIL")
	}
	if sender && c.SenderPassword == "" {
		missing = append(missing, "SENDER_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	if !sender {
		return nil
	}
	if c.SMTPPort <= 0 {
		return fmt.Errorf("invalid SMTP_PORT %d", c.SMTPPort)
	}
	if c.SendInterval < 0 {
		return fmt.Errorf("invalid SEND_INTERVAL %s", c.SendInterval)
	}
	return nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
