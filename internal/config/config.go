package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// DefaultReminderTime is the wall-clock time reminders go out.
	DefaultReminderTime = "07:00"
	// DefaultReminderZone is the IANA zone the reminder clock is read in.
	DefaultReminderZone = "Africa/Addis_Ababa"
	// DefaultPort is the health listener port, matching the port the
	// container image declares.
	DefaultPort = 8000
)

// Config holds everything the bot reads from the environment.
type Config struct {
	// BotToken is the Telegram bot token (BOT_TOKEN).
	BotToken string

	// DatabaseURL is the PostgreSQL connection string (DB_URL).
	DatabaseURL string

	// ReminderTime is the daily send time in HH:MM form (REMINDER_TIME).
	ReminderTime string

	// ReminderZone is the IANA timezone name the reminder clock and the
	// day arithmetic use (REMINDER_TZ).
	ReminderZone string

	// LogLevel is one of debug, info, warn, error (LOG_LEVEL).
	LogLevel string

	// Port is the health listener port (PORT).
	Port int
}

// Load reads an optional .env file, then the environment, and validates
// the result. Environment variables win over .env values, which godotenv
// guarantees by never overriding variables that are already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		DatabaseURL:  os.Getenv("DB_URL"),
		ReminderTime: DefaultReminderTime,
		ReminderZone: DefaultReminderZone,
		LogLevel:     "info",
		Port:         DefaultPort,
	}

	if val := os.Getenv("REMINDER_TIME"); val != "" {
		cfg.ReminderTime = val
	}
	if val := os.Getenv("REMINDER_TZ"); val != "" {
		cfg.ReminderZone = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
	if val := os.Getenv("PORT"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Port = p
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DatabaseURL reads DB_URL after loading any .env file, without requiring
// the rest of the bot configuration. The db subcommands use this.
func DatabaseURL() string {
	_ = godotenv.Load()
	return os.Getenv("DB_URL")
}

// Validate checks that required values are present and well-formed.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN environment variable is required")
	}
	if c.DatabaseURL == "" {
		return errors.New("DB_URL environment variable is required")
	}
	if _, _, err := ParseClock(c.ReminderTime); err != nil {
		return err
	}
	if _, err := time.LoadLocation(c.ReminderZone); err != nil {
		return errors.Wrapf(err, "invalid REMINDER_TZ %q", c.ReminderZone)
	}
	return nil
}

// Location resolves the configured reminder timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ReminderZone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid REMINDER_TZ %q", c.ReminderZone)
	}
	return loc, nil
}

// ParseClock splits an HH:MM wall-clock string.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid reminder time %q (want HH:MM)", s)
	}
	return t.Hour(), t.Minute(), nil
}
