package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("DB_URL", "postgres://localhost/deadlines")
		t.Setenv("REMINDER_TIME", "")
		t.Setenv("REMINDER_TZ", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("PORT", "")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "123:abc", cfg.BotToken)
		assert.Equal(t, "postgres://localhost/deadlines", cfg.DatabaseURL)
		assert.Equal(t, DefaultReminderTime, cfg.ReminderTime)
		assert.Equal(t, DefaultReminderZone, cfg.ReminderZone)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, DefaultPort, cfg.Port)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("DB_URL", "postgres://localhost/deadlines")
		t.Setenv("REMINDER_TIME", "09:30")
		t.Setenv("REMINDER_TZ", "UTC")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("PORT", "9000")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "09:30", cfg.ReminderTime)
		assert.Equal(t, "UTC", cfg.ReminderZone)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 9000, cfg.Port)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "")
		t.Setenv("DB_URL", "postgres://localhost/deadlines")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "BOT_TOKEN")
	})

	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("DB_URL", "")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DB_URL")
	})

	t.Run("bad reminder time", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("DB_URL", "postgres://localhost/deadlines")
		t.Setenv("REMINDER_TIME", "7am")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad timezone", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("DB_URL", "postgres://localhost/deadlines")
		t.Setenv("REMINDER_TZ", "Mars/Olympus")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("07:00")
	assert.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 0, minute)

	hour, minute, err = ParseClock("23:59")
	assert.NoError(t, err)
	assert.Equal(t, 23, hour)
	assert.Equal(t, 59, minute)

	_, _, err = ParseClock("25:00")
	assert.Error(t, err)

	_, _, err = ParseClock("seven")
	assert.Error(t, err)
}
