// Package main provides bemnibot, a Telegram bot that counts down to a
// deadline for every group chat it is added to.
//
// A group sets its deadline by sending a bare YYYY-MM-DD date. From then
// on the bot posts a daily reminder whose tone escalates as the date
// approaches, from a calm two-week notice to deadline-day alarm.
//
// # Architecture
//
//   - internal/bot: Telegram handlers and message sending
//   - internal/countdown: message formatting and day arithmetic
//   - internal/schedule: per-group daily cron jobs
//   - internal/store: storage interfaces, with a GORM implementation
//   - internal/health: HTTP status endpoints
//   - internal/config: environment configuration
//   - internal/db: database connection utilities
//   - db: embedded SQL migrations
//
// # Quick Start
//
//	# Run database migrations
//	bemnibot db migrate
//
//	# Verify connectivity
//	bemnibot db check
//
//	# Start the bot
//	bemnibot serve
//
// # Environment Variables
//
//   - BOT_TOKEN: Telegram bot token
//   - DB_URL: PostgreSQL connection string
//   - REMINDER_TIME: daily reminder time, HH:MM (default: 07:00)
//   - REMINDER_TZ: reminder timezone (default: Africa/Addis_Ababa)
//   - LOG_LEVEL: log level (debug, info, warn, error)
//   - PORT: health endpoint port (default: 8000)
package main
