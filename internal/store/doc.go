// Package store defines the storage interfaces the bot depends on.
//
// Keeping the interfaces separate from the GORM implementation lets the
// handlers and scheduler be tested with mocks, without a database.
package store
