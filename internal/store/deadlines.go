package store

import (
	"errors"
	"time"
)

// ErrDeadlineNotFound is returned when a group has no stored deadline
var ErrDeadlineNotFound = errors.New("deadline not found")

// Deadline pairs a group chat with its due date
type Deadline struct {
	GroupID int64
	DueDate time.Time
}

// DeadlinesStore abstracts deadline persistence
type DeadlinesStore interface {
	// FetchDeadline retrieves a group's deadline.
	// Returns ErrDeadlineNotFound if the group has none.
	FetchDeadline(groupID int64) (time.Time, error)

	// SetDeadline creates or replaces a group's deadline.
	SetDeadline(groupID int64, due time.Time) error

	// DeleteDeadline removes a group's deadline. Deleting a group
	// that has no deadline is not an error.
	DeleteDeadline(groupID int64) error

	// FetchDeadlines returns every stored deadline.
	FetchDeadlines() ([]Deadline, error)
}
