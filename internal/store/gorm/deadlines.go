package gorm

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Yab112/BemniTelegeramBot/internal/model"
	"github.com/Yab112/BemniTelegeramBot/internal/store"
)

// Ensure DeadlinesStore implements store.DeadlinesStore
var _ store.DeadlinesStore = (*DeadlinesStore)(nil)

// DeadlinesStore implements store.DeadlinesStore using GORM
type DeadlinesStore struct {
	db *gorm.DB
}

// NewDeadlinesStore creates a new DeadlinesStore
func NewDeadlinesStore(db *gorm.DB) *DeadlinesStore {
	return &DeadlinesStore{db: db}
}

// FetchDeadline retrieves a group's deadline.
func (s *DeadlinesStore) FetchDeadline(groupID int64) (time.Time, error) {
	var deadline model.Deadline
	tx := s.db.Where("group_id = ?", groupID).First(&deadline)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return time.Time{}, store.ErrDeadlineNotFound
		}
		return time.Time{}, tx.Error
	}
	return civilDate(deadline.DueDate), nil
}

// SetDeadline creates or replaces a group's deadline. Groups keep a
// single row, so a second date for the same group overwrites the first.
func (s *DeadlinesStore) SetDeadline(groupID int64, due time.Time) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"deadline_date"}),
	}).Create(&model.Deadline{
		GroupID: groupID,
		DueDate: civilDate(due),
	}).Error
}

// DeleteDeadline removes a group's deadline.
func (s *DeadlinesStore) DeleteDeadline(groupID int64) error {
	return s.db.Where("group_id = ?", groupID).Delete(&model.Deadline{}).Error
}

// FetchDeadlines returns every stored deadline.
func (s *DeadlinesStore) FetchDeadlines() ([]store.Deadline, error) {
	var rows []model.Deadline
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	deadlines := make([]store.Deadline, 0, len(rows))
	for _, row := range rows {
		deadlines = append(deadlines, store.Deadline{
			GroupID: row.GroupID,
			DueDate: civilDate(row.DueDate),
		})
	}
	return deadlines, nil
}

// civilDate strips whatever time-of-day and zone a DATE column scan
// carries, pinning the value to midnight UTC so day arithmetic is exact.
func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
