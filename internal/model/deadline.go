package model

import "time"

// Deadline is a group's countdown target. Each Telegram group keeps at
// most one row; setting a new date replaces the old one.
type Deadline struct {
	GroupID int64     `gorm:"column:group_id;primaryKey;autoIncrement:false"`
	DueDate time.Time `gorm:"column:deadline_date;type:date;not null"`
}

// TableName returns the deadlines table name.
func (Deadline) TableName() string {
	return "deadlines"
}
