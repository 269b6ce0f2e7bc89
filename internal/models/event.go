package models

import (
	"gorm.io/gorm"
)

// EventStatus represents the lifecycle status of a promotional event
type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventOngoing  EventStatus = "ongoing"
	EventEnded    EventStatus = "ended"
)

// Event represents a promotional event shown on the site
type Event struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description"`
	StartDate   string      `json:"startDate" gorm:"column:start_date"`
	EndDate     string      `json:"endDate" gorm:"column:end_date"`
	Status      EventStatus `json:"status" gorm:"not null;default:'upcoming';index"`
	gorm.Model
}

// TableName specifies the table name for Event Model
func (Event) TableName() string {
	return "events"
}
