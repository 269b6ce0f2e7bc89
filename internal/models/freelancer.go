package models

import (
	"gorm.io/gorm"
)

// Freelancer represents a freelancer profile in the marketplace
type Freelancer struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null"`
	Title        string `json:"title"`
	Skills       string `json:"skills"` // comma-separated skill tags
	HourlyRate   int64  `json:"hourlyRate" gorm:"column:hourly_rate"`
	ViewCount    int    `json:"viewCount" gorm:"column:view_count;default:0"`
	ProjectCount int    `json:"projectCount" gorm:"column:project_count;default:0"`
	gorm.Model
}

// TableName specifies the table name for Freelancer Model
func (Freelancer) TableName() string {
	return "freelancers"
}
