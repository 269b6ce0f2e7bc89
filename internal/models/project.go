package models

import (
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle status of a project listing
type ProjectStatus string

const (
	StatusRecruiting ProjectStatus = "recruiting"
	StatusInProgress ProjectStatus = "inProgress"
	StatusCompleted  ProjectStatus = "completed"
	StatusClosed     ProjectStatus = "closed"
)

// WorkType represents where the project work happens
type WorkType string

const (
	WorkRemote   WorkType = "remote"
	WorkResident WorkType = "resident"
	WorkHybrid   WorkType = "hybrid"
)

// Project represents a job posting in the marketplace
type Project struct {
	ID                string        `json:"id" gorm:"primaryKey"`
	Title             string        `json:"title" gorm:"not null"`
	Description       string        `json:"description"`
	Category          string        `json:"category" gorm:"index"`
	Budget            int64         `json:"budget"`
	Status            ProjectStatus `json:"status" gorm:"not null;default:'recruiting'"`
	WorkType          WorkType      `json:"workType" gorm:"column:work_type;default:'remote'"`
	Deadline          string        `json:"deadline"`
	OwnerID           string        `json:"-" gorm:"column:owner_id;index"`
	ViewCount         int           `json:"viewCount" gorm:"column:view_count;default:0"`
	ApplicationsCount int           `json:"applicationsCount" gorm:"column:applications_count;default:0"`
	BookmarkCount     int           `json:"bookmarkCount" gorm:"column:bookmark_count;default:0"`
	gorm.Model
}

// TableName specifies the table name for Project Model
func (Project) TableName() string {
	return "projects"
}

// ProjectApplication represents one freelancer applying to a project
type ProjectApplication struct {
	ID        string `json:"id" gorm:"primaryKey"`
	ProjectID string `json:"projectId" gorm:"column:project_id;index"`
	UserID    string `json:"-" gorm:"column:user_id;index"`
	Message   string `json:"message"`
	gorm.Model
}

func (ProjectApplication) TableName() string {
	return "project_applications"
}

// ProjectBookmark represents a user bookmarking a project
type ProjectBookmark struct {
	ID        string `json:"id" gorm:"primaryKey"`
	ProjectID string `json:"projectId" gorm:"column:project_id;index"`
	UserID    string `json:"-" gorm:"column:user_id;index"`
	gorm.Model
}

func (ProjectBookmark) TableName() string {
	return "project_bookmarks"
}

// ProjectQuestion represents a question asked on a project page
type ProjectQuestion struct {
	ID        string `json:"id" gorm:"primaryKey"`
	ProjectID string `json:"projectId" gorm:"column:project_id;index"`
	UserID    string `json:"-" gorm:"column:user_id;index"`
	Content   string `json:"content" gorm:"not null"`
	Answer    string `json:"answer"`
	gorm.Model
}

func (ProjectQuestion) TableName() string {
	return "project_questions"
}
