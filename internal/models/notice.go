package models

import (
	"gorm.io/gorm"
)

// Notice represents a site announcement
type Notice struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Title     string `json:"title" gorm:"not null"`
	Content   string `json:"content"`
	IsPinned  bool   `json:"isPinned" gorm:"column:is_pinned;default:false"`
	ViewCount int    `json:"viewCount" gorm:"column:view_count;default:0"`
	gorm.Model
}

// TableName specifies the table name for Notice Model
func (Notice) TableName() string {
	return "notices"
}

// NoticeAttachment represents a file attached to a notice
type NoticeAttachment struct {
	ID       string `json:"id" gorm:"primaryKey"`
	NoticeID string `json:"noticeId" gorm:"column:notice_id;index"`
	FileName string `json:"fileName" gorm:"column:file_name"`
	FilePath string `json:"filePath" gorm:"column:file_path"`
	gorm.Model
}

func (NoticeAttachment) TableName() string {
	return "notice_attachments"
}
