package models

import (
	"gorm.io/gorm"
)

// Category represents a project category in the marketplace
type Category struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null"`
	Slug         string `json:"slug" gorm:"unique"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	ParentID     string `json:"parentId" gorm:"column:parent_id;index"`
	DisplayOrder int    `json:"displayOrder" gorm:"column:display_order;default:0"`
	IsActive     bool   `json:"isActive" gorm:"column:is_active;default:true"`
	IsFeatured   bool   `json:"isFeatured" gorm:"column:is_featured;default:false"`
	gorm.Model
}

// TableName specifies the table name for Category Model
func (Category) TableName() string {
	return "categories"
}
