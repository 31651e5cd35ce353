package entity

import (
	"gorm.io/gorm"
)

// TagOption is an admin-controlled tag; applications may only reference
// active options.
type TagOption struct {
	gorm.Model
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	SortOrder int    `json:"sortOrder"`
	Active    bool   `gorm:"default:true" json:"active"`
}
