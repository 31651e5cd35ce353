package entity

import (
	"time"

	"gorm.io/gorm"
)

// ExperienceRole is one employment entry on an application. The list is
// stored as a JSON column; months are "YYYY-MM" strings from the intake form.
type ExperienceRole struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Start       string  `json:"start"`
	End         *string `json:"end,omitempty"`
	Current     bool    `json:"current"`
	Description string  `json:"description,omitempty"`
}

// MentorApplication holds a submitted mentor application. Only the moderator
// transition endpoint changes Status after submission.
type MentorApplication struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	DisplayName  string `json:"displayName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Headline     string `json:"headline"`
	Bio          string `json:"bio"`
	LinkedinURL  string `json:"linkedinUrl"`
	PortfolioURL string `json:"portfolioUrl,omitempty"`
	Country      string `json:"country"`
	City         string `json:"city"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	Rate         int    `json:"rate"`

	Tags       []string         `gorm:"serializer:json" json:"tags"`
	Experience []ExperienceRole `gorm:"serializer:json" json:"experience"`

	Status Status `gorm:"not null;default:pending" json:"status"`

	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
}
