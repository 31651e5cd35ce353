package entity

import (
	"gorm.io/gorm"
)

// Account standing controls bookability; it is separate from User.Role.
const (
	StandingApproved  = "approved"
	StandingSuspended = "suspended"
	StandingBlocked   = "blocked"
)

// Mentor is the public profile created when an application is approved.
// Slug is unique and immutable once assigned.
type Mentor struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Slug        string   `gorm:"uniqueIndex;not null" json:"slug"`
	DisplayName string   `json:"displayName"`
	Headline    string   `json:"headline"`
	Bio         string   `json:"bio"`
	Rate        int      `json:"rate"`
	Tags        []string `gorm:"serializer:json" json:"tags"`
	Location    string   `json:"location"`
	YearsExp    int      `json:"yearsExp"`
	PhotoURL    string   `json:"photoUrl,omitempty"`

	AccountStanding string `gorm:"not null;default:approved" json:"accountStanding"`
}
