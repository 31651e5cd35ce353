package entity

import (
	"gorm.io/gorm"
)

// SessionRequest is a mentee's booking request to a mentor. Simple
// create-and-store; no workflow beyond the status string.
type SessionRequest struct {
	gorm.Model
	PublicID string `gorm:"uniqueIndex" json:"publicId"`

	MentorSlug  string `gorm:"index" json:"mentorSlug"`
	RequesterID uint   `json:"requesterId"`

	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
	PreferredTime  string `json:"preferredTime,omitempty"`
	Message        string `json:"message,omitempty"`
	ProposedRate   *int   `json:"proposedRate,omitempty"`

	Status string `gorm:"not null;default:new" json:"status"`
}
