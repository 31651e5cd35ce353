package entity

import (
	"gorm.io/gorm"
)

// Availability is one weekly time window on a mentor's calendar.
// Weekday: 0 = Sunday .. 6 = Saturday. Times are "HH:MM".
type Availability struct {
	gorm.Model
	MentorID uint `gorm:"index" json:"mentorId"`

	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
