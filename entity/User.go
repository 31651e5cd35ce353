package entity

import (
	"gorm.io/gorm"
)

const (
	RoleMentee = "mentee"
	RoleMentor = "mentor"
	RoleAdmin  = "admin"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
	Role        string `gorm:"not null;default:mentee" json:"role"`

	// relations, preload only when needed
	Applications    []MentorApplication `json:"-"`
	MentorProfile   *Mentor             `gorm:"foreignKey:UserID" json:"-"`
	SessionRequests []SessionRequest    `gorm:"foreignKey:RequesterID" json:"-"`
}
