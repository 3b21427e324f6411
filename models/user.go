package models

import (
	"time"

	"gorm.io/gorm"
)

// UserType represents the base account type
type UserType string

const (
	UserTypeUser           UserType = "User"
	UserTypeProjectManager UserType = "ProjectManager"
	UserTypeAdmin          UserType = "Admin"
)

// Team-relationship roles. These are never stored on the user; they are
// derived from Team membership at login time and frozen into the token.
const (
	RoleTeamLeader = "TeamLeader"
	RoleTeamMember = "TeamMember"
)

// DefaultProfilePic is assigned at registration when none is provided.
const DefaultProfilePic = "/default-profile.png"

// User represents an account in the system
type User struct {
	UserID     string         `json:"UserId" gorm:"column:user_id;primaryKey"`
	Firstname  string         `json:"firstname" gorm:"not null"`
	Lastname   string         `json:"lastname" gorm:"not null"`
	Email      string         `json:"email" gorm:"uniqueIndex;not null"`
	Password   string         `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Contact    string         `json:"contact"`
	Profilepic string         `json:"profilepic"`
	UserType   UserType       `json:"userType" gorm:"type:varchar(20);default:'User'"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
