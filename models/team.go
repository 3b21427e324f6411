package models

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a named group with exactly one leader and at least two
// other members. The leader is stored separately and never appears in the
// members list. Membership is immutable after creation.
type Team struct {
	TeamID     string         `json:"teamId" gorm:"column:team_id;primaryKey"`
	TeamName   string         `json:"teamName" gorm:"not null"`
	TeamLeader string         `json:"teamLeader" gorm:"not null;index"`
	Members    StringList     `json:"members" gorm:"type:text"`
	CreatedBy  string         `json:"createdBy" gorm:"not null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
