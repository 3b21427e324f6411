package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "Pending"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

// Project represents a unit of work a Project Manager hands to a team
type Project struct {
	ProjectID   string         `json:"ProjectId" gorm:"column:project_id;primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"not null"`
	CreatedBy   string         `json:"createdBy" gorm:"not null;index"`
	Status      ProjectStatus  `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
