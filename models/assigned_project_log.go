package models

import (
	"time"

	"gorm.io/gorm"
)

// AssignedProjectLog is the join entity binding one Project to one Team.
// It owns the list of Task IDs created under the assignment; a task only
// "counts" for a project while its ID is in TasksIDs. A project appears in
// at most one log at a time, enforced by the unique index on project_id.
type AssignedProjectLog struct {
	AssignProjectID string         `json:"AssignProjectId" gorm:"column:assign_project_id;primaryKey"`
	ProjectID       string         `json:"projectId" gorm:"column:project_id;uniqueIndex;not null"`
	TeamID          string         `json:"teamId" gorm:"column:team_id;not null;index"`
	AssignedBy      string         `json:"assignedBy" gorm:"not null"`
	Deadline        time.Time      `json:"deadline" gorm:"not null"`
	TasksIDs        StringList     `json:"tasksIds" gorm:"column:tasks_ids;type:text"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name for AssignedProjectLog
func (AssignedProjectLog) TableName() string {
	return "assigned_project_logs"
}
