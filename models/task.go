package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskStatus represents the lifecycle status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusReAssigned TaskStatus = "Re Assigned"
)

// NotSubmitted is the sentinel for a task with no submission on record.
const NotSubmitted = "Not-submitted"

// Task represents a unit of work under a project assignment. Context is
// dual-purpose: the member's explanation on submission, overwritten with the
// leader's feedback on re-assignment.
type Task struct {
	TaskID      string         `json:"TaskId" gorm:"column:task_id;primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"not null"`
	AssignedTo  StringList     `json:"assignedTo" gorm:"type:text"`
	Deadline    time.Time      `json:"deadline" gorm:"not null"`
	Status      TaskStatus     `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	GitHubURL   string         `json:"gitHubUrl" gorm:"column:github_url"`
	Context     string         `json:"context"`
	Submittedby string         `json:"submittedby" gorm:"default:'Not-submitted'"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// CanSubmit reports whether a member submission is allowed. Completed is
// terminal for members; only the leader's re-assign path reopens it.
func (t *Task) CanSubmit() bool {
	return t.Status != TaskStatusCompleted
}

// CanComplete reports whether the task may move to Completed. Only tasks
// with a submission under review qualify.
func (t *Task) CanComplete() bool {
	return t.Status == TaskStatusInProgress
}

// CanReassign reports whether the leader may send the task back with
// feedback.
func (t *Task) CanReassign() bool {
	return t.Status == TaskStatusInProgress || t.Status == TaskStatusCompleted
}

// CanReset reports whether the plain Pending reset applies.
func (t *Task) CanReset() bool {
	return t.Status == TaskStatusPending || t.Status == TaskStatusReAssigned
}
