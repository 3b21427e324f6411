package dto

import "github.com/teamtasker/models"

// CreateTaskRequest is the payload for task creation under an assignment.
// An empty AssignedTo broadcasts the task to the whole team's member list.
// TeamID is optional; when absent the team is resolved from the project's
// assignment log.
type CreateTaskRequest struct {
	ProjectID   string   `json:"projectId" binding:"required,projectid"`
	TeamID      string   `json:"teamId" binding:"omitempty,teamid"`
	AssignedTo  []string `json:"assignedTo" binding:"omitempty,dive,userid"`
	Title       string   `json:"title" binding:"required,max=100"`
	Description string   `json:"description" binding:"required,max=500"`
	Deadline    string   `json:"deadline" binding:"required"`
}

// SubmitTaskRequest is a team member's work submission
type SubmitTaskRequest struct {
	GitHubURL   string `json:"gitHubUrl" binding:"required,githuburl"`
	Context     string `json:"context" binding:"required,min=5,max=100"`
	Submittedby string `json:"submittedby" binding:"required,userid"`
}

// ReassignTaskRequest carries the leader's rejection feedback
type ReassignTaskRequest struct {
	Feedback string `json:"feedback" binding:"required,min=5,max=100"`
}

// UpdateTaskRequest is the leader's task edit payload. An empty AssignedTo
// broadcasts to the team's member list, mirroring creation.
type UpdateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=100"`
	Description string   `json:"description" binding:"required,max=500"`
	AssignedTo  []string `json:"assignedTo" binding:"omitempty,dive,userid"`
	Deadline    string   `json:"deadline" binding:"required"`
	GitHubURL   string   `json:"gitHubUrl" binding:"omitempty,githuburl"`
	Context     string   `json:"context" binding:"omitempty,min=5,max=100"`
}

// DeleteTasksRequest is the leader's bulk-delete payload
type DeleteTasksRequest struct {
	TaskIDs []string `json:"taskIds" binding:"required,min=1,dive,taskid"`
}

// ProjectTasksResponse lists a project's tasks with resolved assignee info
type ProjectTasksResponse struct {
	Tasks       []models.Task `json:"tasks"`
	Members     []MemberInfo  `json:"members"`
	CurrentUser *models.User  `json:"currentUser"`
}
