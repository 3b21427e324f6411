package dto

// TeamRef identifies a team to assign during project creation
type TeamRef struct {
	TeamID string `json:"teamId" binding:"required,teamid"`
}

// CreateProjectRequest is the payload for project creation with an optional
// immediate team assignment. Deadline is required only when AssignedTeam is
// present.
type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required,max=100"`
	Description  string   `json:"description" binding:"required,max=500"`
	AssignedTeam *TeamRef `json:"assignedTeam" binding:"omitempty"`
	Deadline     string   `json:"deadline"`
}

// AssignProjectRequest links an existing project to an existing team
type AssignProjectRequest struct {
	TeamID   string `json:"teamId" binding:"required,teamid"`
	Deadline string `json:"deadline" binding:"required"`
}
