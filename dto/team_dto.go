package dto

import (
	"time"

	"github.com/teamtasker/models"
)

// ProjectRef identifies a project to assign during team creation
type ProjectRef struct {
	ProjectID string `json:"ProjectId" binding:"required,projectid"`
}

// CreateTeamRequest is the payload for team creation with an optional
// immediate project assignment. Deadline is required only when
// AssignedProject is present.
type CreateTeamRequest struct {
	TeamName        string      `json:"teamName" binding:"required,max=100"`
	TeamLeader      string      `json:"teamLeader" binding:"required,userid"`
	Members         []string    `json:"members" binding:"required,min=2,dive,userid"`
	AssignedProject *ProjectRef `json:"assignedProject" binding:"omitempty"`
	Deadline        string      `json:"deadline"`
}

// MemberInfo is the public slice of a user exposed in team listings
type MemberInfo struct {
	UserID     string `json:"UserId"`
	Firstname  string `json:"firstname"`
	Lastname   string `json:"lastname"`
	Profilepic string `json:"profilepic"`
}

// TeamMembers pairs a team with its resolved member details
type TeamMembers struct {
	TeamID  string       `json:"teamId"`
	Members []MemberInfo `json:"members"`
}

// TeamListResponse mirrors the shape the frontend consumes: raw teams plus
// per-team resolved member info.
type TeamListResponse struct {
	Teams       []models.Team `json:"teams"`
	MembersData []TeamMembers `json:"membersData"`
}

// ProjectWithLog merges a project with its assignment log details
type ProjectWithLog struct {
	models.Project
	TeamID   string     `json:"teamId,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`
	TasksIDs []string   `json:"tasksIds"`
}

// TeamProjectsResponse lists the projects assigned to a team
type TeamProjectsResponse struct {
	Projects []ProjectWithLog `json:"projects"`
	TeamName string           `json:"teamName"`
}
