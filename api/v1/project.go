package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtasker/dto"
	"github.com/teamtasker/middleware"
	"github.com/teamtasker/models"
	"github.com/teamtasker/services"
)

// ProjectController handles project endpoints
type ProjectController struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
}

// NewProjectController creates a project controller
func NewProjectController() *ProjectController {
	return &ProjectController{
		projectService: services.NewProjectService(),
		taskService:    services.NewTaskService(),
	}
}

// Create handles project creation with an optional immediate team assignment
func (pc *ProjectController) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	createdBy := c.GetString("userId")
	project, err := pc.projectService.CreateProject(req, createdBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"project": project,
	})
}

// List returns the projects created by the authenticated manager, with
// assignment details merged in where a team has been assigned
func (pc *ProjectController) List(c *gin.Context) {
	createdBy := c.GetString("userId")
	projects, err := pc.projectService.ListProjects(createdBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": projects,
	})
}

// Unassigned returns projects with no assignment log
func (pc *ProjectController) Unassigned(c *gin.Context) {
	projects, err := pc.projectService.UnassignedProjects()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": projects,
	})
}

// Assign links an existing project to an existing team
func (pc *ProjectController) Assign(c *gin.Context) {
	var req dto.AssignProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	projectID := c.Param("projectId")
	log, err := pc.projectService.AssignProject(projectID, req.TeamID, req.Deadline)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Project assigned successfully",
		"assignment": log,
	})
}

// TeamMembers returns the members of the team a project is assigned to
func (pc *ProjectController) TeamMembers(c *gin.Context) {
	projectID := c.Param("projectId")
	members, err := pc.projectService.ProjectTeamMembers(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"members": members,
	})
}

// Tasks returns a project's tasks with resolved assignee info
func (pc *ProjectController) Tasks(c *gin.Context) {
	projectID := c.Param("projectId")
	currentUserID := c.GetString("userId")
	resp, err := pc.taskService.ProjectTasks(projectID, currentUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"tasks":       resp.Tasks,
		"members":     resp.Members,
		"currentUser": resp.CurrentUser,
	})
}

// RegisterRoutes registers project endpoints to the router group. Project
// CRUD and assignment are manager operations; the task listing is open to
// any authenticated user so leaders and members can view their boards.
func (pc *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	manager := middleware.RequireUserType(models.UserTypeProjectManager)

	router.POST("", manager, pc.Create)
	router.GET("", manager, pc.List)
	router.GET("/unassigned", manager, pc.Unassigned)
	router.POST("/:projectId/assign", manager, pc.Assign)
	router.GET("/:projectId/team-members", middleware.RequireTeamRole(models.RoleTeamLeader), pc.TeamMembers)
	router.GET("/:projectId/tasks", pc.Tasks)
}
