package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtasker/dto"
	"github.com/teamtasker/middleware"
	"github.com/teamtasker/models"
	"github.com/teamtasker/services"
)

// TaskController handles task endpoints
type TaskController struct {
	taskService *services.TaskService
}

// NewTaskController creates a task controller
func NewTaskController() *TaskController {
	return &TaskController{
		taskService: services.NewTaskService(),
	}
}

// Create handles task creation under a project's assignment. An empty
// assignedTo list broadcasts the task to the whole team.
func (tc *TaskController) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := tc.taskService.CreateTask(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully",
		"task":    task,
	})
}

// Submit records a member's work submission and moves the task to
// "In Progress"
func (tc *TaskController) Submit(c *gin.Context) {
	var req dto.SubmitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := tc.taskService.SubmitTask(c.Param("taskId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task submitted successfully",
		"task":    task,
	})
}

// Complete marks a submitted task as completed
func (tc *TaskController) Complete(c *gin.Context) {
	task, err := tc.taskService.CompleteTask(c.Param("taskId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task marked as completed",
		"task":    task,
	})
}

// Reassign rejects a submission with feedback and sends the task back
func (tc *TaskController) Reassign(c *gin.Context) {
	var req dto.ReassignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := tc.taskService.ReassignTask(c.Param("taskId"), req.Feedback)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task reassigned successfully",
		"task":    task,
	})
}

// Reset returns a task to a clean pending state
func (tc *TaskController) Reset(c *gin.Context) {
	task, err := tc.taskService.ResetTask(c.Param("taskId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task reset successfully",
		"task":    task,
	})
}

// Update edits a task's details
func (tc *TaskController) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := tc.taskService.UpdateTask(c.Param("taskId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task updated successfully",
		"task":    task,
	})
}

// BulkDelete removes tasks and prunes them from their assignment logs
func (tc *TaskController) BulkDelete(c *gin.Context) {
	var req dto.DeleteTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	deleted, err := tc.taskService.DeleteTasks(req.TaskIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d task(s) deleted successfully", deleted),
	})
}

// Detail returns a single task
func (tc *TaskController) Detail(c *gin.Context) {
	task, err := tc.taskService.TaskDetail(c.Param("taskId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"task":    task,
	})
}

// RegisterRoutes registers task endpoints to the router group. Leaders own
// the lifecycle (create, complete, reassign, reset, edit, delete); submit is
// the member action; detail is open to both roles.
func (tc *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	leader := middleware.RequireTeamRole(models.RoleTeamLeader)
	member := middleware.RequireTeamRole(models.RoleTeamMember)
	anyRole := middleware.RequireAnyTeamRole(models.RoleTeamLeader, models.RoleTeamMember)

	router.POST("", leader, tc.Create)
	router.POST("/:taskId/submit", member, tc.Submit)
	router.POST("/:taskId/complete", leader, tc.Complete)
	router.POST("/:taskId/reassign", leader, tc.Reassign)
	router.POST("/:taskId/reset", leader, tc.Reset)
	router.PUT("/:taskId", leader, tc.Update)
	router.DELETE("", leader, tc.BulkDelete)
	router.GET("/:taskId", anyRole, tc.Detail)
}
