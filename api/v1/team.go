package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtasker/dto"
	"github.com/teamtasker/middleware"
	"github.com/teamtasker/models"
	"github.com/teamtasker/services"
)

// TeamController handles team endpoints
type TeamController struct {
	teamService *services.TeamService
}

// NewTeamController creates a team controller
func NewTeamController() *TeamController {
	return &TeamController{
		teamService: services.NewTeamService(),
	}
}

// Create handles team creation with an optional immediate project assignment
func (tc *TeamController) Create(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	createdBy := c.GetString("userId")
	team, err := tc.teamService.CreateTeam(req, createdBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Team created successfully",
		"team":    team,
	})
}

// List returns all teams with resolved member info
func (tc *TeamController) List(c *gin.Context) {
	resp, err := tc.teamService.ListTeams()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"teams":       resp.Teams,
		"membersData": resp.MembersData,
	})
}

// ForLeader returns teams led by the authenticated user
func (tc *TeamController) ForLeader(c *gin.Context) {
	userID := c.GetString("userId")
	resp, err := tc.teamService.TeamsForLeader(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"teams":       resp.Teams,
		"membersData": resp.MembersData,
	})
}

// ForMember returns teams the authenticated user belongs to
func (tc *TeamController) ForMember(c *gin.Context) {
	userID := c.GetString("userId")
	resp, err := tc.teamService.TeamsForMember(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"teams":       resp.Teams,
		"membersData": resp.MembersData,
	})
}

// Projects returns the projects assigned to a team
func (tc *TeamController) Projects(c *gin.Context) {
	teamID := c.Param("teamId")
	resp, err := tc.teamService.TeamProjects(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"teamName": resp.TeamName,
		"projects": resp.Projects,
	})
}

// RegisterRoutes registers team endpoints to the router group. Creation and
// listing are manager operations; the leader/member views require the
// matching team role from the login token.
func (tc *TeamController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", middleware.RequireUserType(models.UserTypeProjectManager), tc.Create)
	router.GET("", middleware.RequireUserType(models.UserTypeProjectManager), tc.List)
	router.GET("/leader", middleware.RequireTeamRole(models.RoleTeamLeader), tc.ForLeader)
	router.GET("/member", middleware.RequireTeamRole(models.RoleTeamMember), tc.ForMember)
	router.GET("/:teamId/projects", middleware.RequireAnyTeamRole(models.RoleTeamLeader, models.RoleTeamMember), tc.Projects)
}
