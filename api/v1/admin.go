package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtasker/dto"
	"github.com/teamtasker/services"
)

// ListUsers returns all registered users. Admin only.
func ListUsers(c *gin.Context) {
	users, err := services.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

// DeleteUsers removes users in bulk by email. Admin only.
func DeleteUsers(c *gin.Context) {
	var req dto.DeleteUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	deleted, err := services.DeleteUsersByEmail(req.Emails)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d user(s) deleted successfully", deleted),
	})
}
