package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtasker/models"
)

// RequireUserType gates a route on the base account type carried in the
// token. Must be used after AuthMiddleware.
func RequireUserType(userType models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("userType")
		if !exists || value.(string) != string(userType) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized access, you are not a " + string(userType),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireTeamRole gates a route on a team-relationship role (TeamLeader or
// TeamMember) resolved at login time. Must be used after AuthMiddleware.
func RequireTeamRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("userRoles")
		if exists {
			if roles, ok := value.([]string); ok {
				for _, r := range roles {
					if r == role {
						c.Next()
						return
					}
				}
			}
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "You are not a " + role + ".",
		})
		c.Abort()
	}
}

// RequireAnyTeamRole passes when the caller holds at least one of the
// given roles.
func RequireAnyTeamRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("userRoles")
		if exists {
			if held, ok := value.([]string); ok {
				for _, h := range held {
					for _, r := range roles {
						if h == r {
							c.Next()
							return
						}
					}
				}
			}
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Unauthorized access, you have no team role.",
		})
		c.Abort()
	}
}
