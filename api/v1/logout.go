package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Logout clears the access token cookie
func Logout(c *gin.Context) {
	c.SetCookie(
		"access_token",
		"",
		-1, // expire immediately
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful",
	})
}
