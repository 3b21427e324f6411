package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtasker/dto"
	"github.com/teamtasker/models"
	"github.com/teamtasker/services"
)

// tokenMaxAge matches the JWT lifetime (1 hour, in seconds)
const tokenMaxAge = 3600

// Register handles user registration
func Register(c *gin.Context) {
	registerWithType(c, models.UserTypeUser)
}

// RegisterManager handles Project Manager registration
func RegisterManager(c *gin.Context) {
	registerWithType(c, models.UserTypeProjectManager)
}

// RegisterAdmin handles Admin registration
func RegisterAdmin(c *gin.Context) {
	registerWithType(c, models.UserTypeAdmin)
}

func registerWithType(c *gin.Context, userType models.UserType) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := services.Register(req, userType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"user":    user,
	})
}

// Login handles user authentication. The issued token embeds the base type
// for managers and admins, and the login-time team role set for everyone
// else.
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	authResponse, err := services.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	// Set token as HttpOnly cookie
	c.SetCookie(
		"access_token",     // name
		authResponse.Token, // value
		tokenMaxAge,        // max age
		"/",                // path
		"",                 // domain
		true,               // secure (HTTPS only)
		true,               // httpOnly (not accessible via JS)
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful!",
		"data":    authResponse,
	})
}

// GetCurrentUser returns the currently authenticated user's profile
func GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "User not authenticated",
		})
		return
	}

	user, err := services.GetUser(userID.(string))
	if err != nil {
		respondError(c, err)
		return
	}
	user.Password = ""

	roles, _ := c.Get("userRoles")
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"user":      user,
		"userRoles": roles,
	})
}
