package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/teamtasker/models"
)

// TokenClaims represents our custom JWT claims. For ProjectManager and
// Admin accounts UserRoles is empty and UserType alone gates access; for
// plain users UserRoles carries the team roles resolved at login.
type TokenClaims struct {
	UserID    string   `json:"UserId"`
	Email     string   `json:"email"`
	UserType  string   `json:"userType"`
	UserRoles []string `json:"userRoles,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=45"`
	Password string `json:"password" binding:"required,min=6,max=45"`
}

// RegisterRequest represents registration data
type RegisterRequest struct {
	Firstname string `json:"firstname" binding:"required,max=20"`
	Lastname  string `json:"lastname" binding:"required,max=20"`
	Email     string `json:"email" binding:"required,email,max=45"`
	Password  string `json:"password" binding:"required,min=6,max=45"`
	Contact   string `json:"contact" binding:"omitempty,max=20"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	UserRoles []string    `json:"userRoles"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// DeleteUsersRequest is the admin bulk-delete payload
type DeleteUsersRequest struct {
	Emails []string `json:"emails" binding:"required,min=1,dive,email"`
}
