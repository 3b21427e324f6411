package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/teamtasker/models"
)

// withIdentity simulates what AuthMiddleware sets on an authenticated
// request.
func withIdentity(userType string, roles []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userType", userType)
		c.Set("userRoles", roles)
		c.Next()
	}
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func TestRequireUserType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		userType string
		want     int
	}{
		{"matching type", string(models.UserTypeAdmin), http.StatusOK},
		{"wrong type", string(models.UserTypeUser), http.StatusUnauthorized},
		{"manager is not admin", string(models.UserTypeProjectManager), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", withIdentity(tt.userType, nil), RequireUserType(models.UserTypeAdmin), ok)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequireTeamRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		roles []string
		want  int
	}{
		{"leader", []string{models.RoleTeamLeader}, http.StatusOK},
		{"both roles", []string{models.RoleTeamLeader, models.RoleTeamMember}, http.StatusOK},
		{"member only", []string{models.RoleTeamMember}, http.StatusUnauthorized},
		{"no roles", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", withIdentity(string(models.UserTypeUser), tt.roles), RequireTeamRole(models.RoleTeamLeader), ok)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequireAnyTeamRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		roles []string
		want  int
	}{
		{"leader", []string{models.RoleTeamLeader}, http.StatusOK},
		{"member", []string{models.RoleTeamMember}, http.StatusOK},
		{"no roles", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", withIdentity(string(models.UserTypeUser), tt.roles),
				RequireAnyTeamRole(models.RoleTeamLeader, models.RoleTeamMember), ok)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
