package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/teamtasker/logging"
	"github.com/teamtasker/services"
)

// respondError converts a service failure into the JSON error shape the
// clients expect. Unclassified errors are logged and masked with a generic
// message.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrDenied):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrInvalid):
		status = http.StatusBadRequest
	default:
		logging.Logger.Errorf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Unexpected server error.",
		})
		return
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

// respondBindError converts a binding failure into a 400 whose message is
// the concatenation of all field errors.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, fieldErrorMessage(fe))
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": strings.Join(messages, ", "),
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Invalid request body",
	})
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email address"
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at least %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", field, fe.Param())
	case "userid":
		return fmt.Sprintf("%s must be in the format 'User-<number>'", field)
	case "teamid":
		return fmt.Sprintf("%s must be in the format 'Team-<number>'", field)
	case "projectid":
		return fmt.Sprintf("%s must be in the format 'Project-<number>'", field)
	case "taskid":
		return fmt.Sprintf("%s must be in the format 'Task-<number>'", field)
	case "githuburl":
		return "Please enter a valid GitHub repository URL"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
