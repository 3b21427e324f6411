package utils

import (
	"fmt"
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	userIDRe    = regexp.MustCompile(`^User-(\d+)$`)
	teamIDRe    = regexp.MustCompile(`^Team-(\d+)$`)
	projectIDRe = regexp.MustCompile(`^Project-(\d+)$`)
	taskIDRe    = regexp.MustCompile(`^Task-(\d+)$`)
	assignIDRe  = regexp.MustCompile(`^AssignProject-(\d+)$`)
	gitHubURLRe = regexp.MustCompile(`^(https?://)?(www\.)?github\.com/[a-zA-Z0-9_-]+(/[a-zA-Z0-9_.-]+)?/?$`)
)

// IsUserID reports whether s is a well-formed user ID ("User-<n>").
func IsUserID(s string) bool { return userIDRe.MatchString(s) }

// IsTeamID reports whether s is a well-formed team ID ("Team-<n>").
func IsTeamID(s string) bool { return teamIDRe.MatchString(s) }

// IsProjectID reports whether s is a well-formed project ID ("Project-<n>").
func IsProjectID(s string) bool { return projectIDRe.MatchString(s) }

// IsTaskID reports whether s is a well-formed task ID ("Task-<n>").
func IsTaskID(s string) bool { return taskIDRe.MatchString(s) }

// IsAssignProjectID reports whether s is a well-formed assignment ID.
func IsAssignProjectID(s string) bool { return assignIDRe.MatchString(s) }

// IsGitHubURL reports whether s looks like a GitHub repository URL.
func IsGitHubURL(s string) bool { return gitHubURLRe.MatchString(s) }

// RegisterValidators wires the ID format checks into gin's binding engine.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	checks := map[string]func(string) bool{
		"userid":    IsUserID,
		"teamid":    IsTeamID,
		"projectid": IsProjectID,
		"taskid":    IsTaskID,
		"assignid":  IsAssignProjectID,
		"githuburl": IsGitHubURL,
	}
	for tag, check := range checks {
		fn := check
		v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
	}
}

// ParseDeadline parses a deadline supplied by a client. RFC 3339 is the
// primary format; a bare date is accepted for older form clients.
func ParseDeadline(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("deadline is required")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deadline format")
}
