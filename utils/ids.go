package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

// Entity ID prefixes.
const (
	PrefixUser          = "User"
	PrefixTeam          = "Team"
	PrefixProject       = "Project"
	PrefixTask          = "Task"
	PrefixAssignProject = "AssignProject"
)

const idPadWidth = 5

var idNumberRe = regexp.MustCompile(`(\d+)$`)

// FormatID renders a sequential entity ID, zero-padded to five digits.
// FormatID("Task", 7) == "Task-00007".
func FormatID(prefix string, n int64) string {
	return fmt.Sprintf("%s-%0*d", prefix, idPadWidth, n)
}

// IDNumber extracts the trailing number from an entity ID. Unpadded IDs
// from older data ("User-3") parse the same as padded ones.
func IDNumber(id string) (int64, bool) {
	m := idNumberRe.FindString(id)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
