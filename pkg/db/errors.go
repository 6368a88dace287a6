package db

import "strings"

// IsUniqueViolation reports whether err is a unique constraint failure from
// either supported driver. When constraintName is provided, the helper looks
// for it in the error message.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
