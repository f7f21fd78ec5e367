package http

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// String length limits
const (
	MaxToolIDLength   = 128
	MaxCategoryLength = 64
	MaxQueryLength    = 1024
	MaxDiscoverLimit  = 50
)

var (
	// toolIDPattern allows alphanumeric, dots, hyphens and underscores (service.tool)
	toolIDPattern   = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	categoryPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// validateString validates a string field with length and content checks
func validateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if value == "" {
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}
	return nil
}

// validateToolID validates a <service>.<tool> identifier
func validateToolID(id string) error {
	if err := validateString(id, "tool_id", 1, MaxToolIDLength, true); err != nil {
		return err
	}
	if !toolIDPattern.MatchString(id) {
		return fmt.Errorf("tool_id contains invalid characters (only alphanumeric, dots, hyphens, and underscores allowed)")
	}
	return nil
}

// validateCategory validates an optional category filter
func validateCategory(category string) error {
	if err := validateString(category, "category", 0, MaxCategoryLength, false); err != nil {
		return err
	}
	if category != "" && !categoryPattern.MatchString(category) {
		return fmt.Errorf("category must contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}

// validateQuery validates a discovery query
func validateQuery(query string) error {
	if err := validateString(query, "query", 1, MaxQueryLength, true); err != nil {
		return err
	}
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query must not be blank")
	}
	return nil
}
