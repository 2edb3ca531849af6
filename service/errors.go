package service

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// ValidationError carries per-field messages, keyed by the form field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func validationOrNil(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// AlertError is a failed backend round-trip surfaced as a generic message.
type AlertError struct {
	Message string
	Cause   error
}

func (e *AlertError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *AlertError) Unwrap() error {
	return e.Cause
}

// alert logs the cause and wraps it with the user-facing message.
func alert(message string, cause error) error {
	log.Printf("Error: %s: %v", message, cause)
	return &AlertError{Message: message, Cause: cause}
}
