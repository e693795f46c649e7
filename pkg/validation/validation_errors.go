package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Email":          "Email",
	"Password":       "Password",
	"Name":           "Name",
	"Role":           "Role",
	"ProgramType":    "Program type",
	"StartDate":      "Start date",
	"Title":          "Title",
	"Description":    "Description",
	"DueDate":        "Due date",
	"Priority":       "Priority",
	"ControlledBy":   "Controlled by",
	"Stage":          "Stage",
	"Progress":       "Progress",
	"Phases":         "Phases",
	"Duration":       "Duration",
	"DaysToComplete": "Days to complete",
	"TemplateID":     "Template ID",
	"UserID":         "User ID",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s: must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s: must be at most %s", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Split(e.Param(), " "), ", "))
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	default:
		return fmt.Sprintf("%s: failed %s validation", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
