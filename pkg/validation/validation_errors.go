package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Profile fields
	"Name":               "Full Name",
	"Phone":              "Phone Number",
	"Headline":           "Headline",
	"Avatar":             "Profile Photo",
	"Bio":                "Bio",
	"Skills":             "Skills",
	"Experience":         "Experience",
	"Education":          "Education",
	"Resume":             "Resume",
	"SocialLinks":        "Social Links",
	"Company":            "Company Name",
	"CompanyDescription": "Company Description",
	"Industry":           "Industry",
	"CompanySize":        "Company Size",
	"Website":            "Website",
	"Logo":               "Company Logo",
	"CompanyBenefits":    "Company Benefits",
	"CompanySocialLinks": "Company Social Links",

	// Experience / education sub-fields
	"Title":       "Job Title",
	"StartDate":   "Start Date",
	"EndDate":     "End Date",
	"Description": "Description",
	"Degree":      "Degree",
	"Institution": "Institution",

	// Auth fields
	"Email":    "Email",
	"Password": "Password",
	"Role":     "Role",
}

// FormatValidationErrors converts validator.ValidationErrors to de-duplicated
// user-friendly messages. The store layer can report the same field twice
// (e.g. a struct rule and a column constraint), so duplicates are collapsed
// before they reach the client.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return Dedupe(messages)
}

// Dedupe removes duplicate messages while preserving order.
func Dedupe(messages []string) []string {
	seen := make(map[string]bool, len(messages))
	out := messages[:0]
	for _, m := range messages {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must have at most %s entries", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))

	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)

	case "url":
		return fmt.Sprintf("%s is not a valid URL", label)

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and common punctuation", label)

	case "valid_phone":
		return fmt.Sprintf("%s is not a valid phone number", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
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
