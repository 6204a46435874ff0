package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Title":         "Title",
	"Name":          "Name",
	"Email":         "Email",
	"Password":      "Password",
	"Bio":           "Bio",
	"Category":      "Skill category",
	"Image":         "Image data",
	"PublicID":      "Public ID",
	"GithubURL":     "GitHub URL",
	"OrderedIDs":    "orderedIds",
	"CredentialURL": "Credential URL",
	"ResumeURL":     "Resume URL",
}

func label(field string) string {
	if l, ok := FieldLabels[field]; ok {
		return l
	}
	return field
}

// FormatValidationErrors converts validator errors into one readable message.
func FormatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, messageFor(fieldErr))
	}
	return strings.Join(messages, ", ")
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label(fe.Field()))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label(fe.Field()))
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", label(fe.Field()), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label(fe.Field()), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label(fe.Field()), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url_or_empty":
		return fmt.Sprintf("%s must be a valid URL", label(fe.Field()))
	default:
		return fmt.Sprintf("%s is invalid", label(fe.Field()))
	}
}
