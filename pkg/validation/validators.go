package validation

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("url_or_empty", URLOrEmpty)
}

// URLOrEmpty accepts an empty string or an absolute http(s) URL. Social links
// and hosted-asset fields are optional but must be well-formed when present.
func URLOrEmpty(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	parsed, err := url.Parse(val)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// NormalizeStringSlice trims entries and drops blanks, preserving order.
// Mirrors how the dashboard cleans demo video and tech stack lists.
func NormalizeStringSlice(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
