package validation

import (
	"strings"
	"unicode/utf8"

	"murmur/internal/models"
)

// MicropostInput is a candidate micropost.
type MicropostInput struct {
	UserID  uint
	Content string
}

type micropostRule struct {
	Field   string
	Message string
	Failed  func(in MicropostInput) bool
}

var micropostRules = []micropostRule{
	{
		Field:   "user",
		Message: "is required",
		Failed:  func(in MicropostInput) bool { return in.UserID == 0 },
	},
	{
		Field:   "content",
		Message: "can't be blank",
		Failed:  func(in MicropostInput) bool { return strings.TrimSpace(in.Content) == "" },
	},
	{
		Field:   "content",
		Message: "is too long (maximum is 140 characters)",
		Failed:  func(in MicropostInput) bool { return utf8.RuneCountInString(in.Content) > models.MaxMicropostLength },
	},
}

// ValidateMicropost evaluates every micropost rule and returns the full set
// of violations, or nil when the input is valid.
func ValidateMicropost(in MicropostInput) *models.ValidationErrors {
	errs := models.NewValidationErrors()
	for _, rule := range micropostRules {
		if rule.Failed(in) {
			errs.Add(rule.Field, rule.Message)
		}
	}
	if !errs.Any() {
		return nil
	}
	return errs
}
