// Package validation provides input validation for domain records.
//
// Validators are explicit ordered lists of predicate+message pairs evaluated
// against a candidate record. Every rule runs; the result is the complete set
// of violations, never just the first.
package validation

import (
	"regexp"
	"strings"

	"murmur/internal/models"
)

const (
	// MaxNameLength is the ceiling on a user's display name.
	MaxNameLength = 50
	// MaxEmailLength guards against unreasonable address inputs.
	MaxEmailLength = 255
	// MinPasswordLength is the floor on raw password length.
	MinPasswordLength = 6
)

// emailPattern is a conservative address grammar: local part of word
// characters, plus, hyphen and dot; domain labels without consecutive dots;
// alphabetic TLD. It rejects addresses like "user@lol,com", "user_at_lol.org"
// and "a@b@c.com" while accepting "A_US-ER@f.b.org" and "a+b@baz.cn".
var emailPattern = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-]+(\.[a-z\d\-]+)*\.[a-z]+$`)

// UserInput is a candidate user registration.
//
// PasswordConfirmation is a pointer so a missing confirmation is
// distinguishable from an empty one; both fail the match rule — a nil
// confirmation is never silently accepted.
type UserInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation *string
}

// userRule is one validation predicate. Failed returns true when the rule is
// violated.
type userRule struct {
	Field   string
	Message string
	Failed  func(in UserInput) bool
}

var userRules = []userRule{
	{
		Field:   "name",
		Message: "can't be blank",
		Failed:  func(in UserInput) bool { return strings.TrimSpace(in.Name) == "" },
	},
	{
		Field:   "name",
		Message: "is too long (maximum is 50 characters)",
		Failed:  func(in UserInput) bool { return len([]rune(in.Name)) > MaxNameLength },
	},
	{
		Field:   "email",
		Message: "can't be blank",
		Failed:  func(in UserInput) bool { return strings.TrimSpace(in.Email) == "" },
	},
	{
		Field:   "email",
		Message: "is invalid",
		Failed: func(in UserInput) bool {
			email := strings.TrimSpace(in.Email)
			return email != "" && !emailPattern.MatchString(email)
		},
	},
	{
		Field:   "email",
		Message: "is too long (maximum is 255 characters)",
		Failed:  func(in UserInput) bool { return len(in.Email) > MaxEmailLength },
	},
	{
		Field:   "password",
		Message: "can't be blank",
		Failed:  func(in UserInput) bool { return strings.TrimSpace(in.Password) == "" },
	},
	{
		Field:   "password",
		Message: "is too short (minimum is 6 characters)",
		Failed:  func(in UserInput) bool { return len(in.Password) < MinPasswordLength },
	},
	{
		Field:   "password_confirmation",
		Message: "doesn't match password",
		Failed: func(in UserInput) bool {
			return in.PasswordConfirmation == nil || *in.PasswordConfirmation != in.Password
		},
	},
}

// ValidateUser evaluates every registration rule and returns the full set of
// violations, or nil when the input is valid. Email uniqueness is a
// persistence concern checked by the service layer.
func ValidateUser(in UserInput) *models.ValidationErrors {
	errs := models.NewValidationErrors()
	for _, rule := range userRules {
		if rule.Failed(in) {
			errs.Add(rule.Field, rule.Message)
		}
	}
	if !errs.Any() {
		return nil
	}
	return errs
}

// ValidEmail reports whether an address matches the accepted grammar.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
