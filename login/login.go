// Package login validates the login form and produces the session user.
package login

import (
	"regexp"
	"strings"

	"github.com/mbenaiss/whatsapp-helpdesk/models"
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

// ValidationError is returned for a login form that cannot be accepted.
// Key is the translation key of the message shown to the user.
type ValidationError struct {
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	errFillAllFields = &ValidationError{Key: "fillAllFields", Message: "fill all fields"}
	errInvalidPhone  = &ValidationError{Key: "validPhoneNumber", Message: "invalid phone"}
)

// Form holds the raw login form input
type Form struct {
	Name  string `form:"name" json:"name"`
	Phone string `form:"phone" json:"phone"`
	Role  string `form:"role" json:"role"`
}

// ValidPhone reports whether phone matches the accepted phone pattern:
// digits, spaces, hyphens and parentheses with an optional leading plus sign.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Submit validates the form and returns the user it describes.
// Name and phone are kept exactly as typed; the role defaults to attendant.
func Submit(f Form) (models.User, error) {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Phone) == "" {
		return models.User{}, errFillAllFields
	}

	if !ValidPhone(f.Phone) {
		return models.User{}, errInvalidPhone
	}

	role := models.Role(f.Role)
	if !role.Valid() {
		role = models.RoleAttendant
	}

	return models.User{
		Name:  f.Name,
		Role:  role,
		Phone: f.Phone,
	}, nil
}
