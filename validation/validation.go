// Package validation holds the business rules checked before any entity
// is persisted. Every rule is a pure function returning nil on success or
// a *FieldError naming the offending field.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"edu-center/database/model"
)

var phoneRegexp = regexp.MustCompile(`^\+375\d{9}$`)

// FieldError is a single-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors is a per-field error map, the payload of a 400 response.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Collect folds field errors into an Errors map, dropping nils. Returns
// nil when every rule passed.
func Collect(errs ...*FieldError) error {
	m := Errors{}
	for _, err := range errs {
		if err != nil {
			m[err.Field] = err.Message
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// Phone checks the +375XXXXXXXXX format.
func Phone(field, value string) *FieldError {
	if !phoneRegexp.MatchString(value) {
		return &FieldError{Field: field, Message: "Phone number must be entered in the format: +375XXXXXXXXX."}
	}
	return nil
}

// UserPhone enforces the role-required-phone rule: non-admin users must
// carry a well-formed phone number, admins may omit it.
func UserPhone(role model.Role, phone string) *FieldError {
	if phone == "" {
		if role != model.RoleAdmin {
			return &FieldError{Field: "phoneNumber", Message: "Phone number is required for non-admin users."}
		}
		return nil
	}
	return Phone("phoneNumber", phone)
}

// UserRole checks the role is one of admin, teacher, student.
func UserRole(role model.Role) *FieldError {
	if !role.Valid() {
		return &FieldError{Field: "role", Message: "Role must be one of: admin, teacher, student."}
	}
	return nil
}

// TeacherRole guards TeacherInfo: the linked user must hold the teacher role.
func TeacherRole(user *model.User) *FieldError {
	if user == nil || user.Role != model.RoleTeacher {
		return &FieldError{Field: "userId", Message: "Linked user must have the 'teacher' role."}
	}
	return nil
}

// StudentRole guards Course.Students: every added user must hold the
// student role.
func StudentRole(user *model.User) *FieldError {
	if user == nil || user.Role != model.RoleStudent {
		username := ""
		if user != nil {
			username = user.Username
		}
		return &FieldError{Field: "students", Message: fmt.Sprintf("User %s does not have the 'student' role", username)}
	}
	return nil
}

// Percent bounds Discount.Percent to [0, 99].
func Percent(percent int) *FieldError {
	if percent < 0 || percent > 99 {
		return &FieldError{Field: "percent", Message: "Percent must be between 0 and 99."}
	}
	return nil
}

// StartDate rejects enrollment start dates before today. Comparison is by
// calendar day as each clock reads it, not by instant, so an application
// for today always passes regardless of time zone.
func StartDate(startDate, now time.Time) *FieldError {
	startYear, startMonth, startDay := startDate.Date()
	start := time.Date(startYear, startMonth, startDay, 0, 0, 0, 0, time.UTC)
	nowYear, nowMonth, nowDay := now.Date()
	today := time.Date(nowYear, nowMonth, nowDay, 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return &FieldError{Field: "startDate", Message: "Start date cannot be in the past."}
	}
	return nil
}

// NonEmpty rejects values that are blank after trimming whitespace.
func NonEmpty(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: "Must not be empty."}
	}
	return nil
}
