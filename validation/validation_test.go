package validation

import (
	"testing"
	"time"

	"edu-center/database/model"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"+375291234567", true},
		{"+375000000000", true},
		{"+37529123456", false},
		{"+3752912345678", false},
		{"375291234567", false},
		{"+380291234567", false},
		{"+37529123456a", false},
		{"", false},
	}
	for _, tt := range tests {
		err := Phone("phoneNumber", tt.phone)
		if tt.ok {
			assert.Nil(t, err, "phone %q should pass", tt.phone)
		} else {
			assert.NotNil(t, err, "phone %q should fail", tt.phone)
			assert.Equal(t, "phoneNumber", err.Field)
		}
	}
}

func TestUserPhone(t *testing.T) {
	// admins may omit the phone, everyone else may not
	assert.Nil(t, UserPhone(model.RoleAdmin, ""))
	assert.Nil(t, UserPhone(model.RoleAdmin, "+375291234567"))
	assert.Nil(t, UserPhone(model.RoleStudent, "+375291234567"))

	err := UserPhone(model.RoleStudent, "")
	assert.NotNil(t, err)
	assert.Equal(t, "phoneNumber", err.Field)
	assert.Equal(t, "Phone number is required for non-admin users.", err.Message)

	assert.NotNil(t, UserPhone(model.RoleTeacher, ""))
	assert.NotNil(t, UserPhone(model.RoleAdmin, "not-a-phone"))
}

func TestUserRole(t *testing.T) {
	assert.Nil(t, UserRole(model.RoleAdmin))
	assert.Nil(t, UserRole(model.RoleTeacher))
	assert.Nil(t, UserRole(model.RoleStudent))
	assert.NotNil(t, UserRole(model.Role("moderator")))
	assert.NotNil(t, UserRole(model.Role("")))
}

func TestTeacherRole(t *testing.T) {
	assert.Nil(t, TeacherRole(&model.User{Role: model.RoleTeacher}))
	assert.NotNil(t, TeacherRole(&model.User{Role: model.RoleStudent}))
	assert.NotNil(t, TeacherRole(&model.User{Role: model.RoleAdmin}))
	assert.NotNil(t, TeacherRole(nil))
}

func TestStudentRole(t *testing.T) {
	assert.Nil(t, StudentRole(&model.User{Role: model.RoleStudent}))

	err := StudentRole(&model.User{Username: "ivan", Role: model.RoleTeacher})
	assert.NotNil(t, err)
	assert.Equal(t, "students", err.Field)
	assert.Contains(t, err.Message, "ivan")
}

func TestPercent(t *testing.T) {
	assert.Nil(t, Percent(0))
	assert.Nil(t, Percent(50))
	assert.Nil(t, Percent(99))
	assert.NotNil(t, Percent(-1))
	assert.NotNil(t, Percent(100))
}

func TestStartDate(t *testing.T) {
	now := time.Now()
	assert.Nil(t, StartDate(now, now))
	assert.Nil(t, StartDate(now.Add(48*time.Hour), now))

	err := StartDate(now.Add(-48*time.Hour), now)
	assert.NotNil(t, err)
	assert.Equal(t, "startDate", err.Field)
}

func TestStartDateAcrossTimeZones(t *testing.T) {
	// form dates parse as UTC midnight; the server clock runs local time
	minsk := time.FixedZone("UTC+3", 3*60*60)
	justPastLocalMidnight := time.Date(2026, 8, 31, 1, 0, 0, 0, minsk)

	err := StartDate(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), justPastLocalMidnight)
	assert.NotNil(t, err)
	assert.Equal(t, "startDate", err.Field)

	assert.Nil(t, StartDate(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), justPastLocalMidnight))
	assert.Nil(t, StartDate(time.Date(2026, 8, 31, 23, 0, 0, 0, minsk), justPastLocalMidnight))

	// behind UTC the same calendar day still passes
	west := time.FixedZone("UTC-5", -5*60*60)
	localEvening := time.Date(2026, 8, 31, 22, 0, 0, 0, west)
	assert.Nil(t, StartDate(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), localEvening))
	assert.NotNil(t, StartDate(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), localEvening))
}

func TestNonEmpty(t *testing.T) {
	assert.Nil(t, NonEmpty("content", "fine"))
	assert.NotNil(t, NonEmpty("content", ""))
	assert.NotNil(t, NonEmpty("content", "   \t\n"))
}

func TestCollect(t *testing.T) {
	assert.NoError(t, Collect(nil, nil))

	err := Collect(
		Percent(120),
		NonEmpty("description", ""),
		nil,
	)
	assert.Error(t, err)

	fieldErrors, ok := err.(Errors)
	assert.True(t, ok)
	assert.Len(t, fieldErrors, 2)
	assert.Contains(t, fieldErrors, "percent")
	assert.Contains(t, fieldErrors, "description")
}
