package service

import (
	"testing"
	"time"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/validation"

	"github.com/stretchr/testify/assert"
)

func TestApplicationCreateDefaultsStartDate(t *testing.T) {
	setup()
	defer teardown()

	store := newMemStore()
	course := mustCreateCourse(t, store, "Spanish A1")
	applicationService := ApplicationService{}

	application := &model.Application{
		Name:        "Ivan",
		Surname:     "Ivanov",
		PhoneNumber: "+375291234567",
		CourseId:    course.Id,
	}
	err := applicationService.Create(application)
	assert.NoError(t, err)
	assert.False(t, application.StartDate.IsZero())
}

func TestApplicationCreateRejectsPastStartDate(t *testing.T) {
	setup()
	defer teardown()

	store := newMemStore()
	course := mustCreateCourse(t, store, "Spanish A2")
	applicationService := ApplicationService{}

	application := &model.Application{
		Name:        "Ivan",
		Surname:     "Ivanov",
		PhoneNumber: "+375291234567",
		StartDate:   time.Now().Add(-72 * time.Hour),
		CourseId:    course.Id,
	}
	err := applicationService.Create(application)
	assert.Error(t, err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "startDate")

	// a future start date is fine
	application.StartDate = time.Now().Add(72 * time.Hour)
	assert.NoError(t, applicationService.Create(application))
}

func TestApplicationValidation(t *testing.T) {
	setup()
	defer teardown()

	applicationService := ApplicationService{}

	err := applicationService.Create(&model.Application{
		Name:        "Ivan",
		Surname:     "Ivanov",
		PhoneNumber: "not-a-phone",
		CourseId:    "no-such-course",
	})
	assert.Error(t, err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "phoneNumber")
}

func TestApplicationUpdateLeavesOldStartDateAlone(t *testing.T) {
	setup()
	defer teardown()

	store := newMemStore()
	course := mustCreateCourse(t, store, "Spanish B1")
	applicationService := ApplicationService{}

	application := &model.Application{
		Name:        "Ivan",
		Surname:     "Ivanov",
		PhoneNumber: "+375291234567",
		CourseId:    course.Id,
	}
	assert.NoError(t, applicationService.Create(application))

	// age the row: the stored start date is now in the past
	past := time.Now().Add(-30 * 24 * time.Hour)
	err := database.GetDB().Model(&model.Application{}).
		Where("id = ?", application.Id).
		Update("start_date", past).Error
	assert.NoError(t, err)

	// patching an unrelated field must not trip over the old date
	newName := "Pyotr"
	updated, err := applicationService.Update(application.Id, ApplicationPatch{Name: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "Pyotr", updated.Name)

	// but patching the date itself to the past is rejected
	_, err = applicationService.Update(application.Id, ApplicationPatch{StartDate: &past})
	assert.Error(t, err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "startDate")
}
