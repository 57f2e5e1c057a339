package service

import (
	"context"
	"strings"
	"testing"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/validation"

	"github.com/stretchr/testify/assert"
)

func TestTeacherInfoRequiresTeacherRole(t *testing.T) {
	setup()
	defer teardown()

	teacherInfoService := NewTeacherInfoService(newMemStore())
	student := mustCreateUser(t, "grisha", model.RoleStudent)

	info := &model.TeacherInfo{
		UserId:     student.Id,
		Education:  "BSU",
		Experience: "2 years",
	}
	err := teacherInfoService.Create(info)
	assert.Error(t, err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "userId")
}

func TestTeacherInfoUnknownUser(t *testing.T) {
	setup()
	defer teardown()

	teacherInfoService := NewTeacherInfoService(newMemStore())

	info := &model.TeacherInfo{
		UserId:     "no-such-user",
		Education:  "BSU",
		Experience: "2 years",
	}
	err := teacherInfoService.Create(info)
	assert.Error(t, err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "userId")
}

func TestTeacherInfoLifecycle(t *testing.T) {
	setup()
	defer teardown()

	store := newMemStore()
	teacherInfoService := NewTeacherInfoService(store)
	info := mustCreateTeacherProfile(t, store, "larisa")

	retrieved, err := teacherInfoService.Get(info.Id)
	assert.NoError(t, err)
	assert.NotNil(t, retrieved.User)
	assert.Equal(t, "larisa", retrieved.User.Username)

	newEducation := "BSUIR, Computer Science"
	updated, err := teacherInfoService.Update(info.Id, TeacherInfoPatch{Education: &newEducation})
	assert.NoError(t, err)
	assert.Equal(t, newEducation, updated.Education)

	// blank education is rejected
	blank := "  "
	_, err = teacherInfoService.Update(info.Id, TeacherInfoPatch{Education: &blank})
	assert.Error(t, err)

	err = teacherInfoService.Delete(info.Id)
	assert.NoError(t, err)
	_, err = teacherInfoService.Get(info.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestTeacherInfoSetPhotoReplacesOldBlob(t *testing.T) {
	setup()
	defer teardown()

	store := newMemStore()
	teacherInfoService := NewTeacherInfoService(store)
	info := mustCreateTeacherProfile(t, store, "pavel")

	first := strings.NewReader("first photo")
	updated, err := teacherInfoService.SetPhoto(context.Background(), info.Id, first, first.Size(), "photo.jpg", "image/jpeg")
	assert.NoError(t, err)
	firstRef := updated.PhotoRef
	assert.True(t, store.has(firstRef))

	second := strings.NewReader("second photo")
	updated, err = teacherInfoService.SetPhoto(context.Background(), info.Id, second, second.Size(), "photo.png", "image/png")
	assert.NoError(t, err)
	assert.NotEqual(t, firstRef, updated.PhotoRef)
	assert.True(t, store.has(updated.PhotoRef))
	assert.False(t, store.has(firstRef))
}
