package service

import (
	"context"
	"strings"
	"testing"

	"edu-center/database"
	"edu-center/validation"

	"github.com/stretchr/testify/assert"
)

func TestCertificateCreateUnknownTeacher(t *testing.T) {
	setup()
	defer teardown()

	certificateService := NewCertificateService(newMemStore())

	data := strings.NewReader("pdf bytes")
	_, err := certificateService.Create(context.Background(), "no-such-teacher", data, data.Size(), "diploma.pdf", "application/pdf")
	assert.Error(t, err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "teacherInfoId")
}

func TestCertificateDeleteRemovesBlob(t *testing.T) {
	setup()
	defer teardown()

	store := newMemStore()
	certificateService := NewCertificateService(store)
	info := mustCreateTeacherProfile(t, store, "boris")

	data := strings.NewReader("pdf bytes")
	cert, err := certificateService.Create(context.Background(), info.Id, data, data.Size(), "diploma.pdf", "application/pdf")
	assert.NoError(t, err)
	assert.True(t, store.has(cert.FileRef))

	retrieved, err := certificateService.Get(cert.Id)
	assert.NoError(t, err)
	assert.NotNil(t, retrieved.TeacherInfo)

	err = certificateService.Delete(cert.Id)
	assert.NoError(t, err)
	assert.False(t, store.has(cert.FileRef))

	_, err = certificateService.Get(cert.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestCertificateListFilteredByTeacher(t *testing.T) {
	setup()
	defer teardown()

	store := newMemStore()
	certificateService := NewCertificateService(store)
	first := mustCreateTeacherProfile(t, store, "nina")
	second := mustCreateTeacherProfile(t, store, "yulia")

	for _, infoId := range []string{first.Id, first.Id, second.Id} {
		data := strings.NewReader("pdf bytes")
		_, err := certificateService.Create(context.Background(), infoId, data, data.Size(), "diploma.pdf", "application/pdf")
		assert.NoError(t, err)
	}

	certs, err := certificateService.List(first.Id)
	assert.NoError(t, err)
	assert.Len(t, certs, 2)

	certs, err = certificateService.List("")
	assert.NoError(t, err)
	assert.Len(t, certs, 3)
}
