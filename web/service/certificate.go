package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/logger"
	"edu-center/storage"
	"edu-center/validation"

	"github.com/google/uuid"
)

type CertificateService struct {
	store storage.Store
}

func NewCertificateService(store storage.Store) *CertificateService {
	return &CertificateService{store: store}
}

func (s *CertificateService) List(teacherInfoId string) ([]model.Certificate, error) {
	db := database.GetDB()
	var certs []model.Certificate
	query := db.Preload("TeacherInfo")
	if teacherInfoId != "" {
		query = query.Where("teacher_info_id = ?", teacherInfoId)
	}
	err := query.Find(&certs).Error
	return certs, err
}

func (s *CertificateService) Get(id string) (*model.Certificate, error) {
	db := database.GetDB()
	cert := &model.Certificate{}
	if err := db.Preload("TeacherInfo").First(cert, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return cert, nil
}

// Create stores the uploaded file first, then the record; a failed insert
// cleans the blob back up.
func (s *CertificateService) Create(ctx context.Context, teacherInfoId string, r io.Reader, size int64, filename, contentType string) (*model.Certificate, error) {
	db := database.GetDB()
	info := &model.TeacherInfo{}
	if err := db.First(info, "id = ?", teacherInfoId).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, validation.Errors{"teacherInfoId": "Teacher not found."}
		}
		return nil, err
	}

	key := fmt.Sprintf("certificates/%s%s", uuid.NewString(), path.Ext(filename))
	ref, err := s.store.Store(ctx, key, r, size, contentType)
	if err != nil {
		return nil, err
	}

	cert := &model.Certificate{
		TeacherInfoId: teacherInfoId,
		FileRef:       ref,
	}
	if err := db.Create(cert).Error; err != nil {
		if delErr := s.store.Delete(ctx, ref); delErr != nil {
			logger.Warningf("failed to clean up certificate file %s: %v", ref, delErr)
		}
		return nil, err
	}
	return cert, nil
}

// Delete removes the backing file first, then the record. The record is
// removed even when the file deletion fails; that failure is only logged.
func (s *CertificateService) Delete(id string) error {
	cert, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(context.Background(), cert.FileRef); err != nil {
		logger.Warningf("failed to delete certificate file %s: %v", cert.FileRef, err)
	}

	return database.GetDB().Delete(&model.Certificate{}, "id = ?", id).Error
}
