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
	"gorm.io/gorm"
)

type TeacherInfoService struct {
	store              storage.Store
	certificateService *CertificateService
}

func NewTeacherInfoService(store storage.Store) *TeacherInfoService {
	return &TeacherInfoService{
		store:              store,
		certificateService: NewCertificateService(store),
	}
}

type TeacherInfoPatch struct {
	Education  *string
	Experience *string
}

func (s *TeacherInfoService) List() ([]model.TeacherInfo, error) {
	db := database.GetDB()
	var infos []model.TeacherInfo
	err := db.Preload("User").Find(&infos).Error
	return infos, err
}

func (s *TeacherInfoService) Get(id string) (*model.TeacherInfo, error) {
	db := database.GetDB()
	info := &model.TeacherInfo{}
	if err := db.Preload("User").First(info, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return info, nil
}

func (s *TeacherInfoService) validate(info *model.TeacherInfo) error {
	return validation.Collect(
		validation.NonEmpty("education", info.Education),
		validation.NonEmpty("experience", info.Experience),
	)
}

// Create persists a teaching profile. The linked user's role is checked
// before the transaction and again inside it, right before the row is
// written, so a stale pre-check cannot slip an invalid link through.
func (s *TeacherInfoService) Create(info *model.TeacherInfo) error {
	if err := s.validate(info); err != nil {
		return err
	}

	db := database.GetDB()
	user := &model.User{}
	if err := db.First(user, "id = ?", info.UserId).Error; err != nil {
		if database.IsNotFound(err) {
			return validation.Errors{"userId": "User not found."}
		}
		return err
	}
	if fieldErr := validation.TeacherRole(user); fieldErr != nil {
		return validation.Collect(fieldErr)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		current := &model.User{}
		if err := tx.First(current, "id = ?", info.UserId).Error; err != nil {
			return err
		}
		if fieldErr := validation.TeacherRole(current); fieldErr != nil {
			return validation.Collect(fieldErr)
		}
		return tx.Create(info).Error
	})
}

func (s *TeacherInfoService) Update(id string, patch TeacherInfoPatch) (*model.TeacherInfo, error) {
	info, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Education != nil {
		info.Education = *patch.Education
	}
	if patch.Experience != nil {
		info.Experience = *patch.Experience
	}

	if err := s.validate(info); err != nil {
		return nil, err
	}
	if err := database.GetDB().Save(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}

// SetPhoto stores the uploaded photo and records its reference, replacing
// any previous photo blob.
func (s *TeacherInfoService) SetPhoto(ctx context.Context, id string, r io.Reader, size int64, filename, contentType string) (*model.TeacherInfo, error) {
	info, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("teachers/%s%s", uuid.NewString(), path.Ext(filename))
	ref, err := s.store.Store(ctx, key, r, size, contentType)
	if err != nil {
		return nil, err
	}

	oldRef := info.PhotoRef
	info.PhotoRef = ref
	if err := database.GetDB().Save(info).Error; err != nil {
		return nil, err
	}
	if oldRef != "" {
		if err := s.store.Delete(ctx, oldRef); err != nil {
			logger.Warningf("failed to delete old teacher photo %s: %v", oldRef, err)
		}
	}
	return info, nil
}

// Delete removes the profile with its certificates and photo. Blob cleanup
// failures are logged, never fatal.
func (s *TeacherInfoService) Delete(id string) error {
	info, err := s.Get(id)
	if err != nil {
		return err
	}

	db := database.GetDB()
	var certs []model.Certificate
	if err := db.Find(&certs, "teacher_info_id = ?", id).Error; err != nil {
		return err
	}
	for _, cert := range certs {
		if err := s.certificateService.Delete(cert.Id); err != nil {
			return err
		}
	}

	if info.PhotoRef != "" {
		if err := s.store.Delete(context.Background(), info.PhotoRef); err != nil {
			logger.Warningf("failed to delete teacher photo %s: %v", info.PhotoRef, err)
		}
	}

	return db.Delete(&model.TeacherInfo{}, "id = ?", id).Error
}
