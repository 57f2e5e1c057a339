// Package access implements the authorization policy: any authenticated
// identity may attempt a mutation, but object-level access requires the
// staff flag or ownership. Ownership resolution is an explicit per-kind
// lookup table, no runtime type inspection.
package access

import (
	"edu-center/database"
	"edu-center/database/model"

	"gorm.io/gorm"
)

// Kind tags the resource types that carry an owner.
type Kind string

const (
	KindTeacherInfo Kind = "teacherInfo"
	KindCertificate Kind = "certificate"
)

type ownerFunc func(db *gorm.DB, resourceId string) (string, error)

var ownerByKind = map[Kind]ownerFunc{
	KindTeacherInfo: teacherInfoOwner,
	KindCertificate: certificateOwner,
}

func teacherInfoOwner(db *gorm.DB, resourceId string) (string, error) {
	info := &model.TeacherInfo{}
	if err := db.Select("user_id").First(info, "id = ?", resourceId).Error; err != nil {
		return "", err
	}
	return info.UserId, nil
}

func certificateOwner(db *gorm.DB, resourceId string) (string, error) {
	cert := &model.Certificate{}
	if err := db.Select("teacher_info_id").First(cert, "id = ?", resourceId).Error; err != nil {
		return "", err
	}
	return teacherInfoOwner(db, cert.TeacherInfoId)
}

// HasPermission reports whether the identity may attempt a mutating
// action at all: any authenticated, non-anonymous caller qualifies.
func HasPermission(identity *model.User) bool {
	return identity != nil
}

// HasObjectPermission reports whether the identity may act on the given
// resource instance: staff always may, otherwise the identity must be the
// resource's owner.
func HasObjectPermission(identity *model.User, kind Kind, resourceId string) (bool, error) {
	if identity == nil {
		return false, nil
	}
	if identity.IsStaff {
		return true, nil
	}
	lookup, ok := ownerByKind[kind]
	if !ok {
		return false, nil
	}
	ownerId, err := lookup(database.GetDB(), resourceId)
	if err != nil {
		return false, err
	}
	return ownerId == identity.Id, nil
}
