package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the access level of a platform user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User is a platform account. IsStaff is derived from the role and
// recomputed by the user service on every save, never taken from input.
type User struct {
	Id          string    `json:"id" gorm:"primaryKey;size:36"`
	Username    string    `json:"username" gorm:"uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Patronymic  string    `json:"patronymic"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        Role      `json:"role" gorm:"not null"`
	IsStaff     bool      `json:"isStaff"`
	JoinedAt    time.Time `json:"joinedAt" gorm:"autoCreateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Id == "" {
		u.Id = uuid.NewString()
	}
	return nil
}

// TeacherInfo is the public teaching profile, one-to-one with a User whose
// role is teacher.
type TeacherInfo struct {
	Id         string `json:"id" gorm:"primaryKey;size:36"`
	UserId     string `json:"userId" gorm:"uniqueIndex;size:36;not null"`
	User       *User  `json:"user,omitempty" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Education  string `json:"education" gorm:"size:500;not null"`
	Experience string `json:"experience" gorm:"size:1000;not null"`
	PhotoRef   string `json:"-"`
}

func (t *TeacherInfo) BeforeCreate(tx *gorm.DB) error {
	if t.Id == "" {
		t.Id = uuid.NewString()
	}
	return nil
}

// Certificate is a stored document belonging to a teacher profile. The
// backing file is removed from blob storage when the record is deleted.
type Certificate struct {
	Id            string       `json:"id" gorm:"primaryKey;size:36"`
	TeacherInfoId string       `json:"teacherInfoId" gorm:"size:36;not null"`
	TeacherInfo   *TeacherInfo `json:"teacherInfo,omitempty" gorm:"foreignKey:TeacherInfoId;constraint:OnDelete:CASCADE"`
	FileRef       string       `json:"-" gorm:"not null"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}

// CourseCategory is a unique-named lookup table owning courses.
type CourseCategory struct {
	Id   string `json:"id" gorm:"primaryKey;size:36"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (c *CourseCategory) BeforeCreate(tx *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}

// Course is a catalog entry. Students must hold the student role; the
// check runs inside the association transaction before the link commits.
type Course struct {
	Id           string          `json:"id" gorm:"primaryKey;size:36"`
	Title        string          `json:"title" gorm:"not null"`
	Description  string          `json:"description"`
	Advantages   string          `json:"advantages"`
	Curriculum   string          `json:"curriculum"`
	StudyHours   int             `json:"studyHours"`
	PriceForOne  uint            `json:"priceForOne"`
	PriceInGroup uint            `json:"priceInGroup"`
	CategoryId   string          `json:"categoryId" gorm:"size:36;not null"`
	Category     *CourseCategory `json:"category,omitempty" gorm:"foreignKey:CategoryId"`
	PhotoRef     string          `json:"-"`
	Teachers     []TeacherInfo   `json:"teachers,omitempty" gorm:"many2many:course_teachers"`
	Students     []User          `json:"students,omitempty" gorm:"many2many:course_students"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}

// Review is visitor feedback on a course.
type Review struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	CourseId  string    `json:"courseId" gorm:"size:36;not null"`
	Course    *Course   `json:"course,omitempty" gorm:"foreignKey:CourseId"`
	Author    string    `json:"author" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Id == "" {
		r.Id = uuid.NewString()
	}
	return nil
}

// FaqCategory is a unique-named lookup table owning FAQ entries.
type FaqCategory struct {
	Id   string `json:"id" gorm:"primaryKey;size:36"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (c *FaqCategory) BeforeCreate(tx *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}

type Faq struct {
	Id          string       `json:"id" gorm:"primaryKey;size:36"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description" gorm:"not null"`
	CategoryId  string       `json:"categoryId" gorm:"size:36;not null"`
	Category    *FaqCategory `json:"category,omitempty" gorm:"foreignKey:CategoryId"`
}

func (f *Faq) BeforeCreate(tx *gorm.DB) error {
	if f.Id == "" {
		f.Id = uuid.NewString()
	}
	return nil
}

// Application is an enrollment inquiry for a course. StartDate defaults to
// the current date and may not lie in the past.
type Application struct {
	Id          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"not null"`
	Surname     string    `json:"surname" gorm:"not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"not null"`
	Email       string    `json:"email"`
	StartDate   time.Time `json:"startDate"`
	CourseId    string    `json:"courseId" gorm:"size:36;not null"`
	Course      *Course   `json:"course,omitempty" gorm:"foreignKey:CourseId"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.Id == "" {
		a.Id = uuid.NewString()
	}
	return nil
}

// Article is a standalone content item.
type Article struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	Source    string    `json:"source"`
	ImageRef  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.Id == "" {
		a.Id = uuid.NewString()
	}
	return nil
}

// Discount is a promotional percentage in [0, 99].
type Discount struct {
	Id          string `json:"id" gorm:"primaryKey;size:36"`
	Percent     int    `json:"percent"`
	Description string `json:"description" gorm:"not null"`
}

func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.Id == "" {
		d.Id = uuid.NewString()
	}
	return nil
}

// RevokedToken blacklists a refresh token by its token ID until the token
// would have expired anyway, at which point the cleanup job drops the row.
type RevokedToken struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	TokenId   string    `json:"tokenId" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (r *RevokedToken) BeforeCreate(tx *gorm.DB) error {
	if r.Id == "" {
		r.Id = uuid.NewString()
	}
	return nil
}
