package controller

import (
	"edu-center/database/model"
	"edu-center/storage"
)

// File-backed fields are serialized as fully-qualified URLs, null when no
// file is attached.

func fileURL(store storage.Store, ref string) *string {
	if ref == "" {
		return nil
	}
	url := store.Resolve(ref)
	return &url
}

type teacherInfoView struct {
	model.TeacherInfo
	PhotoURL *string `json:"photoUrl"`
}

func newTeacherInfoView(store storage.Store, info *model.TeacherInfo) teacherInfoView {
	return teacherInfoView{TeacherInfo: *info, PhotoURL: fileURL(store, info.PhotoRef)}
}

func newTeacherInfoViews(store storage.Store, infos []model.TeacherInfo) []teacherInfoView {
	views := make([]teacherInfoView, 0, len(infos))
	for i := range infos {
		views = append(views, newTeacherInfoView(store, &infos[i]))
	}
	return views
}

type certificateView struct {
	model.Certificate
	FileURL *string `json:"fileUrl"`
}

func newCertificateView(store storage.Store, cert *model.Certificate) certificateView {
	return certificateView{Certificate: *cert, FileURL: fileURL(store, cert.FileRef)}
}

func newCertificateViews(store storage.Store, certs []model.Certificate) []certificateView {
	views := make([]certificateView, 0, len(certs))
	for i := range certs {
		views = append(views, newCertificateView(store, &certs[i]))
	}
	return views
}

type courseView struct {
	model.Course
	PhotoURL *string `json:"photoUrl"`
}

func newCourseView(store storage.Store, course *model.Course) courseView {
	return courseView{Course: *course, PhotoURL: fileURL(store, course.PhotoRef)}
}

func newCourseViews(store storage.Store, courses []model.Course) []courseView {
	views := make([]courseView, 0, len(courses))
	for i := range courses {
		views = append(views, newCourseView(store, &courses[i]))
	}
	return views
}

type articleView struct {
	model.Article
	ImageURL *string `json:"imageUrl"`
}

func newArticleView(store storage.Store, article *model.Article) articleView {
	return articleView{Article: *article, ImageURL: fileURL(store, article.ImageRef)}
}

func newArticleViews(store storage.Store, articles []model.Article) []articleView {
	views := make([]articleView, 0, len(articles))
	for i := range articles {
		views = append(views, newArticleView(store, &articles[i]))
	}
	return views
}
