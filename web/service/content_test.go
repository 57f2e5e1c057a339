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

func TestFaqRequiresExistingCategory(t *testing.T) {
	setup()
	defer teardown()

	faqService := FaqService{}

	faq := &model.Faq{Title: "How do I enroll?", Description: "Submit an application.", CategoryId: "missing"}
	err := faqService.Create(faq)
	assert.Error(t, err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "categoryId")

	category := &model.FaqCategory{Name: "Enrollment"}
	assert.NoError(t, (&FaqCategoryService{}).Create(category))

	faq.CategoryId = category.Id
	assert.NoError(t, faqService.Create(faq))

	faqs, err := faqService.List(category.Id)
	assert.NoError(t, err)
	assert.Len(t, faqs, 1)
}

func TestReviewRequiresExistingCourse(t *testing.T) {
	setup()
	defer teardown()

	reviewService := ReviewService{}

	review := &model.Review{Author: "Olga", Content: "Great course!", CourseId: "missing"}
	err := reviewService.Create(review)
	assert.Error(t, err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "courseId")

	course := mustCreateCourse(t, newMemStore(), "English B2")
	review.CourseId = course.Id
	assert.NoError(t, reviewService.Create(review))

	reviews, err := reviewService.List(course.Id)
	assert.NoError(t, err)
	assert.Len(t, reviews, 1)

	assert.NoError(t, reviewService.Delete(review.Id))
	_, err = reviewService.Get(review.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestArticleDeleteRemovesImage(t *testing.T) {
	setup()
	defer teardown()

	store := newMemStore()
	articleService := NewArticleService(store)

	article := &model.Article{Title: "Open house day", Content: "Join us on Saturday."}
	assert.NoError(t, articleService.Create(article))

	data := strings.NewReader("png bytes")
	updated, err := articleService.SetImage(context.Background(), article.Id, data, data.Size(), "banner.png", "image/png")
	assert.NoError(t, err)
	assert.True(t, store.has(updated.ImageRef))

	assert.NoError(t, articleService.Delete(article.Id))
	assert.False(t, store.has(updated.ImageRef))
	_, err = articleService.Get(article.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestCourseCategoryUniqueName(t *testing.T) {
	setup()
	defer teardown()

	categoryService := CourseCategoryService{}

	assert.NoError(t, categoryService.Create(&model.CourseCategory{Name: "Programming"}))
	assert.Error(t, categoryService.Create(&model.CourseCategory{Name: "Programming"}))
	assert.Error(t, categoryService.Create(&model.CourseCategory{Name: " "}))
}
