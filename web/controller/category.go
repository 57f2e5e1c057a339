package controller

import (
	"net/http"

	"edu-center/database/model"
	"edu-center/web/middleware"
	"edu-center/web/service"
	"edu-center/web/token"

	"github.com/gin-gonic/gin"
)

type categoryForm struct {
	Name string `json:"name" binding:"required"`
}

// CategoryController exposes the course and FAQ category lookup tables.
type CategoryController struct {
	courseCategoryService service.CourseCategoryService
	faqCategoryService    service.FaqCategoryService
}

func NewCategoryController(g *gin.RouterGroup, tokenService *token.Service) *CategoryController {
	a := &CategoryController{}

	courseCategories := g.Group("/course-categories")
	courseCategories.GET("", a.listCourseCategories)
	courseCategories.GET("/:id", a.getCourseCategory)

	courseAdmin := courseCategories.Group("")
	courseAdmin.Use(middleware.TokenAuth(tokenService), middleware.RequireRole(model.RoleAdmin))
	{
		courseAdmin.POST("", a.createCourseCategory)
		courseAdmin.PATCH("/:id", a.updateCourseCategory)
		courseAdmin.DELETE("/:id", a.deleteCourseCategory)
	}

	faqCategories := g.Group("/faq-categories")
	faqCategories.GET("", a.listFaqCategories)
	faqCategories.GET("/:id", a.getFaqCategory)

	faqAdmin := faqCategories.Group("")
	faqAdmin.Use(middleware.TokenAuth(tokenService), middleware.RequireRole(model.RoleAdmin))
	{
		faqAdmin.POST("", a.createFaqCategory)
		faqAdmin.PATCH("/:id", a.updateFaqCategory)
		faqAdmin.DELETE("/:id", a.deleteFaqCategory)
	}
	return a
}

func (a *CategoryController) listCourseCategories(c *gin.Context) {
	categories, err := a.courseCategoryService.List()
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, categories)
}

func (a *CategoryController) getCourseCategory(c *gin.Context) {
	category, err := a.courseCategoryService.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, category)
}

func (a *CategoryController) createCourseCategory(c *gin.Context) {
	var form categoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "name is required")
		return
	}
	category := &model.CourseCategory{Name: form.Name}
	if err := a.courseCategoryService.Create(category); err != nil {
		jsonError(c, err)
		return
	}
	jsonCreated(c, category)
}

func (a *CategoryController) updateCourseCategory(c *gin.Context) {
	var form categoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "name is required")
		return
	}
	category, err := a.courseCategoryService.Update(c.Param("id"), form.Name)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, category)
}

func (a *CategoryController) deleteCourseCategory(c *gin.Context) {
	if err := a.courseCategoryService.Delete(c.Param("id")); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *CategoryController) listFaqCategories(c *gin.Context) {
	categories, err := a.faqCategoryService.List()
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, categories)
}

func (a *CategoryController) getFaqCategory(c *gin.Context) {
	category, err := a.faqCategoryService.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, category)
}

func (a *CategoryController) createFaqCategory(c *gin.Context) {
	var form categoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "name is required")
		return
	}
	category := &model.FaqCategory{Name: form.Name}
	if err := a.faqCategoryService.Create(category); err != nil {
		jsonError(c, err)
		return
	}
	jsonCreated(c, category)
}

func (a *CategoryController) updateFaqCategory(c *gin.Context) {
	var form categoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "name is required")
		return
	}
	category, err := a.faqCategoryService.Update(c.Param("id"), form.Name)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, category)
}

func (a *CategoryController) deleteFaqCategory(c *gin.Context) {
	if err := a.faqCategoryService.Delete(c.Param("id")); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
