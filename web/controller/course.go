package controller

import (
	"net/http"

	"edu-center/database/model"
	"edu-center/storage"
	"edu-center/web/middleware"
	"edu-center/web/service"
	"edu-center/web/token"

	"github.com/gin-gonic/gin"
)

type createCourseForm struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Advantages   string   `json:"advantages"`
	Curriculum   string   `json:"curriculum"`
	StudyHours   int      `json:"studyHours"`
	PriceForOne  uint     `json:"priceForOne"`
	PriceInGroup uint     `json:"priceInGroup"`
	CategoryId   string   `json:"categoryId" binding:"required"`
	TeacherIds   []string `json:"teacherIds"`
}

type updateCourseForm struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Advantages   *string   `json:"advantages"`
	Curriculum   *string   `json:"curriculum"`
	StudyHours   *int      `json:"studyHours"`
	PriceForOne  *uint     `json:"priceForOne"`
	PriceInGroup *uint     `json:"priceInGroup"`
	CategoryId   *string   `json:"categoryId"`
	TeacherIds   *[]string `json:"teacherIds"`
}

type studentsForm struct {
	StudentIds []string `json:"studentIds" binding:"required"`
}

// CourseController exposes the course catalog. Reads are public, catalog
// mutations are admin-only.
type CourseController struct {
	courseService *service.CourseService
	store         storage.Store
}

func NewCourseController(g *gin.RouterGroup, tokenService *token.Service, store storage.Store) *CourseController {
	a := &CourseController{
		courseService: service.NewCourseService(store),
		store:         store,
	}

	courses := g.Group("/courses")
	courses.GET("", a.list)
	courses.GET("/:id", a.get)

	admin := courses.Group("")
	admin.Use(middleware.TokenAuth(tokenService), middleware.RequireRole(model.RoleAdmin))
	{
		admin.POST("", a.create)
		admin.PATCH("/:id", a.update)
		admin.POST("/:id/photo", a.uploadPhoto)
		admin.POST("/:id/students", a.addStudents)
		admin.DELETE("/:id/students", a.removeStudents)
		admin.DELETE("/:id", a.delete)
	}
	return a
}

func (a *CourseController) list(c *gin.Context) {
	courses, err := a.courseService.List(c.Query("categoryId"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newCourseViews(a.store, courses))
}

func (a *CourseController) get(c *gin.Context) {
	course, err := a.courseService.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newCourseView(a.store, course))
}

func (a *CourseController) create(c *gin.Context) {
	var form createCourseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid course form")
		return
	}

	course := &model.Course{
		Title:        form.Title,
		Description:  form.Description,
		Advantages:   form.Advantages,
		Curriculum:   form.Curriculum,
		StudyHours:   form.StudyHours,
		PriceForOne:  form.PriceForOne,
		PriceInGroup: form.PriceInGroup,
		CategoryId:   form.CategoryId,
	}
	if err := a.courseService.Create(course, form.TeacherIds); err != nil {
		jsonError(c, err)
		return
	}
	jsonCreated(c, newCourseView(a.store, course))
}

func (a *CourseController) update(c *gin.Context) {
	var form updateCourseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid course form")
		return
	}

	course, err := a.courseService.Update(c.Param("id"), service.CoursePatch{
		Title:        form.Title,
		Description:  form.Description,
		Advantages:   form.Advantages,
		Curriculum:   form.Curriculum,
		StudyHours:   form.StudyHours,
		PriceForOne:  form.PriceForOne,
		PriceInGroup: form.PriceInGroup,
		CategoryId:   form.CategoryId,
		TeacherIds:   form.TeacherIds,
	})
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newCourseView(a.store, course))
}

func (a *CourseController) uploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "photo file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		jsonError(c, err)
		return
	}
	defer file.Close()

	course, err := a.courseService.SetPhoto(c.Request.Context(), c.Param("id"), file, fileHeader.Size,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newCourseView(a.store, course))
}

func (a *CourseController) addStudents(c *gin.Context) {
	var form studentsForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "studentIds is required")
		return
	}
	if err := a.courseService.AddStudents(c.Param("id"), form.StudentIds); err != nil {
		jsonError(c, err)
		return
	}
	jsonMsg(c, "students added")
}

func (a *CourseController) removeStudents(c *gin.Context) {
	var form studentsForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "studentIds is required")
		return
	}
	if err := a.courseService.RemoveStudents(c.Param("id"), form.StudentIds); err != nil {
		jsonError(c, err)
		return
	}
	jsonMsg(c, "students removed")
}

func (a *CourseController) delete(c *gin.Context) {
	if err := a.courseService.Delete(c.Param("id")); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
