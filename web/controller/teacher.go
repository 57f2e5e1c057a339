package controller

import (
	"net/http"

	"edu-center/database/model"
	"edu-center/storage"
	"edu-center/web/access"
	"edu-center/web/middleware"
	"edu-center/web/service"
	"edu-center/web/token"

	"github.com/gin-gonic/gin"
)

type createTeacherForm struct {
	UserId     string `json:"userId" binding:"required"`
	Education  string `json:"education" binding:"required"`
	Experience string `json:"experience" binding:"required"`
}

type updateTeacherForm struct {
	Education  *string `json:"education"`
	Experience *string `json:"experience"`
}

// TeacherController exposes the teaching profiles. Reads are public;
// mutations need authentication plus staff-or-owner object permission.
type TeacherController struct {
	teacherInfoService *service.TeacherInfoService
	store              storage.Store
}

func NewTeacherController(g *gin.RouterGroup, tokenService *token.Service, store storage.Store) *TeacherController {
	a := &TeacherController{
		teacherInfoService: service.NewTeacherInfoService(store),
		store:              store,
	}

	teachers := g.Group("/teachers")
	teachers.GET("", a.list)
	teachers.GET("/:id", a.get)

	protected := teachers.Group("")
	protected.Use(middleware.TokenAuth(tokenService))
	{
		protected.POST("", a.create)
		protected.PATCH("/:id", a.update)
		protected.POST("/:id/photo", a.uploadPhoto)
		protected.DELETE("/:id", a.delete)
	}
	return a
}

func (a *TeacherController) list(c *gin.Context) {
	infos, err := a.teacherInfoService.List()
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newTeacherInfoViews(a.store, infos))
}

func (a *TeacherController) get(c *gin.Context) {
	info, err := a.teacherInfoService.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newTeacherInfoView(a.store, info))
}

func (a *TeacherController) create(c *gin.Context) {
	var form createTeacherForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid teacher form")
		return
	}

	info := &model.TeacherInfo{
		UserId:     form.UserId,
		Education:  form.Education,
		Experience: form.Experience,
	}
	if err := a.teacherInfoService.Create(info); err != nil {
		jsonError(c, err)
		return
	}
	jsonCreated(c, newTeacherInfoView(a.store, info))
}

func (a *TeacherController) update(c *gin.Context) {
	id := c.Param("id")
	if !checkObjectPermission(c, access.KindTeacherInfo, id) {
		return
	}

	var form updateTeacherForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid teacher form")
		return
	}

	info, err := a.teacherInfoService.Update(id, service.TeacherInfoPatch{
		Education:  form.Education,
		Experience: form.Experience,
	})
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newTeacherInfoView(a.store, info))
}

func (a *TeacherController) uploadPhoto(c *gin.Context) {
	id := c.Param("id")
	if !checkObjectPermission(c, access.KindTeacherInfo, id) {
		return
	}

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

	info, err := a.teacherInfoService.SetPhoto(c.Request.Context(), id, file, fileHeader.Size,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newTeacherInfoView(a.store, info))
}

func (a *TeacherController) delete(c *gin.Context) {
	id := c.Param("id")
	if !checkObjectPermission(c, access.KindTeacherInfo, id) {
		return
	}
	if err := a.teacherInfoService.Delete(id); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
