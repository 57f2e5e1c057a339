package controller

import (
	"net/http"
	"time"

	"edu-center/database/model"
	"edu-center/web/middleware"
	"edu-center/web/service"
	"edu-center/web/token"

	"github.com/gin-gonic/gin"
)

type createApplicationForm struct {
	Name        string `json:"name" binding:"required"`
	Surname     string `json:"surname" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email"`
	StartDate   string `json:"startDate"`
	CourseId    string `json:"courseId" binding:"required"`
}

type updateApplicationForm struct {
	Name        *string `json:"name"`
	Surname     *string `json:"surname"`
	PhoneNumber *string `json:"phoneNumber"`
	Email       *string `json:"email"`
	StartDate   *string `json:"startDate"`
	CourseId    *string `json:"courseId"`
}

const startDateLayout = "2006-01-02"

// ApplicationController exposes enrollment inquiries. Visitors submit
// them without an account; reading and managing them is admin work.
type ApplicationController struct {
	applicationService service.ApplicationService
}

func NewApplicationController(g *gin.RouterGroup, tokenService *token.Service) *ApplicationController {
	a := &ApplicationController{}

	applications := g.Group("/applications")
	applications.POST("", a.create)

	admin := applications.Group("")
	admin.Use(middleware.TokenAuth(tokenService), middleware.RequireRole(model.RoleAdmin))
	{
		admin.GET("", a.list)
		admin.GET("/:id", a.get)
		admin.PATCH("/:id", a.update)
		admin.DELETE("/:id", a.delete)
	}
	return a
}

func (a *ApplicationController) list(c *gin.Context) {
	applications, err := a.applicationService.List(c.Query("courseId"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, applications)
}

func (a *ApplicationController) get(c *gin.Context) {
	application, err := a.applicationService.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, application)
}

func (a *ApplicationController) create(c *gin.Context) {
	var form createApplicationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid application form")
		return
	}

	application := &model.Application{
		Name:        form.Name,
		Surname:     form.Surname,
		PhoneNumber: form.PhoneNumber,
		Email:       form.Email,
		CourseId:    form.CourseId,
	}
	if form.StartDate != "" {
		startDate, err := time.Parse(startDateLayout, form.StartDate)
		if err != nil {
			pureJsonMsg(c, http.StatusBadRequest, false, "startDate must be formatted as YYYY-MM-DD")
			return
		}
		application.StartDate = startDate
	}

	if err := a.applicationService.Create(application); err != nil {
		jsonError(c, err)
		return
	}
	jsonCreated(c, application)
}

func (a *ApplicationController) update(c *gin.Context) {
	var form updateApplicationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid application form")
		return
	}

	patch := service.ApplicationPatch{
		Name:        form.Name,
		Surname:     form.Surname,
		PhoneNumber: form.PhoneNumber,
		Email:       form.Email,
		CourseId:    form.CourseId,
	}
	if form.StartDate != nil {
		startDate, err := time.Parse(startDateLayout, *form.StartDate)
		if err != nil {
			pureJsonMsg(c, http.StatusBadRequest, false, "startDate must be formatted as YYYY-MM-DD")
			return
		}
		patch.StartDate = &startDate
	}

	application, err := a.applicationService.Update(c.Param("id"), patch)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, application)
}

func (a *ApplicationController) delete(c *gin.Context) {
	if err := a.applicationService.Delete(c.Param("id")); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
