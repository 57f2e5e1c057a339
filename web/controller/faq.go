package controller

import (
	"net/http"

	"edu-center/database/model"
	"edu-center/web/middleware"
	"edu-center/web/service"
	"edu-center/web/token"

	"github.com/gin-gonic/gin"
)

type createFaqForm struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	CategoryId  string `json:"categoryId" binding:"required"`
}

type updateFaqForm struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CategoryId  *string `json:"categoryId"`
}

type FaqController struct {
	faqService service.FaqService
}

func NewFaqController(g *gin.RouterGroup, tokenService *token.Service) *FaqController {
	a := &FaqController{}

	faqs := g.Group("/faqs")
	faqs.GET("", a.list)
	faqs.GET("/:id", a.get)

	admin := faqs.Group("")
	admin.Use(middleware.TokenAuth(tokenService), middleware.RequireRole(model.RoleAdmin))
	{
		admin.POST("", a.create)
		admin.PATCH("/:id", a.update)
		admin.DELETE("/:id", a.delete)
	}
	return a
}

func (a *FaqController) list(c *gin.Context) {
	faqs, err := a.faqService.List(c.Query("categoryId"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, faqs)
}

func (a *FaqController) get(c *gin.Context) {
	faq, err := a.faqService.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, faq)
}

func (a *FaqController) create(c *gin.Context) {
	var form createFaqForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid faq form")
		return
	}

	faq := &model.Faq{
		Title:       form.Title,
		Description: form.Description,
		CategoryId:  form.CategoryId,
	}
	if err := a.faqService.Create(faq); err != nil {
		jsonError(c, err)
		return
	}
	jsonCreated(c, faq)
}

func (a *FaqController) update(c *gin.Context) {
	var form updateFaqForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid faq form")
		return
	}

	faq, err := a.faqService.Update(c.Param("id"), service.FaqPatch{
		Title:       form.Title,
		Description: form.Description,
		CategoryId:  form.CategoryId,
	})
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, faq)
}

func (a *FaqController) delete(c *gin.Context) {
	if err := a.faqService.Delete(c.Param("id")); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
