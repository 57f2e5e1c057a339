package controller

import (
	"net/http"

	"edu-center/database/model"
	"edu-center/web/middleware"
	"edu-center/web/service"
	"edu-center/web/token"

	"github.com/gin-gonic/gin"
)

type createDiscountForm struct {
	Percent     int    `json:"percent"`
	Description string `json:"description" binding:"required"`
}

type updateDiscountForm struct {
	Percent     *int    `json:"percent"`
	Description *string `json:"description"`
}

type DiscountController struct {
	discountService service.DiscountService
}

func NewDiscountController(g *gin.RouterGroup, tokenService *token.Service) *DiscountController {
	a := &DiscountController{}

	discounts := g.Group("/discounts")
	discounts.GET("", a.list)
	discounts.GET("/:id", a.get)

	admin := discounts.Group("")
	admin.Use(middleware.TokenAuth(tokenService), middleware.RequireRole(model.RoleAdmin))
	{
		admin.POST("", a.create)
		admin.PATCH("/:id", a.update)
		admin.DELETE("/:id", a.delete)
	}
	return a
}

func (a *DiscountController) list(c *gin.Context) {
	discounts, err := a.discountService.List()
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, discounts)
}

func (a *DiscountController) get(c *gin.Context) {
	discount, err := a.discountService.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, discount)
}

func (a *DiscountController) create(c *gin.Context) {
	var form createDiscountForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid discount form")
		return
	}

	discount := &model.Discount{
		Percent:     form.Percent,
		Description: form.Description,
	}
	if err := a.discountService.Create(discount); err != nil {
		jsonError(c, err)
		return
	}
	jsonCreated(c, discount)
}

func (a *DiscountController) update(c *gin.Context) {
	var form updateDiscountForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid discount form")
		return
	}

	discount, err := a.discountService.Update(c.Param("id"), service.DiscountPatch{
		Percent:     form.Percent,
		Description: form.Description,
	})
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, discount)
}

func (a *DiscountController) delete(c *gin.Context) {
	if err := a.discountService.Delete(c.Param("id")); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
