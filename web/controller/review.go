package controller

import (
	"net/http"

	"edu-center/database/model"
	"edu-center/web/middleware"
	"edu-center/web/service"
	"edu-center/web/token"

	"github.com/gin-gonic/gin"
)

type createReviewForm struct {
	CourseId string `json:"courseId" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

type updateReviewForm struct {
	Author  *string `json:"author"`
	Content *string `json:"content"`
}

// ReviewController exposes course reviews. Visitors may read and leave
// reviews; moderation (edit, delete) is admin-only.
type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(g *gin.RouterGroup, tokenService *token.Service) *ReviewController {
	a := &ReviewController{}

	reviews := g.Group("/reviews")
	reviews.GET("", a.list)
	reviews.GET("/:id", a.get)
	reviews.POST("", a.create)

	admin := reviews.Group("")
	admin.Use(middleware.TokenAuth(tokenService), middleware.RequireRole(model.RoleAdmin))
	{
		admin.PATCH("/:id", a.update)
		admin.DELETE("/:id", a.delete)
	}
	return a
}

func (a *ReviewController) list(c *gin.Context) {
	reviews, err := a.reviewService.List(c.Query("courseId"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, reviews)
}

func (a *ReviewController) get(c *gin.Context) {
	review, err := a.reviewService.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, review)
}

func (a *ReviewController) create(c *gin.Context) {
	var form createReviewForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid review form")
		return
	}

	review := &model.Review{
		CourseId: form.CourseId,
		Author:   form.Author,
		Content:  form.Content,
	}
	if err := a.reviewService.Create(review); err != nil {
		jsonError(c, err)
		return
	}
	jsonCreated(c, review)
}

func (a *ReviewController) update(c *gin.Context) {
	var form updateReviewForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid review form")
		return
	}

	review, err := a.reviewService.Update(c.Param("id"), service.ReviewPatch{
		Author:  form.Author,
		Content: form.Content,
	})
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, review)
}

func (a *ReviewController) delete(c *gin.Context) {
	if err := a.reviewService.Delete(c.Param("id")); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
