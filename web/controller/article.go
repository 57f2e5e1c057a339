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

type createArticleForm struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Source  string `json:"source"`
}

type updateArticleForm struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Source  *string `json:"source"`
}

type ArticleController struct {
	articleService *service.ArticleService
	store          storage.Store
}

func NewArticleController(g *gin.RouterGroup, tokenService *token.Service, store storage.Store) *ArticleController {
	a := &ArticleController{
		articleService: service.NewArticleService(store),
		store:          store,
	}

	articles := g.Group("/articles")
	articles.GET("", a.list)
	articles.GET("/:id", a.get)

	admin := articles.Group("")
	admin.Use(middleware.TokenAuth(tokenService), middleware.RequireRole(model.RoleAdmin))
	{
		admin.POST("", a.create)
		admin.PATCH("/:id", a.update)
		admin.POST("/:id/image", a.uploadImage)
		admin.DELETE("/:id", a.delete)
	}
	return a
}

func (a *ArticleController) list(c *gin.Context) {
	articles, err := a.articleService.List()
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newArticleViews(a.store, articles))
}

func (a *ArticleController) get(c *gin.Context) {
	article, err := a.articleService.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newArticleView(a.store, article))
}

func (a *ArticleController) create(c *gin.Context) {
	var form createArticleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid article form")
		return
	}

	article := &model.Article{
		Title:   form.Title,
		Content: form.Content,
		Source:  form.Source,
	}
	if err := a.articleService.Create(article); err != nil {
		jsonError(c, err)
		return
	}
	jsonCreated(c, newArticleView(a.store, article))
}

func (a *ArticleController) update(c *gin.Context) {
	var form updateArticleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid article form")
		return
	}

	article, err := a.articleService.Update(c.Param("id"), service.ArticlePatch{
		Title:   form.Title,
		Content: form.Content,
		Source:  form.Source,
	})
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newArticleView(a.store, article))
}

func (a *ArticleController) uploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "image file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		jsonError(c, err)
		return
	}
	defer file.Close()

	article, err := a.articleService.SetImage(c.Request.Context(), c.Param("id"), file, fileHeader.Size,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newArticleView(a.store, article))
}

func (a *ArticleController) delete(c *gin.Context) {
	if err := a.articleService.Delete(c.Param("id")); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
