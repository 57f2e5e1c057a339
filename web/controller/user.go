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

type createUserForm struct {
	Username    string     `json:"username" binding:"required"`
	Password    string     `json:"password" binding:"required"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Patronymic  string     `json:"patronymic"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	Role        model.Role `json:"role" binding:"required"`
}

type updateUserForm struct {
	FirstName   *string     `json:"firstName"`
	LastName    *string     `json:"lastName"`
	Patronymic  *string     `json:"patronymic"`
	Email       *string     `json:"email"`
	PhoneNumber *string     `json:"phoneNumber"`
	Role        *model.Role `json:"role"`
}

// UserController exposes user management, admin only.
type UserController struct {
	userService        service.UserService
	teacherInfoService *service.TeacherInfoService
}

func NewUserController(g *gin.RouterGroup, tokenService *token.Service, store storage.Store) *UserController {
	a := &UserController{
		teacherInfoService: service.NewTeacherInfoService(store),
	}

	users := g.Group("/users")
	users.Use(middleware.TokenAuth(tokenService), middleware.RequireRole(model.RoleAdmin))
	{
		users.GET("", a.list)
		users.GET("/:id", a.get)
		users.POST("", a.create)
		users.PATCH("/:id", a.update)
		users.DELETE("/:id", a.delete)
	}
	return a
}

func (a *UserController) list(c *gin.Context) {
	users, err := a.userService.List()
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, users)
}

func (a *UserController) get(c *gin.Context) {
	user, err := a.userService.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, user)
}

func (a *UserController) create(c *gin.Context) {
	var form createUserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid user form")
		return
	}

	user := &model.User{
		Username:    form.Username,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Patronymic:  form.Patronymic,
		Email:       form.Email,
		PhoneNumber: form.PhoneNumber,
		Role:        form.Role,
	}
	if err := a.userService.Create(user, form.Password); err != nil {
		jsonError(c, err)
		return
	}
	jsonCreated(c, user)
}

func (a *UserController) update(c *gin.Context) {
	var form updateUserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid user form")
		return
	}

	user, err := a.userService.Update(c.Param("id"), service.UserPatch{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Patronymic:  form.Patronymic,
		Email:       form.Email,
		PhoneNumber: form.PhoneNumber,
		Role:        form.Role,
	})
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, user)
}

func (a *UserController) delete(c *gin.Context) {
	if err := a.userService.Delete(c.Param("id"), a.teacherInfoService); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
