package controller

import (
	"net/http"

	"edu-center/storage"
	"edu-center/web/access"
	"edu-center/web/middleware"
	"edu-center/web/service"
	"edu-center/web/token"

	"github.com/gin-gonic/gin"
)

// CertificateController exposes teacher certificates. Reads are public;
// uploads go to the profile owner or staff, deletion likewise.
type CertificateController struct {
	certificateService *service.CertificateService
	store              storage.Store
}

func NewCertificateController(g *gin.RouterGroup, tokenService *token.Service, store storage.Store) *CertificateController {
	a := &CertificateController{
		certificateService: service.NewCertificateService(store),
		store:              store,
	}

	certs := g.Group("/certificates")
	certs.GET("", a.list)
	certs.GET("/:id", a.get)

	protected := certs.Group("")
	protected.Use(middleware.TokenAuth(tokenService))
	{
		protected.POST("", a.create)
		protected.DELETE("/:id", a.delete)
	}
	return a
}

func (a *CertificateController) list(c *gin.Context) {
	certs, err := a.certificateService.List(c.Query("teacherInfoId"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newCertificateViews(a.store, certs))
}

func (a *CertificateController) get(c *gin.Context) {
	cert, err := a.certificateService.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, newCertificateView(a.store, cert))
}

func (a *CertificateController) create(c *gin.Context) {
	teacherInfoId := c.PostForm("teacherInfoId")
	if teacherInfoId == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, "teacherInfoId is required")
		return
	}
	if !checkObjectPermission(c, access.KindTeacherInfo, teacherInfoId) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "certificate file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		jsonError(c, err)
		return
	}
	defer file.Close()

	cert, err := a.certificateService.Create(c.Request.Context(), teacherInfoId, file, fileHeader.Size,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonCreated(c, newCertificateView(a.store, cert))
}

// delete removes the certificate. The backing file goes first; the record
// is removed even when the file deletion fails.
func (a *CertificateController) delete(c *gin.Context) {
	id := c.Param("id")
	if !checkObjectPermission(c, access.KindCertificate, id) {
		return
	}
	if err := a.certificateService.Delete(id); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
