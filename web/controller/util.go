// Package controller provides the HTTP request handlers for the
// edu-center REST API.
package controller

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"edu-center/database"
	"edu-center/logger"
	"edu-center/validation"
	"edu-center/web/access"
	"edu-center/web/entity"
	"edu-center/web/middleware"

	"github.com/gin-gonic/gin"
)

// checkObjectPermission enforces the staff-or-owner policy for a resource
// instance, replying 403 and returning false when the caller may not act.
func checkObjectPermission(c *gin.Context, kind access.Kind, resourceId string) bool {
	ok, err := access.HasObjectPermission(middleware.Identity(c), kind, resourceId)
	if err != nil {
		jsonError(c, err)
		return false
	}
	if !ok {
		c.JSON(http.StatusForbidden, entity.Msg{Success: false, Msg: "forbidden"})
		return false
	}
	return true
}

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonMsg sends a success envelope with a message.
func jsonMsg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, entity.Msg{Success: true, Msg: msg})
}

// jsonObj sends a success envelope with an object.
func jsonObj(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, entity.Msg{Success: true, Obj: obj})
}

// jsonCreated sends a 201 envelope with the created object.
func jsonCreated(c *gin.Context, obj any) {
	c.JSON(http.StatusCreated, entity.Msg{Success: true, Obj: obj})
}

// pureJsonMsg sends a message envelope with a custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// jsonError maps a service error onto the HTTP taxonomy: validation
// failures become 400 with the per-field map, missing records 404,
// everything else 500.
func jsonError(c *gin.Context, err error) {
	var fieldErrors validation.Errors
	switch {
	case errors.As(err, &fieldErrors):
		c.JSON(http.StatusBadRequest, entity.Msg{Success: false, Msg: "validation failed", Obj: fieldErrors})
	case database.IsNotFound(err):
		c.JSON(http.StatusNotFound, entity.Msg{Success: false, Msg: "not found"})
	default:
		logger.Warning("request failed:", err)
		c.JSON(http.StatusInternalServerError, entity.Msg{Success: false, Msg: "internal error"})
	}
}
