package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response helpers keep the wire shape uniform: every error body is
// {success:false, message}, success bodies add their own fields.

func OK(c *gin.Context, payload gin.H) {
	payload["success"] = true
	c.JSON(http.StatusOK, payload)
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"success": false, "message": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func InternalErrorResponse(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}

func GoneResponse(c *gin.Context, message string) {
	Fail(c, http.StatusGone, message)
}

// RequestBaseURL reconstructs the externally visible scheme://host pair
// for building absolute links back to this service.
func RequestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
