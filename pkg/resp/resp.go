// Package resp renders the uniform response envelope:
// {ok:true, data:…} on success, {ok:false, error:<code>, detail?} on failure.
// Error codes are stable strings the frontend switches on.
package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeNoToken           = "no_token"
	CodeBadToken          = "bad_token"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "not_found"
	CodeInvalidStatus     = "invalid_status"
	CodeInvalidTransition = "invalid_transition"
	CodeSlugExhausted     = "slug_exhausted"
	CodePartialPromotion  = "partial_promotion"
	CodeServerError       = "server_error"
	CodeRateLimited       = "rate_limited"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, code string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": code})
}
func BadRequestDetail(c *gin.Context, code, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": code, "detail": detail})
}
func Unauthorized(c *gin.Context, code string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": code})
}
func Forbidden(c *gin.Context, code string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": code})
}
func NotFound(c *gin.Context, code string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": code})
}
func TooManyRequests(c *gin.Context, code string) {
	c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": code})
}
func ServerError(c *gin.Context, code string, err error) {
	body := gin.H{"ok": false, "error": code}
	if err != nil {
		body["detail"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
