package controllers

import (
	"net/http"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type TagController struct{ Service *services.TagService }

func NewTagController(s *services.TagService) *TagController {
	return &TagController{Service: s}
}

// GET /tags/options
func (ctl *TagController) Options(c *gin.Context) {
	tags, err := ctl.Service.Options()
	if err != nil {
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": tags})
}
