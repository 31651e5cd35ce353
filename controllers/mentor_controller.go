package controllers

import (
	"errors"
	"net/http"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type MentorController struct{ Service *services.MentorService }

func NewMentorController(s *services.MentorService) *MentorController {
	return &MentorController{Service: s}
}

// GET /mentors?tag=
func (ctl *MentorController) List(c *gin.Context) {
	mentors, err := ctl.Service.List(c.DefaultQuery("tag", ""))
	if err != nil {
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": mentors})
}

// GET /mentors/:slug; suspended/blocked profiles are invisible
func (ctl *MentorController) Detail(c *gin.Context) {
	mentor, err := ctl.Service.BySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, resp.CodeNotFound)
			return
		}
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}
	resp.OK(c, mentor)
}

// GET /mentor/profile returns the caller's own profile regardless of standing
func (ctl *MentorController) MyProfile(c *gin.Context) {
	mentor, err := ctl.Service.Mine(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}
	if mentor == nil {
		resp.Forbidden(c, "no_mentor_profile")
		return
	}
	resp.OK(c, mentor)
}
