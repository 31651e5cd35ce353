package controllers

import (
	"errors"
	"net/http"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type SessionRequestController struct {
	Service *services.SessionRequestService
	Auth    *services.AuthService
}

func NewSessionRequestController(s *services.SessionRequestService, auth *services.AuthService) *SessionRequestController {
	return &SessionRequestController{Service: s, Auth: auth}
}

type CreateSessionRequestReq struct {
	MentorSlug    string `json:"mentorSlug" binding:"required"`
	PreferredTime string `json:"preferredTime" binding:"omitempty,max=200"`
	Message       string `json:"message" binding:"omitempty,max=5000"`
	ProposedRate  *int   `json:"proposedRate" binding:"omitempty,min=0"`
}

// POST /session-requests
func (ctl *SessionRequestController) Create(c *gin.Context) {
	var req CreateSessionRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequestDetail(c, "missing_fields", err.Error())
		return
	}

	requester, err := ctl.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, resp.CodeBadToken)
		return
	}

	created, err := ctl.Service.Create(requester, services.SessionRequestInput{
		MentorSlug:    req.MentorSlug,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
		ProposedRate:  req.ProposedRate,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, resp.CodeNotFound)
		case errors.Is(err, services.ErrMentorNotBookable):
			resp.Forbidden(c, "mentor_not_bookable")
		default:
			resp.ServerError(c, resp.CodeServerError, err)
		}
		return
	}

	resp.Created(c, created)
}

// GET /mentor/requests lists the mentor's incoming requests
func (ctl *SessionRequestController) ListForMentor(c *gin.Context) {
	reqs, slug, err := ctl.Service.ListForMentor(utils.CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.Forbidden(c, "no_mentor_profile")
		case errors.Is(err, services.ErrMentorNotBookable):
			resp.Forbidden(c, "mentor_not_approved")
		default:
			resp.ServerError(c, resp.CodeServerError, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": reqs, "mentorSlug": slug})
}

// GET /session-requests/mine lists requests the caller sent
func (ctl *SessionRequestController) ListMine(c *gin.Context) {
	reqs, err := ctl.Service.ListMine(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": reqs})
}
