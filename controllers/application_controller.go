package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ApplicationController struct{ Service *services.ApplicationService }

func NewApplicationController(s *services.ApplicationService) *ApplicationController {
	return &ApplicationController{Service: s}
}

// ===== Request DTOs =====

type ExperienceRoleReq struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Company     string  `json:"company" binding:"required,max=200"`
	Start       string  `json:"start" binding:"required"`
	End         *string `json:"end,omitempty"`
	Current     bool    `json:"current"`
	Description string  `json:"description" binding:"max=2000"`
}

type ApplyReq struct {
	First     string              `json:"first" binding:"required,max=100"`
	Last      string              `json:"last" binding:"required,max=100"`
	Headline  string              `json:"headline" binding:"required,max=200"`
	Bio       string              `json:"bio" binding:"required,max=10000"`
	Linkedin  string              `json:"linkedin" binding:"required,url,max=500"`
	Portfolio string              `json:"portfolio" binding:"omitempty,url,max=500"`
	Country   string              `json:"country" binding:"required,max=100"`
	City      string              `json:"city" binding:"required,max=100"`
	PhotoURL  string              `json:"photoUrl" binding:"omitempty,url,max=500"`
	Rate      int                 `json:"rate" binding:"min=0"`
	Roles     []ExperienceRoleReq `json:"roles" binding:"dive"`
	TagIDs    []uint              `json:"tagIds" binding:"max=5"`
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

type UpdateMineReq struct {
	Headline string `json:"headline" binding:"omitempty,max=200"`
	Bio      string `json:"bio" binding:"omitempty,max=10000"`
	Rate     *int   `json:"rate" binding:"omitempty,min=0"`
	City     string `json:"city" binding:"omitempty,max=100"`
	Country  string `json:"country" binding:"omitempty,max=100"`
}

// ===== Applicant endpoints =====

// POST /applications
func (ctl *ApplicationController) Apply(c *gin.Context) {
	var req ApplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequestDetail(c, "missing_fields", err.Error())
		return
	}

	roles := make([]entity.ExperienceRole, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, entity.ExperienceRole{
			Title:       r.Title,
			Company:     r.Company,
			Start:       r.Start,
			End:         r.End,
			Current:     r.Current,
			Description: r.Description,
		})
	}

	app, err := ctl.Service.Apply(utils.CurrentUserID(c), services.ApplyInput{
		FirstName:    req.First,
		LastName:     req.Last,
		Headline:     req.Headline,
		Bio:          req.Bio,
		LinkedinURL:  req.Linkedin,
		PortfolioURL: req.Portfolio,
		Country:      req.Country,
		City:         req.City,
		PhotoURL:     req.PhotoURL,
		Rate:         req.Rate,
		Roles:        roles,
		TagIDs:       req.TagIDs,
	})
	if err != nil {
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}

	resp.Created(c, gin.H{"id": app.ID, "status": app.Status})
}

// GET /applications/mine?status=
func (ctl *ApplicationController) ListMine(c *gin.Context) {
	apps, err := ctl.Service.ListMine(utils.CurrentUserID(c), c.DefaultQuery("status", ""))
	if err != nil {
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": apps})
}

// PATCH /applications/:id (self-edit, pending only)
func (ctl *ApplicationController) UpdateMine(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid_id")
		return
	}

	var req UpdateMineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequestDetail(c, "missing_fields", err.Error())
		return
	}

	updates := map[string]any{}
	if req.Headline != "" {
		updates["headline"] = req.Headline
	}
	if req.Bio != "" {
		updates["bio"] = req.Bio
	}
	if req.Rate != nil {
		updates["rate"] = *req.Rate
	}
	if req.City != "" {
		updates["city"] = req.City
	}
	if req.Country != "" {
		updates["country"] = req.Country
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "missing_fields")
		return
	}

	app, err := ctl.Service.UpdateMine(uint(id), utils.CurrentUserID(c), updates)
	if err != nil {
		if errors.Is(err, services.ErrNotPending) {
			resp.BadRequest(c, "not_pending")
			return
		}
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}
	resp.OK(c, app)
}

// GET /me/application-status
func (ctl *ApplicationController) MyStatus(c *gin.Context) {
	state, err := ctl.Service.MyStatus(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "state": state})
}

// ===== Moderator endpoints =====

// GET /admin/applications?status=pending
func (ctl *ApplicationController) List(c *gin.Context) {
	apps, err := ctl.Service.List(c.DefaultQuery("status", ""))
	if err != nil {
		resp.BadRequest(c, resp.CodeInvalidStatus)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": apps})
}

// GET /admin/applications/:id
func (ctl *ApplicationController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid_id")
		return
	}
	app, err := ctl.Service.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, resp.CodeNotFound)
			return
		}
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}
	resp.OK(c, app)
}

// PATCH /admin/applications/:id/status
//
// The transition endpoint: validates the target against the legal-transition
// table, runs the promotion / standing side effects and writes the new
// status. Responds with the updated application and, after an approval, the
// public profile slug.
func (ctl *ApplicationController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid_id")
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, resp.CodeInvalidStatus)
		return
	}
	target, err := entity.ParseStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if err != nil {
		resp.BadRequest(c, resp.CodeInvalidStatus)
		return
	}

	res, err := ctl.Service.Transition(uint(id), target)
	if err != nil {
		var partial *services.PartialPromotionError
		switch {
		case errors.As(err, &partial):
			// side effects committed, status write did not; surface it so
			// an operator can retry (re-approval is idempotent). Must match
			// before the sentinel checks: the wrapper unwraps to its cause,
			// and a lost-race partial must never read as a clean rejection.
			body := gin.H{"ok": false, "error": resp.CodePartialPromotion, "detail": partial.Err.Error()}
			if partial.Slug != "" {
				body["mentorSlug"] = partial.Slug
			}
			c.JSON(http.StatusInternalServerError, body)
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, resp.CodeNotFound)
		case errors.Is(err, services.ErrInvalidTransition):
			resp.BadRequest(c, resp.CodeInvalidTransition)
		case errors.Is(err, services.ErrSlugExhausted):
			resp.ServerError(c, resp.CodeSlugExhausted, err)
		default:
			resp.ServerError(c, resp.CodeServerError, err)
		}
		return
	}

	body := gin.H{"ok": true, "application": res.Application}
	if res.MentorSlug != "" {
		body["mentorSlug"] = res.MentorSlug
	}
	c.JSON(http.StatusOK, body)
}
