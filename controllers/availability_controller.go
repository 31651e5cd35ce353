package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct{ Service *services.AvailabilityService }

func NewAvailabilityController(s *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Service: s}
}

type AddAvailabilityReq struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// GET /mentor/availability
func (ctl *AvailabilityController) ListMine(c *gin.Context) {
	slots, err := ctl.Service.ListMine(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.Forbidden(c, "no_mentor_profile")
			return
		}
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": slots})
}

// POST /mentor/availability
func (ctl *AvailabilityController) Create(c *gin.Context) {
	var req AddAvailabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequestDetail(c, "missing_fields", err.Error())
		return
	}

	slot, err := ctl.Service.Add(utils.CurrentUserID(c), req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.Forbidden(c, "no_mentor_profile")
			return
		}
		resp.BadRequestDetail(c, "invalid_window", err.Error())
		return
	}
	resp.Created(c, slot)
}

// DELETE /mentor/availability/:id
func (ctl *AvailabilityController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid_id")
		return
	}
	if err := ctl.Service.Remove(utils.CurrentUserID(c), uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, resp.CodeNotFound)
			return
		}
		resp.ServerError(c, resp.CodeServerError, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
