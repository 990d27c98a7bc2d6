package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecorun/activity-backend-go/internal/middleware"
	"github.com/ecorun/activity-backend-go/internal/models"
	"github.com/ecorun/activity-backend-go/internal/service"
	"github.com/ecorun/activity-backend-go/pkg/response"
)

// ActivityHandler handles HTTP requests for activities
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// Create handles POST /api/v1/activities
func (h *ActivityHandler) Create(c *gin.Context) {
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	activity, err := h.activityService.Save(middleware.UserID(c), req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, activity)
}

// List handles GET /api/v1/activities
func (h *ActivityHandler) List(c *gin.Context) {
	var filter models.ActivityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.activityService.List(middleware.UserID(c), filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// Get handles GET /api/v1/activities/:id
func (h *ActivityHandler) Get(c *gin.Context) {
	activity, err := h.activityService.Get(middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Activity not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, activity)
}

// Track handles GET /api/v1/activities/:id/track, returning the decoded
// position sequence
func (h *ActivityHandler) Track(c *gin.Context) {
	positions, err := h.activityService.Track(middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Activity not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, positions)
}

// ExportGPX handles GET /api/v1/activities/:id/gpx
func (h *ActivityHandler) ExportGPX(c *gin.Context) {
	doc, err := h.activityService.ExportGPX(middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Activity not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="activity.gpx"`)
	c.Data(200, "application/gpx+xml", []byte(doc))
}

// Summary handles GET /api/v1/activities/summary
func (h *ActivityHandler) Summary(c *gin.Context) {
	summary, err := h.activityService.Summary(middleware.UserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, summary)
}

// Delete handles DELETE /api/v1/activities/:id
func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.activityService.Delete(middleware.UserID(c), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Activity not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, nil)
}
