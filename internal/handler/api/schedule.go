package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketflo/internal/domain/availability"
	reqdto "ticketflo/internal/handler/dto/request"
	resdto "ticketflo/internal/handler/dto/response"
	"ticketflo/internal/handler/httperr"
	"ticketflo/internal/handler/middleware"
	"ticketflo/internal/pkg/errs"
	"ticketflo/internal/usecase/commands"
	"ticketflo/internal/usecase/queries"
)

type ScheduleHandler struct {
	cmds  commands.ScheduleCommands
	q     queries.ScheduleQueries
	users queries.UserQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries, users queries.UserQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q, users: users}
}

// @Summary List resources
// @Description List the bookable resources of the caller's organization
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ResourceResponse
// @Failure 401 {object} map[string]string
// @Router /resources [get]
func (h *ScheduleHandler) ListResources(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	actor, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	// Users outside any organization own no resources.
	if actor.OrgID == nil {
		c.JSON(http.StatusOK, []resdto.ResourceResponse{})
		return
	}

	views, err := h.q.ListResources(c.Request.Context(), *actor.OrgID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

// @Summary Get resource
// @Description Get a resource with its resolved booking rules
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [get]
func (h *ScheduleHandler) GetResource(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	view, err := h.q.GetResource(c.Request.Context(), id)
	if err != nil {
		h.abortQueryErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Get weekly schedule
// @Description Get a resource's seven-day opening hours
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.WeeklyScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id}/schedule [get]
func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	view, err := h.q.GetWeek(c.Request.Context(), id)
	if err != nil {
		h.abortQueryErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeeklyScheduleView(view))
}

// @Summary Replace weekly schedule
// @Description Replace all seven day entries of a resource's schedule
// @Tags schedules
// @Accept json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.UpdateWeeklyScheduleRequest true "Weekly schedule"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /resources/{id}/schedule [put]
func (h *ScheduleHandler) PutWeek(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateWeeklyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.ReplaceWeek(c.Request.Context(), id, req); err != nil {
		h.abortCommandErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update booking rules
// @Description Update a resource's booking rules as overrides on its vertical preset
// @Tags schedules
// @Accept json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.UpdateRulesRequest true "Rule overrides"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /resources/{id}/rules [put]
func (h *ScheduleHandler) PutRules(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateRules(c.Request.Context(), id, req); err != nil {
		h.abortCommandErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List blackout dates
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {array} resdto.BlackoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id}/blackouts [get]
func (h *ScheduleHandler) ListBlackouts(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	views, err := h.q.ListBlackouts(c.Request.Context(), id)
	if err != nil {
		h.abortQueryErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlackoutViews(views))
}

// @Summary Add blackout date
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.CreateBlackoutRequest true "Blackout date"
// @Success 201 {object} resdto.CreateBlackoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resources/{id}/blackouts [post]
func (h *ScheduleHandler) AddBlackout(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	blackoutID, err := h.cmds.AddBlackout(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrDuplicateBlackout):
			httperr.AbortWithError(c, http.StatusConflict, err, "Blackout date already exists", nil)
		default:
			h.abortCommandErr(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateBlackoutResponse{ID: blackoutID})
}

// @Summary Remove blackout date
// @Tags schedules
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param blackoutId path string true "Blackout ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id}/blackouts/{blackoutId} [delete]
func (h *ScheduleHandler) RemoveBlackout(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	blackoutID, err := uuid.Parse(c.Param("blackoutId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid blackout ID format", nil)
		return
	}

	if err := h.cmds.RemoveBlackout(c.Request.Context(), id, blackoutID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBlackoutNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Blackout date not found", nil)
		default:
			h.abortCommandErr(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) abortQueryErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func (h *ScheduleHandler) abortCommandErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case errors.Is(err, commands.ErrInvalidSchedule):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid schedule", nil)
	case errors.Is(err, commands.ErrInvalidRules):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid booking rules", nil)
	case errors.Is(err, commands.ErrInvalidBlackout):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid blackout date", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func resourceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
