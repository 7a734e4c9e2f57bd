package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketflo/internal/domain/availability"
	resdto "ticketflo/internal/handler/dto/response"
	"ticketflo/internal/handler/httperr"
	"ticketflo/internal/usecase/queries"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Get day slots
// @Description Compute the bookable slots for a resource on one date
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DaySlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /resources/{id}/slots [get]
func (h *AvailabilityHandler) GetDaySlots(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID format", nil)
		return
	}

	date, err := availability.ParseCalendarDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing date, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.q.DaySlots(c.Request.Context(), resourceID, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		case errors.Is(err, availability.ErrConfig):
			// The resource's stored configuration is unusable, not the request.
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Resource configuration is invalid", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDaySlotsView(view))
}
