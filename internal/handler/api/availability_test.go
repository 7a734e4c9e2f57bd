//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/handler/api"
	resdto "ticketflo/internal/handler/dto/response"
	"ticketflo/internal/usecase/queries"
	"ticketflo/tests/common/httptest"
	queriesmock "ticketflo/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/resources/:id/slots", s.handler.GetDaySlots)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetDaySlots() {
	resourceID := uuid.New()
	date, err := availability.ParseCalendarDate("2030-06-17")
	s.Require().NoError(err)
	url := fmt.Sprintf("/resources/%s/slots?date=2030-06-17", resourceID)

	s.Run("success: returns 200 OK with computed slots", func() {
		view := &queries.DaySlotsView{
			ResourceID: resourceID,
			Date:       "2030-06-17",
			Timezone:   "America/New_York",
			Slots: []queries.SlotView{
				{Start: 540, End: 550, RemainingCapacity: 4, Available: true},
				{Start: 550, End: 560, RemainingCapacity: 0, Available: false},
			},
		}
		s.mockQueries.EXPECT().DaySlots(gomock.Any(), resourceID, date).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.DaySlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resourceID, response.ResourceID)
		s.Equal("2030-06-17", response.Date)
		s.Len(response.Slots, 2)
		s.True(response.Slots[0].Available)
		s.False(response.Slots[1].Available)
		s.Equal(0, response.Slots[1].RemainingCapacity)
	})

	s.Run("success: closed day yields an empty slot list", func() {
		view := &queries.DaySlotsView{
			ResourceID: resourceID,
			Date:       "2030-06-17",
			Timezone:   "America/New_York",
			Slots:      []queries.SlotView{},
		}
		s.mockQueries.EXPECT().DaySlots(gomock.Any(), resourceID, date).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.DaySlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Slots)
	})

	s.Run("error: 400 Bad Request for malformed resource id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/not-a-uuid/slots?date=2030-06-17", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource ID format")
	})

	s.Run("error: 400 Bad Request for malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/resources/%s/slots?date=17-06-2030", resourceID), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or missing date")
	})

	s.Run("error: 400 Bad Request for missing date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/resources/%s/slots", resourceID), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or missing date")
	})

	s.Run("error: 404 Not Found for unknown resource", func() {
		s.mockQueries.EXPECT().DaySlots(gomock.Any(), resourceID, date).
			Return(nil, queries.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})

	s.Run("error: 422 Unprocessable Entity when stored configuration is broken", func() {
		s.mockQueries.EXPECT().DaySlots(gomock.Any(), resourceID, date).
			Return(nil, availability.ErrOverlappingRanges).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Resource configuration is invalid")
	})
}
