//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/handler/api"
	reqdto "ticketflo/internal/handler/dto/request"
	resdto "ticketflo/internal/handler/dto/response"
	"ticketflo/internal/usecase/commands"
	"ticketflo/internal/usecase/queries"
	"ticketflo/tests/common/builder"
	"ticketflo/tests/common/httptest"
	commandsmock "ticketflo/tests/mock/commands"
	queriesmock "ticketflo/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScheduleCommands
	mockQueries  *queriesmock.MockScheduleQueries
	mockUsers    *queriesmock.MockUserQueries
	handler      *api.ScheduleHandler

	resourceID uuid.UUID
	actorID    uuid.UUID
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockCommands, s.mockQueries, s.mockUsers)

	s.resourceID = uuid.New()
	s.actorID = uuid.New()

	s.router.GET("/resources", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.actorID)
		}
		s.handler.ListResources(c)
	})
	s.router.GET("/resources/:id/schedule", s.handler.GetWeek)
	s.router.PUT("/resources/:id/schedule", s.handler.PutWeek)
	s.router.PUT("/resources/:id/rules", s.handler.PutRules)
	s.router.GET("/resources/:id/blackouts", s.handler.ListBlackouts)
	s.router.POST("/resources/:id/blackouts", s.handler.AddBlackout)
	s.router.DELETE("/resources/:id/blackouts/:blackoutId", s.handler.RemoveBlackout)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

func weekRequest() reqdto.UpdateWeeklyScheduleRequest {
	days := make([]reqdto.DaySchedulePayload, 7)
	for wd := range days {
		days[wd] = reqdto.DaySchedulePayload{
			Weekday: wd,
			Enabled: true,
			TimeRanges: []reqdto.TimeRangePayload{
				{Start: 540, End: 1020},
			},
		}
	}
	return reqdto.UpdateWeeklyScheduleRequest{Days: days}
}

func (s *ScheduleHandlerTestSuite) TestListResources() {
	s.Run("success: returns the caller's org resources", func() {
		actor := builder.NewUserBuilder().BuildReadModel()
		actor.ID = s.actorID
		s.Require().NotNil(actor.OrgID)
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.actorID).
			Return(actor, nil).Times(1)
		s.mockQueries.EXPECT().ListResources(gomock.Any(), *actor.OrgID).
			Return([]queries.ResourceView{{ID: s.resourceID, Name: "Fairway Tee 1"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources", nil, "test-token")

		var response []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(s.resourceID, response[0].ID)
	})

	s.Run("success: caller without an org gets an empty list", func() {
		actor := builder.NewUserBuilder().WithoutOrg().BuildReadModel()
		actor.ID = s.actorID
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.actorID).
			Return(actor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources", nil, "test-token")

		var response []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 Unauthorized without user context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ScheduleHandlerTestSuite) TestGetWeek() {
	url := fmt.Sprintf("/resources/%s/schedule", s.resourceID)

	s.Run("success: returns all seven day entries", func() {
		view := &queries.WeeklyScheduleView{
			ResourceID: s.resourceID,
			Days:       make([]queries.DayScheduleView, 7),
		}
		s.mockQueries.EXPECT().GetWeek(gomock.Any(), s.resourceID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.WeeklyScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Days, 7)
	})

	s.Run("error: 404 Not Found for unknown resource", func() {
		s.mockQueries.EXPECT().GetWeek(gomock.Any(), s.resourceID).
			Return(nil, queries.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})

	s.Run("error: 400 Bad Request for malformed resource id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/nope/schedule", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource ID format")
	})
}

func (s *ScheduleHandlerTestSuite) TestPutWeek() {
	url := fmt.Sprintf("/resources/%s/schedule", s.resourceID)

	s.Run("success: returns 204 No Content", func() {
		req := weekRequest()
		s.mockCommands.EXPECT().ReplaceWeek(gomock.Any(), s.resourceID, req).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when fewer than seven days are sent", func() {
		req := weekRequest()
		req.Days = req.Days[:6]

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 422 Unprocessable Entity for a rejected schedule", func() {
		req := weekRequest()
		s.mockCommands.EXPECT().ReplaceWeek(gomock.Any(), s.resourceID, req).
			Return(commands.ErrInvalidSchedule).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid schedule")
	})
}

func (s *ScheduleHandlerTestSuite) TestPutRules() {
	url := fmt.Sprintf("/resources/%s/rules", s.resourceID)

	interval := 30
	req := reqdto.UpdateRulesRequest{
		SlotIntervalMinutes: &interval,
		Timezone:            "America/New_York",
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateRules(gomock.Any(), s.resourceID, req).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when timezone is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"slot_interval_minutes": 30}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 422 Unprocessable Entity for rejected rules", func() {
		s.mockCommands.EXPECT().UpdateRules(gomock.Any(), s.resourceID, req).
			Return(commands.ErrInvalidRules).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid booking rules")
	})
}

func (s *ScheduleHandlerTestSuite) TestBlackouts() {
	url := fmt.Sprintf("/resources/%s/blackouts", s.resourceID)

	req := reqdto.CreateBlackoutRequest{Date: "2030-12-25", Reason: "holiday", Recurring: true}

	s.Run("success: add returns 201 Created with the new id", func() {
		blackoutID := uuid.New()
		s.mockCommands.EXPECT().AddBlackout(gomock.Any(), s.resourceID, req).
			Return(blackoutID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var response resdto.CreateBlackoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(blackoutID, response.ID)
	})

	s.Run("success: list returns the stored blackouts", func() {
		views := []queries.BlackoutView{
			{ID: uuid.New(), Date: "2030-12-25", Recurring: true},
		}
		s.mockQueries.EXPECT().ListBlackouts(gomock.Any(), s.resourceID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.BlackoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("2030-12-25", response[0].Date)
	})

	s.Run("success: remove returns 204 No Content", func() {
		blackoutID := uuid.New()
		s.mockCommands.EXPECT().RemoveBlackout(gomock.Any(), s.resourceID, blackoutID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			fmt.Sprintf("%s/%s", url, blackoutID), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict for a duplicate date", func() {
		s.mockCommands.EXPECT().AddBlackout(gomock.Any(), s.resourceID, req).
			Return(uuid.Nil, availability.ErrDuplicateBlackout).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Blackout date already exists")
	})

	s.Run("error: 404 Not Found when removing an unknown blackout", func() {
		blackoutID := uuid.New()
		s.mockCommands.EXPECT().RemoveBlackout(gomock.Any(), s.resourceID, blackoutID).
			Return(commands.ErrBlackoutNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			fmt.Sprintf("%s/%s", url, blackoutID), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Blackout date not found")
	})
}
