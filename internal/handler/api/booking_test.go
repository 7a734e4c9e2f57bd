//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"ticketflo/internal/domain/booking"
	"ticketflo/internal/domain/user"
	"ticketflo/internal/handler/api"
	reqdto "ticketflo/internal/handler/dto/request"
	resdto "ticketflo/internal/handler/dto/response"
	"ticketflo/internal/pkg/errs"
	"ticketflo/internal/usecase/commands"
	"ticketflo/internal/usecase/queries"
	"ticketflo/tests/common/httptest"
	commandsmock "ticketflo/tests/mock/commands"
	queriesmock "ticketflo/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	actorID   uuid.UUID
	actorRole user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleViewer

	// Stand-in for the auth middleware: requests with an Authorization
	// header run as the suite's actor.
	authed := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.actorID)
			c.Set("user_role", s.actorRole)
		}
		c.Next()
	}

	s.router.POST("/bookings", authed, s.handler.Create)
	s.router.GET("/bookings", authed, s.handler.List)
	s.router.POST("/bookings/:id/cancel", authed, s.handler.Cancel)
	s.router.POST("/bookings/:id/complete", authed, s.handler.Complete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) createRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ResourceID: uuid.New(),
		Date:       "2030-06-17",
		SlotStart:  540,
		PartySize:  2,
	}
}

func (s *BookingHandlerTestSuite) bookingView(req reqdto.CreateBookingRequest) *queries.BookingView {
	now := time.Now().UTC()
	return &queries.BookingView{
		ID:           uuid.New(),
		ResourceID:   req.ResourceID,
		ResourceName: "Fairway Tee 1",
		UserID:       s.actorID,
		UserEmail:    "viewer@example.com",
		Date:         req.Date,
		SlotStart:    req.SlotStart,
		SlotEnd:      req.SlotStart + 10,
		PartySize:    req.PartySize,
		Status:       "confirmed",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *BookingHandlerTestSuite) postBooking(req reqdto.CreateBookingRequest, idempotencyKey string) *nethttptest.ResponseRecorder {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}
	return httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/bookings", req, headers, "test-token")
}

func (s *BookingHandlerTestSuite) TestCreate() {
	s.Run("success: returns 201 Created for a new booking", func() {
		req := s.createRequest()
		view := s.bookingView(req)
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), req, s.actorID, gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: false}, nil).Times(1)

		rec := s.postBooking(req, uuid.NewString())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("confirmed", response.Status)
	})

	s.Run("success: replayed request returns 200 OK with the original booking", func() {
		req := s.createRequest()
		view := s.bookingView(req)
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), req, s.actorID, gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil).Times(1)

		rec := s.postBooking(req, uuid.NewString())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 Bad Request when Idempotency-Key header is missing", func() {
		rec := s.postBooking(s.createRequest(), "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request when Idempotency-Key is not a UUID", func() {
		rec := s.postBooking(s.createRequest(), "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid idempotency key format")
	})

	s.Run("error: 401 Unauthorized without user context", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/bookings",
			s.createRequest(), map[string]string{"Idempotency-Key": uuid.NewString()}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: command sentinels map onto HTTP statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown resource", err: commands.ErrResourceNotFound, expectCode: http.StatusNotFound},
			{name: "unparseable date", err: commands.ErrInvalidDate, expectCode: http.StatusBadRequest},
			{name: "slot not bookable", err: errs.Mark(booking.ErrSlotUnavailable, commands.ErrSlotNotBookable), expectCode: http.StatusConflict},
			{name: "concurrent booking won", err: commands.ErrBookingConflict, expectCode: http.StatusConflict},
			{name: "key reused with different payload", err: commands.ErrDuplicateBooking, expectCode: http.StatusConflict},
			{name: "first request still processing", err: commands.ErrIdempotencyInProgress, expectCode: http.StatusConflict},
			{name: "domain validation failed", err: commands.ErrDomainValidation, expectCode: http.StatusUnprocessableEntity},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				req := s.createRequest()
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), req, s.actorID, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := s.postBooking(req, uuid.NewString())
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: returns items and the next cursor", func() {
		next := &queries.Cursor{After: "opaque-cursor"}
		items := []*queries.BookingListItem{
			{ID: uuid.New(), ResourceID: uuid.New(), ResourceName: "Fairway Tee 1", Date: "2030-06-17", SlotStart: 540, SlotEnd: 550, PartySize: 2, Status: "confirmed"},
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID, gomock.Nil(), 2).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=2", nil, "test-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Require().NotNil(response.NextCursor)
		s.Equal("opaque-cursor", *response.NextCursor)
	})

	s.Run("error: 400 Bad Request for non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=abc", nil, "test-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	bookingID := uuid.New()

	s.Run("success: cancel returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actorID, s.actorRole).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			fmt.Sprintf("/bookings/%s/cancel", bookingID), nil, "test-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: complete returns 204 No Content", func() {
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), bookingID, s.actorID, s.actorRole).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			fmt.Sprintf("/bookings/%s/complete", bookingID), nil, "test-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/nope/cancel", nil, "test-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: transition sentinels map onto HTTP statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "booking not found", err: commands.ErrBookingNotFound, expectCode: http.StatusNotFound},
			{name: "actor may not touch this booking", err: commands.ErrBookingAccess, expectCode: http.StatusForbidden},
			{name: "booking already terminal", err: commands.ErrDomainValidation, expectCode: http.StatusConflict},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actorID, s.actorRole).
					Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
					fmt.Sprintf("/bookings/%s/cancel", bookingID), nil, "test-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}
