//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"washdesk/internal/domain/booking"
	"washdesk/internal/handler/api"
	reqdto "washdesk/internal/handler/dto/request"
	resdto "washdesk/internal/handler/dto/response"
	"washdesk/internal/pkg/errs"
	"washdesk/internal/usecase/commands"
	"washdesk/internal/usecase/queries"
	"washdesk/tests/common/builder"
	"washdesk/tests/common/httptest"
	"washdesk/tests/common/testutil"
	commandsmock "washdesk/tests/mock/commands"
	queriesmock "washdesk/tests/mock/queries"

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
	actorID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Stand-in for the auth middleware.
	s.router.POST("/bookings", func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		s.handler.Create(c)
	})
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.PUT("/bookings/:id", s.handler.Update)
	s.router.DELETE("/bookings/:id", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with the stored view", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.actorID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Number, response.BookingNumber)
		s.Equal(returnView.EndsAt, response.EndsAt)
	})

	s.Run("error: 409 Conflict names the blocking window", func() {
		slot, err := b.BuildSlot()
		s.Require().NoError(err)

		blockingID := uuid.New()
		conflict := &commands.SlotConflictError{
			ZoneID:    b.ZoneID,
			BookingID: blockingID,
			Window:    slot.String(),
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.actorID).
			Return(nil, errs.Mark(conflict, commands.ErrBookingConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
		s.Contains(rec.Body.String(), blockingID.String())
		s.Contains(rec.Body.String(), slot.String())
	})

	s.Run("error: 422 when the zone is inactive", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.actorID).
			Return(nil, commands.ErrZoneInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not active")
	})

	s.Run("error: 404 when the zone does not exist", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.actorID).
			Return(nil, commands.ErrZoneNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Zone not found")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing customer_id", mutate: testutil.Field("customer_id", nil)},
			{name: "missing zone_id", mutate: testutil.Field("zone_id", nil)},
			{name: "missing starts_at", mutate: testutil.Field("starts_at", nil)},
			{name: "empty product list", mutate: testutil.Field("product_ids", []any{})},
			{name: "zero duration", mutate: testutil.Field("duration_minutes", 0)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(http.StatusBadRequest, rec.Code, "body: %s", rec.Body.String())
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(string(booking.StatusPending), response.Status)
	})

	s.Run("error: 404 for an unknown booking", func() {
		unknown := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), unknown).Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+unknown.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestUpdate() {
	b := builder.NewBookingBuilder()
	view := b.BuildView()
	url := "/bookings/" + view.ID.String()

	newStart := b.StartsAt.Add(30 * time.Minute)
	reqBody := reqdto.UpdateBookingRequest{StartsAt: &newStart}

	s.Run("success: returns 200 OK with the rescheduled view", func() {
		moved := *view
		moved.StartsAt = newStart
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody).
			Return(&moved, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(newStart, response.StartsAt)
	})

	s.Run("error: 409 Conflict when the new window is taken", func() {
		slot, err := b.BuildSlot()
		s.Require().NoError(err)

		blockingID := uuid.New()
		conflict := &commands.SlotConflictError{
			ZoneID:    b.ZoneID,
			BookingID: blockingID,
			Window:    slot.String(),
		}
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody).
			Return(nil, errs.Mark(conflict, commands.ErrBookingConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
		s.Contains(rec.Body.String(), blockingID.String())
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/not-a-uuid", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 when the booking is already terminal", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).
			Return(errs.Mark(errors.New("booking is in a terminal state"), commands.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}
