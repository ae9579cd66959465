//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"booking-console/internal/domain/booking"
	"booking-console/internal/handler/api"
	resdto "booking-console/internal/handler/dto/response"
	"booking-console/internal/infra/platform"
	"booking-console/internal/pkg/config"
	"booking-console/internal/pkg/errs"
	"booking-console/internal/usecase"
	"booking-console/tests/common/httptest"
	usecasemock "booking-console/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockOwn   *usecasemock.MockBookingBoard
	mockAdmin *usecasemock.MockBookingBoard
	handler   *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOwn = usecasemock.NewMockBookingBoard(s.mockCtrl)
	s.mockAdmin = usecasemock.NewMockBookingBoard(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockOwn, s.mockAdmin, config.NewTestConfig())

	s.router.GET("/bookings", s.handler.MyBookings)
	s.router.POST("/bookings/:id/cancel", s.handler.CancelMine)
	s.router.GET("/admin/bookings", s.handler.AdminBookings)
	s.router.POST("/admin/bookings/:id/confirm", s.handler.AdminConfirm)
	s.router.POST("/admin/bookings/:id/cancel", s.handler.AdminCancel)
}

func (s *BookingHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func boardWith(views ...usecase.BookingView) usecase.BoardState {
	return usecase.BoardState{
		Services: []booking.Service{{ID: 5, Name: "Haircut"}},
		Bookings: views,
	}
}

func view(id int64, status booking.Status, canCancel bool, hint string) usecase.BookingView {
	return usecase.BookingView{
		Booking:     booking.Booking{ID: id, ServiceID: 5, AvailabilityID: id * 10, Status: status, OwnerUsername: "alice"},
		ServiceName: "Haircut",
		DateLabel:   "08-03-2026",
		TimeLabel:   "09:00 - 09:30",
		CanCancel:   canCancel,
		CancelHint:  hint,
		CanConfirm:  status == booking.StatusPending,
	}
}

func (s *BookingHandlerTestSuite) TestMyBookings() {
	s.Run("success: renders the own board without filters", func() {
		s.mockOwn.EXPECT().Load(gomock.Any(), booking.Filter{}).Return(nil).Times(1)
		s.mockOwn.EXPECT().State().Return(boardWith(view(1, booking.StatusConfirmed, false, "Past bookings cannot be cancelled"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil)

		var response resdto.BoardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.Filter)

		want := []resdto.BookingResponse{{
			ID:             1,
			ServiceID:      5,
			ServiceName:    "Haircut",
			AvailabilityID: 10,
			Status:         "CONFIRMED",
			OwnerUsername:  "alice",
			DateLabel:      "08-03-2026",
			TimeLabel:      "09:00 - 09:30",
			CancelHint:     "Past bookings cannot be cancelled",
		}}
		if diff := cmp.Diff(want, response.Bookings); diff != "" {
			s.T().Errorf("bookings mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: expired token sends the client to login", func() {
		s.mockOwn.EXPECT().Load(gomock.Any(), gomock.Any()).
			Return(&platform.Error{Status: http.StatusUnauthorized, Kind: errs.ErrUnauthorized}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil)
		httptest.AssertRedirect(s.T(), rec, "/login")
	})

	s.Run("error: unreachable service", func() {
		s.mockOwn.EXPECT().Load(gomock.Any(), gomock.Any()).
			Return(&platform.TransportError{Method: http.MethodGet, Path: "bookings/"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Network error")
	})
}

func (s *BookingHandlerTestSuite) TestCancelMine() {
	s.Run("success: cancels a listed booking", func() {
		gomock.InOrder(
			s.mockOwn.EXPECT().State().Return(boardWith(view(1, booking.StatusConfirmed, true, ""))),
			s.mockOwn.EXPECT().Cancel(gomock.Any(), int64(1)).Return(nil),
			s.mockOwn.EXPECT().State().Return(boardWith(view(1, booking.StatusCancelled, false, "Already cancelled"))),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/1/cancel", nil)

		var response resdto.BoardActionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking #1 cancelled.", response.Message)
		s.Equal("CANCELLED", response.Board.Bookings[0].Status)
	})

	s.Run("success: reloads an empty board first", func() {
		gomock.InOrder(
			s.mockOwn.EXPECT().State().Return(usecase.BoardState{}),
			s.mockOwn.EXPECT().Reload(gomock.Any()).Return(nil),
			s.mockOwn.EXPECT().Cancel(gomock.Any(), int64(7)).Return(nil),
			s.mockOwn.EXPECT().State().Return(boardWith()),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/7/cancel", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: past booking", func() {
		s.mockOwn.EXPECT().State().Return(boardWith(view(1, booking.StatusConfirmed, false, "Past bookings cannot be cancelled"))).Times(1)
		s.mockOwn.EXPECT().Cancel(gomock.Any(), int64(1)).
			Return(errs.NewLocalCause(errs.ErrValidationFailed, usecase.ErrBookingInPast, "Past bookings cannot be cancelled.")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/1/cancel", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Past bookings cannot be cancelled.")
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/abc/cancel", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id.")
	})
}

func (s *BookingHandlerTestSuite) TestAdminBookings() {
	s.Run("success: passes the parsed filter", func() {
		date, err := booking.ParseDate("2026-03-08")
		s.Require().NoError(err)
		filter := booking.Filter{ServiceID: 5, Status: booking.StatusPending, Date: date, Username: "bob"}

		state := boardWith(view(1, booking.StatusPending, true, ""))
		state.Filter = filter
		s.mockAdmin.EXPECT().Load(gomock.Any(), filter).Return(nil).Times(1)
		s.mockAdmin.EXPECT().State().Return(state).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?service=5&status=pending&date=2026-03-08&username=%20bob%20", nil)

		var response resdto.BoardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Filter)
		s.Equal(resdto.FilterResponse{Service: 5, Status: "PENDING", Date: "2026-03-08", Username: "bob"}, *response.Filter)
		s.True(response.Bookings[0].CanConfirm)
	})

	s.Run("error: rejects an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=LOST", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter.")
	})

	s.Run("error: rejects a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?date=08-03-2026", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter.")
	})
}

func (s *BookingHandlerTestSuite) TestAdminActions() {
	s.Run("success: confirm", func() {
		gomock.InOrder(
			s.mockAdmin.EXPECT().State().Return(boardWith(view(3, booking.StatusPending, true, ""))),
			s.mockAdmin.EXPECT().Confirm(gomock.Any(), int64(3)).Return(nil),
			s.mockAdmin.EXPECT().State().Return(boardWith(view(3, booking.StatusConfirmed, true, ""))),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/3/confirm", nil)

		var response resdto.BoardActionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking #3 confirmed.", response.Message)
		s.NotNil(response.Board.Filter)
	})

	s.Run("error: confirm of a non-pending booking", func() {
		s.mockAdmin.EXPECT().State().Return(boardWith(view(3, booking.StatusConfirmed, true, ""))).Times(1)
		s.mockAdmin.EXPECT().Confirm(gomock.Any(), int64(3)).
			Return(errs.NewLocalCause(errs.ErrValidationFailed, usecase.ErrBookingNotPending, "Only pending bookings can be confirmed.")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/3/confirm", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Only pending bookings can be confirmed.")
	})

	s.Run("error: server rejection uses its detail", func() {
		s.mockAdmin.EXPECT().State().Return(boardWith(view(3, booking.StatusConfirmed, true, ""))).Times(1)
		s.mockAdmin.EXPECT().Cancel(gomock.Any(), int64(3)).
			Return(&platform.Error{Status: http.StatusNotFound, Kind: errs.ErrValidationFailed, Detail: "Not found."}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/3/cancel", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Not found.")
	})
}
