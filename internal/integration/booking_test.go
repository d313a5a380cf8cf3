package integration_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/metinatakli/seat-reservation/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BookingTestSuite struct {
	BaseSuite
}

func TestBookingSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(BookingTestSuite))
}

func (s *BookingTestSuite) url(path string) string {
	return s.server.URL + path
}

func (s *BookingTestSuite) TestFullBookingFlow() {
	client := s.newClient()
	t := s.T()

	var booking api.BookingResponse
	status := doJSON(t, client, http.MethodPut, s.url("/booking/showtime"), api.SelectShowtimeRequest{ShowtimeId: "3"}, &booking)
	s.Require().Equal(http.StatusOK, status)
	s.Require().Len(booking.SeatRows, 8)
	s.Len(booking.SeatRows[0].Seats, 12)

	for _, seat := range []string{"3-C5", "3-C7"} {
		var toggle api.ToggleSeatResponse
		status = doJSON(t, client, http.MethodPost, s.url("/booking/seats/"+seat+"/toggle"), nil, &toggle)
		s.Require().Equal(http.StatusOK, status)
		s.Equal("selected", toggle.Outcome)
	}

	var proceed api.ProceedResponse
	status = doJSON(t, client, http.MethodPost, s.url("/booking/proceed"), nil, &proceed)
	s.Require().Equal(http.StatusOK, status)
	s.False(proceed.Valid)
	s.Equal([]string{"C"}, proceed.GapRows)

	status = doJSON(t, client, http.MethodDelete, s.url("/booking/seat-gap-alert"), nil, nil)
	s.Equal(http.StatusNoContent, status)

	status = doJSON(t, client, http.MethodPost, s.url("/booking/seats/3-C6/toggle"), nil, nil)
	s.Require().Equal(http.StatusOK, status)
	status = doJSON(t, client, http.MethodPost, s.url("/booking/seats/3-C8/toggle"), nil, nil)
	s.Require().Equal(http.StatusOK, status)

	var discount api.ApplyDiscountResponse
	status = doJSON(t, client, http.MethodPost, s.url("/booking/discount"), api.ApplyDiscountRequest{Code: "ONEPLUSONE"}, &discount)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(api.DiscountSuccess, discount.Status)
	s.True(discount.Price.FinalTotal.Equal(decimal.NewFromInt(27)), "got %s", discount.Price.FinalTotal)

	var reservation api.ReservationResponse
	status = doJSON(t, client, http.MethodPost, s.url("/booking/checkout"),
		api.CheckoutRequest{Email: "jane@example.com", FullName: "Jane Doe"}, &reservation)
	s.Require().Equal(http.StatusOK, status)
	s.Equal("The Dark Knight", reservation.MovieTitle)
	s.Equal("Cinema City - IMAX", reservation.Theater)
	s.Equal([]string{"C5", "C7", "C6", "C8"}, reservation.Seats)
	s.True(reservation.Price.DiscountApplied)

	keys, err := s.app.Redis.Keys(context.Background(), "scs:session:*").Result()
	s.Require().NoError(err)
	s.NotEmpty(keys, "booking state must live in redis")
}

func (s *BookingTestSuite) TestSessionsAreIsolated() {
	alice := s.newClient()
	bob := s.newClient()
	t := s.T()

	status := doJSON(t, alice, http.MethodPut, s.url("/booking/showtime"), api.SelectShowtimeRequest{ShowtimeId: "1"}, nil)
	s.Require().Equal(http.StatusOK, status)

	status = doJSON(t, alice, http.MethodPost, s.url("/booking/seats/1-A1/toggle"), nil, nil)
	s.Require().Equal(http.StatusOK, status)

	var booking api.BookingResponse
	status = doJSON(t, bob, http.MethodGet, s.url("/booking"), nil, &booking)
	s.Require().Equal(http.StatusOK, status)
	s.Nil(booking.Showtime)
	s.Zero(booking.SelectedCount)

	status = doJSON(t, alice, http.MethodGet, s.url("/booking"), nil, &booking)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(1, booking.SelectedCount)

	status = doJSON(t, alice, http.MethodDelete, s.url("/booking"), nil, nil)
	s.Equal(http.StatusNoContent, status)

	booking = api.BookingResponse{}
	status = doJSON(t, alice, http.MethodGet, s.url("/booking"), nil, &booking)
	s.Require().Equal(http.StatusOK, status)
	s.Nil(booking.Showtime)
}
