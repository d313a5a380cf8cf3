package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/seat-reservation/internal/domain"
)

type sessionKey string

const (
	SessionKeyBooking = sessionKey("booking")
)

func (s sessionKey) String() string {
	return string(s)
}

// loadBooking restores the booking kept in the caller's session. A visitor
// without one gets a fresh booking. A snapshot that no longer fits the current
// configuration, e.g. after max-seats was lowered, is discarded.
func (app *Application) loadBooking(r *http.Request) (*domain.BookingSession, error) {
	maxSeats := app.config.Booking.MaxSeats

	state, ok := app.sessionManager.Get(r.Context(), SessionKeyBooking.String()).(domain.BookingState)
	if !ok {
		return domain.NewBookingSession(app.pricing, maxSeats), nil
	}

	booking, err := domain.RestoreBookingSession(state, app.pricing, maxSeats)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidBookingState) {
			return nil, err
		}

		app.contextGetLogger(r).Warn("discarding stale booking session", "error", err)
		app.sessionManager.Remove(r.Context(), SessionKeyBooking.String())

		return domain.NewBookingSession(app.pricing, maxSeats), nil
	}

	return booking, nil
}

func (app *Application) saveBooking(r *http.Request, booking *domain.BookingSession) {
	app.sessionManager.Put(r.Context(), SessionKeyBooking.String(), booking.State())
}
