package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/seat-reservation/api"
	"github.com/metinatakli/seat-reservation/internal/domain"
)

func (app *Application) Checkout(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CheckoutRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	booking, err := app.loadBooking(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	reservation, err := booking.Checkout(input.Email, input.FullName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoShowtimeSelected), errors.Is(err, domain.ErrNoSeatsSelected):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatGap):
			app.saveBooking(r, booking)
			logger.Warn("checkout rejected due to seat gap", "showtime_id", booking.ShowtimeID())
			app.editConflictResponseWithErr(w, r, errors.New(seatGapMessage))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.ReservationResponse{
		ReservationId: reservation.ID,
		ShowtimeId:    reservation.ShowtimeID,
		Seats:         reservation.SeatLabels(),
		Email:         reservation.Email,
		FullName:      reservation.FullName,
		Price:         toApiPrice(reservation.Price),
		ConfirmedAt:   reservation.ConfirmedAt,
	}

	err = app.describeShowtime(r, reservation.ShowtimeID, &resp)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.metrics.recordCheckout(r.Context(), reservation.Price.TicketCount, reservation.Price.DiscountApplied)

	logger.Info("reservation confirmed",
		"reservation_id", reservation.ID,
		"showtime_id", reservation.ShowtimeID,
		"seats", resp.Seats,
		"total", reservation.Price.FinalTotal.String(),
	)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// describeShowtime fills in the movie and theater details of a reservation
// summary. Missing catalog entries leave the fields empty.
func (app *Application) describeShowtime(r *http.Request, showtimeID string, resp *api.ReservationResponse) error {
	showtime, err := app.showtimeRepo.GetById(r.Context(), showtimeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	resp.Theater = showtime.Theater
	startTime := showtime.StartTime
	resp.StartTime = &startTime

	movie, err := app.movieRepo.GetById(r.Context(), showtime.MovieID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	resp.MovieTitle = movie.Title

	return nil
}
