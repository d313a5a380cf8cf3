package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/metinatakli/seat-reservation/api"
	"github.com/metinatakli/seat-reservation/internal/domain"
)

const seatGapMessage = "Please don't leave a single empty seat between your seats"

func (app *Application) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := app.loadBooking(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp, err := app.toBookingResponse(r.Context(), booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SelectShowtime(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.SelectShowtimeRequest

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

	_, err = app.showtimeRepo.GetById(r.Context(), input.ShowtimeId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("showtime not found", "showtime_id", input.ShowtimeId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	seats, err := app.seatRepo.GetSeatsByShowtime(r.Context(), input.ShowtimeId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	booking, err := app.loadBooking(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = booking.SelectShowtime(input.ShowtimeId, seats)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.saveBooking(r, booking)

	logger.Info("showtime selected", "showtime_id", input.ShowtimeId, "seats", len(seats))

	resp, err := app.toBookingResponse(r.Context(), booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ResetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := app.loadBooking(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	booking.Reset()
	app.saveBooking(r, booking)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) ProceedToCheckout(w http.ResponseWriter, r *http.Request) {
	booking, err := app.loadBooking(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	valid, gapRows, err := booking.Proceed()
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoShowtimeSelected):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.metrics.recordArrangementCheck(r.Context(), valid)
	app.saveBooking(r, booking)

	resp := api.ProceedResponse{
		Valid:        valid,
		SeatGapAlert: booking.SeatGapAlert(),
		GapRows:      gapRows,
		Price:        toApiPrice(booking.Price()),
	}

	if !valid {
		resp.Message = seatGapMessage
		app.contextGetLogger(r).Info("seat arrangement rejected", "showtime_id", booking.ShowtimeID(), "rows", gapRows)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DismissSeatGapAlert(w http.ResponseWriter, r *http.Request) {
	booking, err := app.loadBooking(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if booking.SeatGapAlert() {
		booking.DismissSeatGapAlert()
		app.saveBooking(r, booking)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) GetPrice(w http.ResponseWriter, r *http.Request) {
	booking, err := app.loadBooking(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PriceResponse{
		Price: toApiPrice(booking.Price()),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) toBookingResponse(ctx context.Context, booking *domain.BookingSession) (api.BookingResponse, error) {
	resp := api.BookingResponse{
		SeatRows:      []api.SeatRow{},
		SelectedSeats: []api.Seat{},
		MaxSeats:      booking.MaxPartySize(),
		SeatGapAlert:  booking.SeatGapAlert(),
		Price:         toApiPrice(booking.Price()),
	}

	if !booking.HasShowtime() {
		return resp, nil
	}

	showtime, err := app.showtimeRepo.GetById(ctx, booking.ShowtimeID())
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return api.BookingResponse{}, err
	}

	if showtime != nil {
		apiShowtime := toApiShowtime(showtime)
		resp.Showtime = &apiShowtime
	}

	inventory := booking.Inventory()

	resp.SeatRows = toSeatRows(inventory.SeatMap())
	resp.SelectedSeats = toSelectedSeats(inventory.Selected())
	resp.SelectedCount = inventory.SelectedCount()
	resp.MaxSeatsReached = inventory.PartyFull()

	return resp, nil
}

func toApiPrice(price domain.PriceBreakdown) api.PriceBreakdown {
	return api.PriceBreakdown{
		TicketCount:      price.TicketCount,
		SubtotalTickets:  price.SubtotalTickets,
		ServiceFee:       price.ServiceFee,
		PreDiscountTotal: price.PreDiscountTotal,
		DiscountAmount:   price.DiscountAmount,
		FinalTotal:       price.FinalTotal,
		DiscountApplied:  price.DiscountApplied,
	}
}
