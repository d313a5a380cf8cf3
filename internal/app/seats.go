package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/seat-reservation/api"
	"github.com/metinatakli/seat-reservation/internal/domain"
)

func (app *Application) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	seatID := chi.URLParam(r, "seatId")

	booking, err := app.loadBooking(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	outcome, err := booking.ToggleSeat(seatID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoShowtimeSelected):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatNotFound):
			logger.Warn("toggle requested for unknown seat", "seat_id", seatID, "showtime_id", booking.ShowtimeID())
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.metrics.recordToggle(r.Context(), string(outcome))

	if outcome.Changed() {
		app.saveBooking(r, booking)
	} else {
		logger.Info("seat toggle rejected", "seat_id", seatID, "outcome", outcome)
	}

	inventory := booking.Inventory()
	status, err := inventory.Status(seatID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ToggleSeatResponse{
		SeatId:          seatID,
		Outcome:         string(outcome),
		Status:          api.SeatStatus(status),
		SelectedSeats:   toSelectedSeats(inventory.Selected()),
		SelectedCount:   inventory.SelectedCount(),
		MaxSeatsReached: inventory.PartyFull(),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatRows(rows []domain.SeatRow) []api.SeatRow {
	seatRows := make([]api.SeatRow, len(rows))

	for i, row := range rows {
		seats := make([]api.Seat, len(row.Seats))
		for j, state := range row.Seats {
			seats[j] = toApiSeat(state.Seat, state.Status)
		}

		seatRows[i] = api.SeatRow{Row: row.Row, Seats: seats}
	}

	return seatRows
}

func toSelectedSeats(seats []domain.Seat) []api.Seat {
	selected := make([]api.Seat, len(seats))
	for i, seat := range seats {
		selected[i] = toApiSeat(seat, domain.SeatSelected)
	}
	return selected
}

func toApiSeat(seat domain.Seat, status domain.SeatStatus) api.Seat {
	return api.Seat{
		Id:     seat.ID,
		Row:    seat.Row,
		Number: seat.Number,
		Status: api.SeatStatus(status),
	}
}
