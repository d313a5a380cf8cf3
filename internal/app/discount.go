package app

import (
	"net/http"

	"github.com/metinatakli/seat-reservation/api"
	"github.com/metinatakli/seat-reservation/internal/domain"
)

func (app *Application) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	var input api.ApplyDiscountRequest

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

	if !booking.HasShowtime() {
		app.badRequestResponse(w, r, domain.ErrNoShowtimeSelected)
		return
	}

	result := booking.ApplyDiscountCode(input.Code)

	app.metrics.recordDiscount(r.Context(), string(result))

	resp := api.ApplyDiscountResponse{
		Result:          string(result),
		Status:          api.DiscountError,
		Message:         result.Message(),
		DiscountApplied: booking.DiscountApplied(),
		Price:           toApiPrice(booking.Price()),
	}

	if result.Accepted() {
		resp.Status = api.DiscountSuccess
		app.saveBooking(r, booking)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
