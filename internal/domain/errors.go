package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrSeatNotFound        = errors.New("seat not found for the current showtime")
	ErrInvalidSeatMap      = errors.New("invalid seat map")
	ErrNoShowtimeSelected  = errors.New("no showtime has been selected")
	ErrNoSeatsSelected     = errors.New("at least one seat must be selected")
	ErrSeatGap             = errors.New("the selected seats leave a single empty seat between occupied seats")
	ErrInvalidBookingState = errors.New("booking state is inconsistent")
	ErrInvalidPricing      = errors.New("invalid pricing configuration")
)
