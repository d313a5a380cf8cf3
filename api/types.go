// Package api holds the JSON request and response bodies of the HTTP API.
package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type GetMoviesParams struct {
	Term      string  `json:"term" validate:"max=100"`
	Genre     string  `json:"genre" validate:"max=50"`
	MinRating float64 `json:"minRating" validate:"gte=0,lte=10,ltefield=MaxRating"`
	MaxRating float64 `json:"maxRating" validate:"gte=0,lte=10"`
}

type Movie struct {
	Id       string  `json:"id"`
	Title    string  `json:"title"`
	Genre    string  `json:"genre"`
	Rating   float64 `json:"rating"`
	Duration string  `json:"duration"`
	ImageUrl string  `json:"imageUrl"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type MovieResponse struct {
	Movie Movie `json:"movie"`
}

type Showtime struct {
	Id             string    `json:"id"`
	MovieId        string    `json:"movieId"`
	Theater        string    `json:"theater"`
	StartTime      time.Time `json:"startTime"`
	AvailableSeats int       `json:"availableSeats"`
	TotalSeats     int       `json:"totalSeats"`
}

type ShowtimeListResponse struct {
	MovieId   string     `json:"movieId"`
	Showtimes []Showtime `json:"showtimes"`
}

type SeatStatus string

const (
	Available SeatStatus = "available"
	Selected  SeatStatus = "selected"
	Booked    SeatStatus = "booked"
)

type Seat struct {
	Id     string     `json:"id"`
	Row    string     `json:"row"`
	Number int        `json:"number"`
	Status SeatStatus `json:"status"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type PriceBreakdown struct {
	TicketCount      int             `json:"ticketCount"`
	SubtotalTickets  decimal.Decimal `json:"subtotalTickets"`
	ServiceFee       decimal.Decimal `json:"serviceFee"`
	PreDiscountTotal decimal.Decimal `json:"preDiscountTotal"`
	DiscountAmount   decimal.Decimal `json:"discountAmount"`
	FinalTotal       decimal.Decimal `json:"finalTotal"`
	DiscountApplied  bool            `json:"discountApplied"`
}

type SelectShowtimeRequest struct {
	ShowtimeId string `json:"showtimeId" validate:"required,max=64"`
}

type BookingResponse struct {
	Showtime        *Showtime      `json:"showtime"`
	SeatRows        []SeatRow      `json:"seatRows"`
	SelectedSeats   []Seat         `json:"selectedSeats"`
	SelectedCount   int            `json:"selectedCount"`
	MaxSeats        int            `json:"maxSeats"`
	MaxSeatsReached bool           `json:"maxSeatsReached"`
	SeatGapAlert    bool           `json:"seatGapAlert"`
	Price           PriceBreakdown `json:"price"`
}

type ToggleSeatResponse struct {
	SeatId          string     `json:"seatId"`
	Outcome         string     `json:"outcome"`
	Status          SeatStatus `json:"status"`
	SelectedSeats   []Seat     `json:"selectedSeats"`
	SelectedCount   int        `json:"selectedCount"`
	MaxSeatsReached bool       `json:"maxSeatsReached"`
}

type ProceedResponse struct {
	Valid        bool           `json:"valid"`
	SeatGapAlert bool           `json:"seatGapAlert"`
	GapRows      []string       `json:"gapRows,omitempty"`
	Message      string         `json:"message,omitempty"`
	Price        PriceBreakdown `json:"price"`
}

type PriceResponse struct {
	Price PriceBreakdown `json:"price"`
}

type ApplyDiscountRequest struct {
	Code string `json:"code" validate:"max=64"`
}

type DiscountStatus string

const (
	DiscountSuccess DiscountStatus = "success"
	DiscountError   DiscountStatus = "error"
)

type ApplyDiscountResponse struct {
	Result          string         `json:"result"`
	Status          DiscountStatus `json:"status"`
	Message         string         `json:"message"`
	DiscountApplied bool           `json:"discountApplied"`
	Price           PriceBreakdown `json:"price"`
}

type CheckoutRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,fullname,max=100"`
}

type ReservationResponse struct {
	ReservationId uuid.UUID      `json:"reservationId"`
	MovieTitle    string         `json:"movieTitle,omitempty"`
	Theater       string         `json:"theater,omitempty"`
	StartTime     *time.Time     `json:"startTime,omitempty"`
	ShowtimeId    string         `json:"showtimeId"`
	Seats         []string       `json:"seats"`
	Email         string         `json:"email"`
	FullName      string         `json:"fullName"`
	Price         PriceBreakdown `json:"price"`
	ConfirmedAt   time.Time      `json:"confirmedAt"`
}
