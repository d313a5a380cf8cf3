package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingSession is the state of one user's booking flow for a single
// showtime: the seat inventory, whether a discount has been applied and
// whether the seat-gap alert is raised. It is owned by the caller; nothing
// in it is shared between sessions.
type BookingSession struct {
	pricing      *PricingEngine
	maxPartySize int

	showtimeID      string
	inventory       *SeatInventory
	discountApplied bool
	seatGapAlert    bool
}

func NewBookingSession(pricing *PricingEngine, maxPartySize int) *BookingSession {
	if maxPartySize <= 0 {
		maxPartySize = MaxPartySize
	}

	return &BookingSession{
		pricing:      pricing,
		maxPartySize: maxPartySize,
	}
}

// SelectShowtime reseeds the session with the seats of a new showtime. Any
// previous selection, discount and alert are dropped.
func (b *BookingSession) SelectShowtime(showtimeID string, seats []Seat) error {
	inventory, err := NewSeatInventory(seats, b.maxPartySize)
	if err != nil {
		return err
	}

	b.showtimeID = showtimeID
	b.inventory = inventory
	b.discountApplied = false
	b.seatGapAlert = false

	return nil
}

// Reset clears the showtime and everything tied to it.
func (b *BookingSession) Reset() {
	b.showtimeID = ""
	b.inventory = nil
	b.discountApplied = false
	b.seatGapAlert = false
}

func (b *BookingSession) ShowtimeID() string {
	return b.showtimeID
}

func (b *BookingSession) HasShowtime() bool {
	return b.inventory != nil
}

// Inventory returns the seat inventory of the active showtime, or nil.
func (b *BookingSession) Inventory() *SeatInventory {
	return b.inventory
}

func (b *BookingSession) MaxPartySize() int {
	return b.maxPartySize
}

func (b *BookingSession) DiscountApplied() bool {
	return b.discountApplied
}

func (b *BookingSession) SeatGapAlert() bool {
	return b.seatGapAlert
}

func (b *BookingSession) DismissSeatGapAlert() {
	b.seatGapAlert = false
}

func (b *BookingSession) SelectedCount() int {
	if b.inventory == nil {
		return 0
	}
	return b.inventory.SelectedCount()
}

func (b *BookingSession) ToggleSeat(seatID string) (ToggleOutcome, error) {
	if b.inventory == nil {
		return "", ErrNoShowtimeSelected
	}

	return b.inventory.Toggle(seatID)
}

// Proceed validates the seating arrangement and raises the seat-gap alert
// when it is not acceptable. It returns the rows that failed.
func (b *BookingSession) Proceed() (bool, []string, error) {
	if b.inventory == nil {
		return false, nil, ErrNoShowtimeSelected
	}

	gapRows := b.inventory.OrphanGapRows()
	if len(gapRows) > 0 {
		b.seatGapAlert = true
		return false, gapRows, nil
	}

	return true, nil, nil
}

// ApplyDiscountCode evaluates code against the current selection. Once a code
// is accepted the discount stays applied until the session is reseeded or
// reset, even if the selection changes afterwards.
func (b *BookingSession) ApplyDiscountCode(code string) DiscountResult {
	result := b.pricing.EvaluateDiscountCode(code, b.SelectedCount())
	if result.Accepted() {
		b.discountApplied = true
	}

	return result
}

func (b *BookingSession) Price() PriceBreakdown {
	return b.pricing.ComputeBreakdown(b.SelectedCount(), b.discountApplied)
}

type Reservation struct {
	ID          uuid.UUID
	ShowtimeID  string
	Seats       []Seat
	Price       PriceBreakdown
	Email       string
	FullName    string
	ConfirmedAt time.Time
}

func (r Reservation) SeatLabels() []string {
	labels := make([]string, len(r.Seats))
	for i, seat := range r.Seats {
		labels[i] = seat.Label()
	}
	return labels
}

// Checkout turns the current selection into a confirmed reservation summary.
// The session itself is left untouched.
func (b *BookingSession) Checkout(email, fullName string) (*Reservation, error) {
	if b.inventory == nil {
		return nil, ErrNoShowtimeSelected
	}

	if b.inventory.SelectedCount() == 0 {
		return nil, ErrNoSeatsSelected
	}

	if !b.inventory.ValidateArrangement() {
		b.seatGapAlert = true
		return nil, ErrSeatGap
	}

	return &Reservation{
		ID:          uuid.New(),
		ShowtimeID:  b.showtimeID,
		Seats:       b.inventory.Selected(),
		Price:       b.Price(),
		Email:       email,
		FullName:    fullName,
		ConfirmedAt: time.Now().UTC(),
	}, nil
}

// BookingState is a plain snapshot of a BookingSession, suitable for storing
// in a session store.
type BookingState struct {
	ShowtimeID      string
	Seats           []Seat
	SelectedSeatIDs []string
	DiscountApplied bool
	SeatGapAlert    bool
}

func (b *BookingSession) State() BookingState {
	state := BookingState{
		ShowtimeID:      b.showtimeID,
		DiscountApplied: b.discountApplied,
		SeatGapAlert:    b.seatGapAlert,
	}

	if b.inventory != nil {
		state.Seats = make([]Seat, len(b.inventory.seats))
		copy(state.Seats, b.inventory.seats)
		state.SelectedSeatIDs = b.inventory.SelectedIDs()
	}

	return state
}

// RestoreBookingSession rebuilds a session from a snapshot, re-checking every
// inventory invariant on the way.
func RestoreBookingSession(state BookingState, pricing *PricingEngine, maxPartySize int) (*BookingSession, error) {
	b := NewBookingSession(pricing, maxPartySize)

	if state.ShowtimeID == "" {
		if len(state.Seats) > 0 || len(state.SelectedSeatIDs) > 0 {
			return nil, fmt.Errorf("%w: seats present without a showtime", ErrInvalidBookingState)
		}
		return b, nil
	}

	err := b.SelectShowtime(state.ShowtimeID, state.Seats)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBookingState, err)
	}

	if len(state.SelectedSeatIDs) > b.maxPartySize {
		return nil, fmt.Errorf("%w: %d seats selected, limit is %d",
			ErrInvalidBookingState, len(state.SelectedSeatIDs), b.maxPartySize)
	}

	for _, id := range state.SelectedSeatIDs {
		outcome, err := b.inventory.Toggle(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBookingState, err)
		}

		if outcome != ToggleSelected {
			return nil, fmt.Errorf("%w: seat %s cannot be selected (%s)", ErrInvalidBookingState, id, outcome)
		}
	}

	b.discountApplied = state.DiscountApplied
	b.seatGapAlert = state.SeatGapAlert

	return b, nil
}
