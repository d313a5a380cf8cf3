package domain

import (
	"context"
	"fmt"
	"sort"
)

// MaxPartySize is the default upper bound on the number of seats a single
// booking may hold.
const MaxPartySize = 6

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatSelected  SeatStatus = "selected"
	SeatBooked    SeatStatus = "booked"
)

// Seat is a physical seat of a showtime as seeded by a SeatRepository.
// Booked is fixed at seed time; whether a seat is selected is tracked by the
// owning SeatInventory, never on the seat itself.
type Seat struct {
	ID     string
	Row    string
	Number int
	Booked bool
}

func (s Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Number)
}

type SeatState struct {
	Seat
	Status SeatStatus
}

type SeatRow struct {
	Row   string
	Seats []SeatState
}

type ToggleOutcome string

const (
	ToggleSelected          ToggleOutcome = "selected"
	ToggleDeselected        ToggleOutcome = "deselected"
	ToggleRejectedBooked    ToggleOutcome = "rejected_booked"
	ToggleRejectedPartyFull ToggleOutcome = "rejected_party_full"
)

// Changed reports whether the toggle mutated the selection.
func (o ToggleOutcome) Changed() bool {
	return o == ToggleSelected || o == ToggleDeselected
}

type SeatRepository interface {
	GetSeatsByShowtime(ctx context.Context, showtimeID string) ([]Seat, error)
}

// SeatInventory owns every seat of the active showtime together with the
// current selection. Seats are kept sorted by (row, number).
type SeatInventory struct {
	seats        []Seat
	byID         map[string]int
	selected     []string
	maxPartySize int
}

// NewSeatInventory validates and sorts the seed seats. A non-positive
// maxPartySize falls back to MaxPartySize.
func NewSeatInventory(seats []Seat, maxPartySize int) (*SeatInventory, error) {
	if maxPartySize <= 0 {
		maxPartySize = MaxPartySize
	}

	sorted := make([]Seat, len(seats))
	copy(sorted, seats)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Number < sorted[j].Number
	})

	byID := make(map[string]int, len(sorted))
	type position struct {
		row    string
		number int
	}
	positions := make(map[position]bool, len(sorted))

	for i, seat := range sorted {
		if seat.ID == "" {
			return nil, fmt.Errorf("%w: seat at row %q number %d has no id", ErrInvalidSeatMap, seat.Row, seat.Number)
		}
		if seat.Row == "" || seat.Number < 1 {
			return nil, fmt.Errorf("%w: seat %s has an invalid position", ErrInvalidSeatMap, seat.ID)
		}
		if _, ok := byID[seat.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate seat id %s", ErrInvalidSeatMap, seat.ID)
		}

		pos := position{row: seat.Row, number: seat.Number}
		if positions[pos] {
			return nil, fmt.Errorf("%w: duplicate seat position %s", ErrInvalidSeatMap, seat.Label())
		}

		positions[pos] = true
		byID[seat.ID] = i
	}

	return &SeatInventory{
		seats:        sorted,
		byID:         byID,
		maxPartySize: maxPartySize,
	}, nil
}

func (inv *SeatInventory) MaxPartySize() int {
	return inv.maxPartySize
}

func (inv *SeatInventory) SelectedCount() int {
	return len(inv.selected)
}

func (inv *SeatInventory) PartyFull() bool {
	return len(inv.selected) >= inv.maxPartySize
}

func (inv *SeatInventory) isSelected(id string) bool {
	for _, v := range inv.selected {
		if v == id {
			return true
		}
	}
	return false
}

func (inv *SeatInventory) statusOf(seat Seat) SeatStatus {
	switch {
	case seat.Booked:
		return SeatBooked
	case inv.isSelected(seat.ID):
		return SeatSelected
	default:
		return SeatAvailable
	}
}

// Status returns the derived status of the seat with the given id.
func (inv *SeatInventory) Status(seatID string) (SeatStatus, error) {
	i, ok := inv.byID[seatID]
	if !ok {
		return "", ErrSeatNotFound
	}

	return inv.statusOf(inv.seats[i]), nil
}

// Toggle flips a seat between available and selected. Booked seats and
// selections beyond the party size are rejected without touching any state;
// only an unknown seat id is reported as an error.
func (inv *SeatInventory) Toggle(seatID string) (ToggleOutcome, error) {
	i, ok := inv.byID[seatID]
	if !ok {
		return "", ErrSeatNotFound
	}

	seat := inv.seats[i]

	switch inv.statusOf(seat) {
	case SeatBooked:
		return ToggleRejectedBooked, nil
	case SeatSelected:
		inv.deselect(seatID)
		return ToggleDeselected, nil
	}

	if inv.PartyFull() {
		return ToggleRejectedPartyFull, nil
	}

	inv.selected = append(inv.selected, seatID)

	return ToggleSelected, nil
}

func (inv *SeatInventory) deselect(seatID string) {
	kept := inv.selected[:0]
	for _, id := range inv.selected {
		if id != seatID {
			kept = append(kept, id)
		}
	}
	inv.selected = kept
}

// ClearSelection drops every selected seat.
func (inv *SeatInventory) ClearSelection() {
	inv.selected = nil
}

// Selected returns the selected seats in the order they were picked.
func (inv *SeatInventory) Selected() []Seat {
	seats := make([]Seat, len(inv.selected))
	for i, id := range inv.selected {
		seats[i] = inv.seats[inv.byID[id]]
	}
	return seats
}

func (inv *SeatInventory) SelectedIDs() []string {
	ids := make([]string, len(inv.selected))
	copy(ids, inv.selected)
	return ids
}

// Seats returns every seat with its derived status, ordered by row and number.
func (inv *SeatInventory) Seats() []SeatState {
	states := make([]SeatState, len(inv.seats))
	for i, seat := range inv.seats {
		states[i] = SeatState{Seat: seat, Status: inv.statusOf(seat)}
	}
	return states
}

// SeatMap groups Seats() by row.
func (inv *SeatInventory) SeatMap() []SeatRow {
	var rows []SeatRow

	for _, state := range inv.Seats() {
		if len(rows) == 0 || rows[len(rows)-1].Row != state.Row {
			rows = append(rows, SeatRow{Row: state.Row})
		}

		last := &rows[len(rows)-1]
		last.Seats = append(last.Seats, state)
	}

	return rows
}

// ValidateArrangement reports whether the current selection leaves no single
// available seat stranded between two occupied seats of the same row.
func (inv *SeatInventory) ValidateArrangement() bool {
	return len(inv.OrphanGapRows()) == 0
}

// OrphanGapRows returns the rows in which the selection leaves an orphan gap.
// Only rows holding at least one selected seat are inspected, and a selection
// of zero or one seat is always acceptable.
func (inv *SeatInventory) OrphanGapRows() []string {
	if len(inv.selected) <= 1 {
		return nil
	}

	var rowsToCheck []string
	seen := make(map[string]bool)

	for _, seat := range inv.Selected() {
		if !seen[seat.Row] {
			seen[seat.Row] = true
			rowsToCheck = append(rowsToCheck, seat.Row)
		}
	}

	sort.Strings(rowsToCheck)

	var gapRows []string

	for _, row := range rowsToCheck {
		if hasOrphanGap(inv.occupancy(row)) {
			gapRows = append(gapRows, row)
		}
	}

	return gapRows
}

// occupancy returns, for the seats of row in ascending number order, whether
// each one is selected or booked.
func (inv *SeatInventory) occupancy(row string) []bool {
	var occupied []bool

	for _, seat := range inv.seats {
		if seat.Row != row {
			continue
		}

		status := inv.statusOf(seat)
		occupied = append(occupied, status == SeatSelected || status == SeatBooked)
	}

	return occupied
}

// hasOrphanGap partitions occupied positions into maximal runs and looks for
// two consecutive occupied positions exactly two apart, i.e. one free seat
// between the end of one run and the start of the next. Positions are list
// indices, not seat numbers.
func hasOrphanGap(occupied []bool) bool {
	var (
		runs    [][]int
		current []int
	)

	for i, taken := range occupied {
		if taken {
			current = append(current, i)
			continue
		}

		if len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}
	}

	if len(current) > 0 {
		runs = append(runs, current)
	}

	var indices []int
	for _, run := range runs {
		indices = append(indices, run...)
	}

	for i := 0; i < len(indices)-1; i++ {
		if indices[i+1]-indices[i] == 2 {
			return true
		}
	}

	return false
}
