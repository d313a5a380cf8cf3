package repository

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/metinatakli/seat-reservation/internal/domain"
)

type SeatLayout struct {
	Rows        []string
	SeatsPerRow int
	BookedRatio float64
}

func DefaultSeatLayout() SeatLayout {
	return SeatLayout{
		Rows:        []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		SeatsPerRow: 12,
		BookedRatio: 0.2,
	}
}

// RandomSeatRepository seeds a fresh seat map for every request, marking each
// seat booked with probability BookedRatio.
type RandomSeatRepository struct {
	layout SeatLayout

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSeatRepository(layout SeatLayout, rng *rand.Rand) *RandomSeatRepository {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &RandomSeatRepository{
		layout: layout,
		rng:    rng,
	}
}

func (r *RandomSeatRepository) GetSeatsByShowtime(ctx context.Context, showtimeID string) ([]domain.Seat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seats := make([]domain.Seat, 0, len(r.layout.Rows)*r.layout.SeatsPerRow)

	for _, row := range r.layout.Rows {
		for n := 1; n <= r.layout.SeatsPerRow; n++ {
			seats = append(seats, domain.Seat{
				ID:     fmt.Sprintf("%s-%s%d", showtimeID, row, n),
				Row:    row,
				Number: n,
				Booked: r.rng.Float64() < r.layout.BookedRatio,
			})
		}
	}

	return seats, nil
}
