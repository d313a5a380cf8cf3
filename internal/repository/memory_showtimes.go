package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/metinatakli/seat-reservation/internal/domain"
)

type MemoryShowtimeRepository struct {
	mu        sync.RWMutex
	showtimes []*domain.Showtime
}

func NewMemoryShowtimeRepository(showtimes []*domain.Showtime) *MemoryShowtimeRepository {
	return &MemoryShowtimeRepository{
		showtimes: showtimes,
	}
}

// GetByMovieId returns the showtimes of a movie ordered by start time.
func (m *MemoryShowtimeRepository) GetByMovieId(ctx context.Context, movieID string) ([]*domain.Showtime, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	showtimes := []*domain.Showtime{}

	for _, showtime := range m.showtimes {
		if showtime.MovieID == movieID {
			copied := *showtime
			showtimes = append(showtimes, &copied)
		}
	}

	sort.SliceStable(showtimes, func(i, j int) bool {
		return showtimes[i].StartTime.Before(showtimes[j].StartTime)
	})

	return showtimes, nil
}

func (m *MemoryShowtimeRepository) GetById(ctx context.Context, id string) (*domain.Showtime, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, showtime := range m.showtimes {
		if showtime.ID == id {
			copied := *showtime
			return &copied, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}
