package repository

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/seat-reservation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMovieRepository_GetAll(t *testing.T) {
	repo := NewMemoryMovieRepository(SeedMovies())

	tests := []struct {
		name    string
		filters domain.MovieFilters
		wantIDs []string
	}{
		{
			name:    "all movies within the full rating range",
			filters: domain.MovieFilters{MinRating: 0, MaxRating: 10},
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "by genre",
			filters: domain.MovieFilters{Genre: "Sci-Fi", MaxRating: 10},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "by term",
			filters: domain.MovieFilters{Term: "the", MaxRating: 10},
			wantIDs: []string{"2", "4"},
		},
		{
			name:    "by rating",
			filters: domain.MovieFilters{MinRating: 9, MaxRating: 10},
			wantIDs: []string{"2", "4"},
		},
		{
			name:    "no match",
			filters: domain.MovieFilters{Term: "matrix", MaxRating: 10},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies, err := repo.GetAll(context.Background(), tt.filters)
			require.NoError(t, err)

			ids := []string{}
			for _, m := range movies {
				ids = append(ids, m.ID)
			}

			if diff := cmp.Diff(tt.wantIDs, ids); diff != "" {
				t.Errorf("movie ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMemoryMovieRepository_GetById(t *testing.T) {
	repo := NewMemoryMovieRepository(SeedMovies())

	movie, err := repo.GetById(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Interstellar", movie.Title)

	movie.Title = "changed"
	again, err := repo.GetById(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Interstellar", again.Title, "callers must not be able to mutate the catalog")

	_, err = repo.GetById(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestMemoryShowtimeRepository(t *testing.T) {
	day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryShowtimeRepository(SeedShowtimes(day))

	showtimes, err := repo.GetByMovieId(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, showtimes, 2)
	assert.Equal(t, "1", showtimes[0].ID)
	assert.Equal(t, time.Date(2024, 3, 20, 14, 30, 0, 0, time.UTC), showtimes[0].StartTime)

	showtimes, err = repo.GetByMovieId(context.Background(), "4")
	require.NoError(t, err)
	assert.Empty(t, showtimes)

	showtime, err := repo.GetById(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Cinema City - IMAX", showtime.Theater)

	_, err = repo.GetById(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestRandomSeatRepository(t *testing.T) {
	t.Run("generates the full layout", func(t *testing.T) {
		repo := NewRandomSeatRepository(DefaultSeatLayout(), rand.New(rand.NewPCG(1, 2)))

		seats, err := repo.GetSeatsByShowtime(context.Background(), "4")
		require.NoError(t, err)
		require.Len(t, seats, 96)

		assert.Equal(t, domain.Seat{ID: "4-A1", Row: "A", Number: 1, Booked: seats[0].Booked}, seats[0])
		assert.Equal(t, "4-H12", seats[95].ID)

		_, err = domain.NewSeatInventory(seats, domain.MaxPartySize)
		assert.NoError(t, err)
	})

	t.Run("booked ratio bounds", func(t *testing.T) {
		layout := DefaultSeatLayout()

		layout.BookedRatio = 0
		seats, err := NewRandomSeatRepository(layout, nil).GetSeatsByShowtime(context.Background(), "1")
		require.NoError(t, err)
		for _, s := range seats {
			assert.False(t, s.Booked)
		}

		layout.BookedRatio = 1
		seats, err = NewRandomSeatRepository(layout, nil).GetSeatsByShowtime(context.Background(), "1")
		require.NoError(t, err)
		for _, s := range seats {
			assert.True(t, s.Booked)
		}
	})

	t.Run("same seed gives the same map", func(t *testing.T) {
		a, err := NewRandomSeatRepository(DefaultSeatLayout(), rand.New(rand.NewPCG(7, 7))).
			GetSeatsByShowtime(context.Background(), "1")
		require.NoError(t, err)

		b, err := NewRandomSeatRepository(DefaultSeatLayout(), rand.New(rand.NewPCG(7, 7))).
			GetSeatsByShowtime(context.Background(), "1")
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewRandomSeatRepository(DefaultSeatLayout(), nil).GetSeatsByShowtime(ctx, "1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
