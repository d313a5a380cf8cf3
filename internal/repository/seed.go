package repository

import (
	"time"

	"github.com/metinatakli/seat-reservation/internal/domain"
)

// SeedMovies is the catalog served when no other source is configured.
func SeedMovies() []*domain.Movie {
	return []*domain.Movie{
		{
			ID:       "1",
			Title:    "Inception",
			Genre:    "Sci-Fi",
			Rating:   8.8,
			Duration: "2h 28m",
			ImageURL: "https://images.example.com/inception.jpg",
		},
		{
			ID:       "2",
			Title:    "The Dark Knight",
			Genre:    "Action",
			Rating:   9.0,
			Duration: "2h 32m",
			ImageURL: "https://images.example.com/the-dark-knight.jpg",
		},
		{
			ID:       "3",
			Title:    "Interstellar",
			Genre:    "Sci-Fi",
			Rating:   8.6,
			Duration: "2h 49m",
			ImageURL: "https://images.example.com/interstellar.jpg",
		},
		{
			ID:       "4",
			Title:    "The Shawshank Redemption",
			Genre:    "Drama",
			Rating:   9.3,
			Duration: "2h 22m",
			ImageURL: "https://images.example.com/the-shawshank-redemption.jpg",
		},
	}
}

// SeedShowtimes returns the showtimes of SeedMovies, scheduled on day.
func SeedShowtimes(day time.Time) []*domain.Showtime {
	at := func(hour, minute int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	}

	return []*domain.Showtime{
		{ID: "1", MovieID: "1", Theater: "Cinema City - Hall 1", StartTime: at(14, 30), AvailableSeats: 45, TotalSeats: 100},
		{ID: "2", MovieID: "1", Theater: "Cinema City - Hall 2", StartTime: at(17, 0), AvailableSeats: 80, TotalSeats: 100},
		{ID: "3", MovieID: "2", Theater: "Cinema City - IMAX", StartTime: at(15, 0), AvailableSeats: 30, TotalSeats: 150},
		{ID: "4", MovieID: "3", Theater: "Cinema City - Hall 3", StartTime: at(16, 30), AvailableSeats: 60, TotalSeats: 100},
	}
}
