package domain

import (
	"context"
	"regexp"
	"strings"
	"time"
)

type Movie struct {
	ID       string
	Title    string
	Genre    string
	Rating   float64
	Duration string
	ImageURL string
}

type Showtime struct {
	ID             string
	MovieID        string
	Theater        string
	StartTime      time.Time
	AvailableSeats int
	TotalSeats     int
}

var (
	nonWordRgx    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRgx = regexp.MustCompile(`\s+`)
)

// SanitizeSearchTerm replaces punctuation with spaces and collapses runs of
// whitespace.
func SanitizeSearchTerm(term string) string {
	term = nonWordRgx.ReplaceAllString(term, " ")
	term = whitespaceRgx.ReplaceAllString(term, " ")

	return strings.TrimSpace(term)
}

type MovieFilters struct {
	Term      string
	Genre     string
	MinRating float64
	MaxRating float64
}

func (f MovieFilters) Matches(movie *Movie) bool {
	term := SanitizeSearchTerm(strings.ToLower(f.Term))

	if term != "" && !strings.Contains(strings.ToLower(movie.Title), term) {
		return false
	}

	if f.Genre != "" && movie.Genre != f.Genre {
		return false
	}

	return movie.Rating >= f.MinRating && movie.Rating <= f.MaxRating
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, error)
	GetById(ctx context.Context, id string) (*Movie, error)
}

type ShowtimeRepository interface {
	GetByMovieId(ctx context.Context, movieID string) ([]*Showtime, error)
	GetById(ctx context.Context, id string) (*Showtime, error)
}
