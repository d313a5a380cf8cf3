package repository

import (
	"context"
	"sync"

	"github.com/metinatakli/seat-reservation/internal/domain"
)

type MemoryMovieRepository struct {
	mu     sync.RWMutex
	movies []*domain.Movie
}

func NewMemoryMovieRepository(movies []*domain.Movie) *MemoryMovieRepository {
	return &MemoryMovieRepository{
		movies: movies,
	}
}

func (m *MemoryMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	movies := []*domain.Movie{}

	for _, movie := range m.movies {
		if filters.Matches(movie) {
			copied := *movie
			movies = append(movies, &copied)
		}
	}

	return movies, nil
}

func (m *MemoryMovieRepository) GetById(ctx context.Context, id string) (*domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, movie := range m.movies {
		if movie.ID == id {
			copied := *movie
			return &copied, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}
