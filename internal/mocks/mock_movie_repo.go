package mocks

import (
	"context"

	"github.com/metinatakli/seat-reservation/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc  func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error)
	GetByIdFunc func(ctx context.Context, id string) (*domain.Movie, error)
}

func (m *MockMovieRepo) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id string) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

type MockShowtimeRepo struct {
	domain.ShowtimeRepository
	GetByMovieIdFunc func(ctx context.Context, movieID string) ([]*domain.Showtime, error)
	GetByIdFunc      func(ctx context.Context, id string) (*domain.Showtime, error)
}

func (m *MockShowtimeRepo) GetByMovieId(ctx context.Context, movieID string) ([]*domain.Showtime, error) {
	return m.GetByMovieIdFunc(ctx, movieID)
}

func (m *MockShowtimeRepo) GetById(ctx context.Context, id string) (*domain.Showtime, error) {
	return m.GetByIdFunc(ctx, id)
}
