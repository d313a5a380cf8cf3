package app

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/seat-reservation/api"
	"github.com/metinatakli/seat-reservation/internal/domain"
)

const (
	DefaultMinRating = 0
	DefaultMaxRating = 10
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	params, err := readMovieParams(r.URL.Query())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movies, err := app.movieRepo.GetAll(r.Context(), toMovieFilters(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: make([]api.Movie, len(movies)),
	}

	for i, movie := range movies {
		resp.Movies[i] = toApiMovie(movie)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieId")

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.MovieResponse{Movie: toApiMovie(movie)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimesByMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieId")

	_, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	showtimes, err := app.showtimeRepo.GetByMovieId(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{
		MovieId:   movieID,
		Showtimes: make([]api.Showtime, len(showtimes)),
	}

	for i, showtime := range showtimes {
		resp.Showtimes[i] = toApiShowtime(showtime)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func readMovieParams(qs url.Values) (api.GetMoviesParams, error) {
	params := api.GetMoviesParams{
		Term:      qs.Get("term"),
		Genre:     qs.Get("genre"),
		MinRating: DefaultMinRating,
		MaxRating: DefaultMaxRating,
	}

	if v := qs.Get("minRating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, errors.New("minRating must be a number")
		}
		params.MinRating = rating
	}

	if v := qs.Get("maxRating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, errors.New("maxRating must be a number")
		}
		params.MaxRating = rating
	}

	return params, nil
}

func toMovieFilters(params api.GetMoviesParams) domain.MovieFilters {
	return domain.MovieFilters{
		Term:      params.Term,
		Genre:     params.Genre,
		MinRating: params.MinRating,
		MaxRating: params.MaxRating,
	}
}

func toApiMovie(movie *domain.Movie) api.Movie {
	if movie == nil {
		return api.Movie{}
	}

	return api.Movie{
		Id:       movie.ID,
		Title:    movie.Title,
		Genre:    movie.Genre,
		Rating:   movie.Rating,
		Duration: movie.Duration,
		ImageUrl: movie.ImageURL,
	}
}

func toApiShowtime(showtime *domain.Showtime) api.Showtime {
	return api.Showtime{
		Id:             showtime.ID,
		MovieId:        showtime.MovieID,
		Theater:        showtime.Theater,
		StartTime:      showtime.StartTime,
		AvailableSeats: showtime.AvailableSeats,
		TotalSeats:     showtime.TotalSeats,
	}
}
