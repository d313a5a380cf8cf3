package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2/memstore"
	"github.com/metinatakli/seat-reservation/api"
	"github.com/metinatakli/seat-reservation/internal/domain"
	"github.com/metinatakli/seat-reservation/internal/mocks"
	"github.com/metinatakli/seat-reservation/internal/validator"
	"github.com/stretchr/testify/require"
)

const testShowtimeID = "1"

var testStartTime = time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)

func newTestApplication(t *testing.T, opts ...func(*Application)) *Application {
	t.Helper()

	pricing, err := domain.NewPricingEngine(domain.DefaultPricingConfig())
	require.NoError(t, err)

	metrics, err := newBookingMetrics()
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Env = "test"

	app := &Application{
		config:         cfg,
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: NewSessionManager(memstore.NewWithCleanupInterval(0), cfg.Session),
		pricing:        pricing,
		metrics:        metrics,
		movieRepo:      &mocks.MockMovieRepo{},
		showtimeRepo:   &mocks.MockShowtimeRepo{},
		seatRepo:       new(mocks.MockSeatRepo),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// testSeats returns two rows of six seats for testShowtimeID with A1 booked.
func testSeats() []domain.Seat {
	var seats []domain.Seat

	for _, row := range []string{"A", "B"} {
		for n := 1; n <= 6; n++ {
			seats = append(seats, domain.Seat{
				ID:     fmt.Sprintf("%s-%s%d", testShowtimeID, row, n),
				Row:    row,
				Number: n,
				Booked: row == "A" && n == 1,
			})
		}
	}

	return seats
}

func testMovie() *domain.Movie {
	return &domain.Movie{
		ID:       "1",
		Title:    "Inception",
		Genre:    "Sci-Fi",
		Rating:   8.8,
		Duration: "2h 28min",
		ImageURL: "https://example.com/inception.jpg",
	}
}

func testShowtime() *domain.Showtime {
	return &domain.Showtime{
		ID:             testShowtimeID,
		MovieID:        "1",
		Theater:        "Theater 1",
		StartTime:      testStartTime,
		AvailableSeats: 50,
		TotalSeats:     100,
	}
}

// testClient drives a handler through httptest while carrying the session
// cookie from one request to the next.
type testClient struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newTestClient(t *testing.T, app *Application) *testClient {
	return &testClient{t: t, handler: app.Routes()}
}

func (c *testClient) do(method, url string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = bytes.NewBufferString(raw)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(c.t, err)
			reader = bytes.NewReader(jsonData)
		}
	}

	r := httptest.NewRequest(method, url, reader)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	for _, cookie := range c.cookies {
		r.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, r)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}

	return w
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	return resp
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func notFoundMovie(context.Context, string) (*domain.Movie, error) {
	return nil, domain.ErrRecordNotFound
}
