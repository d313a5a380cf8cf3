package integration_test

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/metinatakli/seat-reservation/internal/app"
	"github.com/metinatakli/seat-reservation/internal/domain"
	"github.com/metinatakli/seat-reservation/internal/repository"
	appvalidator "github.com/metinatakli/seat-reservation/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App   *app.Application
	Redis *redis.Client
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	redisClient, err := app.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	pricingCfg, err := cfg.Pricing.Domain()
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	pricing, err := domain.NewPricingEngine(pricingCfg)
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	// No pre-booked seats so every scenario sees the same seat map.
	layout := repository.DefaultSeatLayout()
	layout.BookedRatio = cfg.Booking.BookedRatio

	application, err := app.NewApp(
		cfg,
		logger,
		appvalidator.NewValidator(),
		app.NewSessionManager(goredisstore.New(redisClient), cfg.Session),
		pricing,
		repository.NewMemoryMovieRepository(repository.SeedMovies()),
		repository.NewMemoryShowtimeRepository(repository.SeedShowtimes(time.Now())),
		repository.NewRandomSeatRepository(layout, rand.New(rand.NewPCG(1, 2))),
	)
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	return &TestApp{
		App:   application,
		Redis: redisClient,
	}, nil
}
