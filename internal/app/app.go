package app

import (
	"context"
	"encoding/gob"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/seat-reservation/internal/domain"
	"github.com/metinatakli/seat-reservation/internal/repository"
	appvalidator "github.com/metinatakli/seat-reservation/internal/validator"
	"github.com/metinatakli/seat-reservation/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "seat-reservation-api"

var (
	version = vcs.Version()
)

func init() {
	gob.Register(domain.BookingState{})
}

type Application struct {
	config         Config
	logger         *slog.Logger
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	pricing        *domain.PricingEngine
	metrics        *bookingMetrics

	movieRepo    domain.MovieRepository
	showtimeRepo domain.ShowtimeRepository
	seatRepo     domain.SeatRepository
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	sessionManager *scs.SessionManager,
	pricing *domain.PricingEngine,
	movieRepo domain.MovieRepository,
	showtimeRepo domain.ShowtimeRepository,
	seatRepo domain.SeatRepository) (*Application, error) {

	metrics, err := newBookingMetrics()
	if err != nil {
		return nil, err
	}

	return &Application{
		config:         cfg,
		logger:         logger,
		validator:      validator,
		sessionManager: sessionManager,
		pricing:        pricing,
		metrics:        metrics,
		movieRepo:      movieRepo,
		showtimeRepo:   showtimeRepo,
		seatRepo:       seatRepo,
	}, nil
}

func Run() error {
	if err := loadEnv(); err != nil {
		return err
	}

	cfg, displayVersion, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := InitTelemetry(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(
			slog.NewTextHandler(os.Stdout, nil),
			otelslog.NewHandler(serviceName),
		))
	}

	pricingCfg, err := cfg.Pricing.Domain()
	if err != nil {
		return err
	}

	pricing, err := domain.NewPricingEngine(pricingCfg)
	if err != nil {
		return err
	}

	var store scs.Store = memstore.New()

	if cfg.Redis.URL != "" {
		redisClient, err := NewRedisClient(cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		store = goredisstore.New(redisClient)
		logger.Info("using redis session store", "addr", cfg.Redis.URL)
	}

	layout := repository.DefaultSeatLayout()
	layout.BookedRatio = cfg.Booking.BookedRatio

	app, err := NewApp(
		cfg,
		logger,
		appvalidator.NewValidator(),
		NewSessionManager(store, cfg.Session),
		pricing,
		repository.NewMemoryMovieRepository(repository.SeedMovies()),
		repository.NewMemoryShowtimeRepository(repository.SeedShowtimes(time.Now())),
		repository.NewRandomSeatRepository(layout, nil),
	)
	if err != nil {
		return err
	}

	return app.run()
}

func NewSessionManager(store scs.Store, cfg SessionConfig) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = store
	sessionManager.IdleTimeout = cfg.IdleTimeout
	sessionManager.Cookie.Name = cfg.CookieName
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	return sessionManager
}

func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.URL,
		MaxIdleConns:    cfg.MaxIdleConns,
		MaxActiveConns:  cfg.MaxOpenConns,
		ConnMaxIdleTime: cfg.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, fmt.Errorf("failed to instrument redis client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Get("/{movieId}", app.GetMovieById)
		r.Get("/{movieId}/showtimes", app.GetShowtimesByMovie)
	})

	r.Route("/booking", func(r chi.Router) {
		r.Get("/", app.GetBooking)
		r.Delete("/", app.ResetBooking)
		r.Put("/showtime", app.SelectShowtime)
		r.Post("/seats/{seatId}/toggle", app.ToggleSeat)
		r.Post("/proceed", app.ProceedToCheckout)
		r.Delete("/seat-gap-alert", app.DismissSeatGapAlert)
		r.Get("/price", app.GetPrice)
		r.Post("/discount", app.ApplyDiscount)
		r.Post("/checkout", app.Checkout)
	})

	return r
}
