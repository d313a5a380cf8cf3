package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/metinatakli/seat-reservation/internal/domain"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	Redis            RedisConfig
	Session          SessionConfig
	Pricing          PricingConfig
	Booking          BookingConfig
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SessionConfig struct {
	IdleTimeout time.Duration
	CookieName  string
}

// PricingConfig keeps monetary values as strings until they are parsed into
// decimals by Domain.
type PricingConfig struct {
	TicketPrice  string
	ServiceFee   string
	DiscountRate string
	DiscountCode string
}

type BookingConfig struct {
	MaxSeats    int
	BookedRatio float64
}

// Domain converts the flag values into a domain.PricingConfig.
func (c PricingConfig) Domain() (domain.PricingConfig, error) {
	ticketPrice, err := decimal.NewFromString(c.TicketPrice)
	if err != nil {
		return domain.PricingConfig{}, fmt.Errorf("invalid ticket price %q: %w", c.TicketPrice, err)
	}

	serviceFee, err := decimal.NewFromString(c.ServiceFee)
	if err != nil {
		return domain.PricingConfig{}, fmt.Errorf("invalid service fee %q: %w", c.ServiceFee, err)
	}

	discountRate, err := decimal.NewFromString(c.DiscountRate)
	if err != nil {
		return domain.PricingConfig{}, fmt.Errorf("invalid discount rate %q: %w", c.DiscountRate, err)
	}

	return domain.PricingConfig{
		TicketPrice:    ticketPrice,
		ServiceFeeRate: serviceFee,
		DiscountRate:   discountRate,
		DiscountCode:   c.DiscountCode,
	}, nil
}

// DefaultConfig mirrors the flag defaults without touching the environment.
func DefaultConfig() Config {
	defaults := domain.DefaultPricingConfig()

	return Config{
		Port: 3000,
		Env:  "dev",
		Redis: RedisConfig{
			MaxOpenConns: 25,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
		},
		Session: SessionConfig{
			IdleTimeout: 20 * time.Minute,
			CookieName:  "session_id",
		},
		Pricing: PricingConfig{
			TicketPrice:  defaults.TicketPrice.String(),
			ServiceFee:   defaults.ServiceFeeRate.String(),
			DiscountRate: defaults.DiscountRate.String(),
			DiscountCode: defaults.DiscountCode,
		},
		Booking: BookingConfig{
			MaxSeats:    domain.MaxPartySize,
			BookedRatio: 0.2,
		},
	}
}

// loadEnv reads a .env file from the working directory, if there is one.
// Variables already present in the environment take precedence.
func loadEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	return nil
}

// parseFlags builds the Config from command line flags. Environment variables
// provide the flag defaults so the service can be configured either way.
func parseFlags(fset *flag.FlagSet, args []string) (Config, bool, error) {
	cfg := DefaultConfig()

	if err := applyEnv(&cfg); err != nil {
		return Config{}, false, err
	}

	fset.IntVar(&cfg.Port, "port", cfg.Port, "server port")
	fset.StringVar(&cfg.Env, "env", cfg.Env, "Environment (dev|staging|prod)")
	fset.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", cfg.OtelCollectorUrl, "OpenTelemetry collector gRPC endpoint")

	fset.StringVar(&cfg.Redis.URL, "redis-url", cfg.Redis.URL, "Redis address for the session store (in-memory store when empty)")
	fset.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", cfg.Redis.MaxOpenConns, "Redis max open connections")
	fset.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", cfg.Redis.MaxIdleConns, "Redis max idle connections")
	fset.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", cfg.Redis.MaxIdleTime, "Redis max idle time for connections")

	fset.DurationVar(&cfg.Session.IdleTimeout, "session-idle-timeout", cfg.Session.IdleTimeout, "Booking session idle timeout")

	fset.StringVar(&cfg.Pricing.TicketPrice, "ticket-price", cfg.Pricing.TicketPrice, "Price of a single ticket")
	fset.StringVar(&cfg.Pricing.ServiceFee, "service-fee", cfg.Pricing.ServiceFee, "Service fee charged per ticket")
	fset.StringVar(&cfg.Pricing.DiscountRate, "discount-rate", cfg.Pricing.DiscountRate, "Fraction taken off the total by a discount code")
	fset.StringVar(&cfg.Pricing.DiscountCode, "discount-code", cfg.Pricing.DiscountCode, "Accepted discount code")

	fset.IntVar(&cfg.Booking.MaxSeats, "max-seats", cfg.Booking.MaxSeats, "Maximum number of seats per booking")
	fset.Float64Var(&cfg.Booking.BookedRatio, "booked-ratio", cfg.Booking.BookedRatio, "Fraction of seats pre-booked when a seat map is generated")

	displayVersion := fset.Bool("version", false, "Display version and exit")

	if err := fset.Parse(args); err != nil {
		return Config{}, false, err
	}

	if cfg.Booking.MaxSeats < 1 {
		return Config{}, false, fmt.Errorf("max-seats must be at least 1, got %d", cfg.Booking.MaxSeats)
	}

	if cfg.Booking.BookedRatio < 0 || cfg.Booking.BookedRatio > 1 {
		return Config{}, false, fmt.Errorf("booked-ratio must be between 0 and 1, got %v", cfg.Booking.BookedRatio)
	}

	return cfg, *displayVersion, nil
}

// applyEnv overrides the defaults with environment variables. A variable that
// is set but malformed is an error, the same as a bad flag value.
func applyEnv(cfg *Config) error {
	var err error

	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return err
	}
	if cfg.Session.IdleTimeout, err = envDuration("SESSION_IDLE_TIMEOUT", cfg.Session.IdleTimeout); err != nil {
		return err
	}
	if cfg.Booking.MaxSeats, err = envInt("MAX_SEATS", cfg.Booking.MaxSeats); err != nil {
		return err
	}

	cfg.Env = envString("ENV", cfg.Env)
	cfg.OtelCollectorUrl = envString("OTEL_COLLECTOR_URL", cfg.OtelCollectorUrl)
	cfg.Redis.URL = envString("REDIS_URL", cfg.Redis.URL)
	cfg.Pricing.TicketPrice = envString("TICKET_PRICE", cfg.Pricing.TicketPrice)
	cfg.Pricing.ServiceFee = envString("SERVICE_FEE", cfg.Pricing.ServiceFee)
	cfg.Pricing.DiscountRate = envString("DISCOUNT_RATE", cfg.Pricing.DiscountRate)
	cfg.Pricing.DiscountCode = envString("DISCOUNT_CODE", cfg.Pricing.DiscountCode)

	return nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}

	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}

	return d, nil
}
