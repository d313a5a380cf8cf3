package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultDiscountCode = "oneplusone"

var (
	DefaultTicketPrice    = decimal.NewFromInt(12)
	DefaultServiceFeeRate = decimal.RequireFromString("1.5")
	DefaultDiscountRate   = decimal.RequireFromString("0.5")
)

type PriceBreakdown struct {
	TicketCount      int
	SubtotalTickets  decimal.Decimal
	ServiceFee       decimal.Decimal
	PreDiscountTotal decimal.Decimal
	DiscountAmount   decimal.Decimal
	FinalTotal       decimal.Decimal
	DiscountApplied  bool
}

type DiscountResult string

const (
	DiscountAccepted              DiscountResult = "accepted"
	DiscountRejectedEmptyCode     DiscountResult = "rejected_empty_code"
	DiscountRejectedTooFewTickets DiscountResult = "rejected_too_few_tickets"
	DiscountRejectedOddTickets    DiscountResult = "rejected_odd_tickets"
	DiscountRejectedUnknownCode   DiscountResult = "rejected_unknown_code"
)

func (r DiscountResult) Accepted() bool {
	return r == DiscountAccepted
}

// Message is the user-facing text for a discount evaluation.
func (r DiscountResult) Message() string {
	switch r {
	case DiscountAccepted:
		return "Discount code applied successfully!"
	case DiscountRejectedEmptyCode:
		return "Please enter a discount code"
	case DiscountRejectedTooFewTickets:
		return "Discount code requires more than 1 ticket"
	case DiscountRejectedOddTickets:
		return "Discount code requires an even number of tickets"
	default:
		return "Invalid discount code"
	}
}

type PricingConfig struct {
	TicketPrice    decimal.Decimal
	ServiceFeeRate decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountCode   string
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		TicketPrice:    DefaultTicketPrice,
		ServiceFeeRate: DefaultServiceFeeRate,
		DiscountRate:   DefaultDiscountRate,
		DiscountCode:   DefaultDiscountCode,
	}
}

// PricingEngine prices a selection and decides whether a discount code may be
// applied to it. It holds no per-booking state.
type PricingEngine struct {
	cfg PricingConfig
}

func NewPricingEngine(cfg PricingConfig) (*PricingEngine, error) {
	if cfg.TicketPrice.IsNegative() {
		return nil, fmt.Errorf("%w: ticket price must not be negative", ErrInvalidPricing)
	}
	if cfg.ServiceFeeRate.IsNegative() {
		return nil, fmt.Errorf("%w: service fee must not be negative", ErrInvalidPricing)
	}
	// A rate of 1 or more could push the final total below zero.
	if cfg.DiscountRate.IsNegative() || cfg.DiscountRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: discount rate must be in [0, 1)", ErrInvalidPricing)
	}

	cfg.DiscountCode = strings.TrimSpace(cfg.DiscountCode)
	if cfg.DiscountCode == "" {
		return nil, fmt.Errorf("%w: discount code must not be empty", ErrInvalidPricing)
	}

	return &PricingEngine{cfg: cfg}, nil
}

func (p *PricingEngine) Config() PricingConfig {
	return p.cfg
}

// ComputeBreakdown prices ticketCount tickets. A negative count is a caller
// error and is priced as zero tickets.
func (p *PricingEngine) ComputeBreakdown(ticketCount int, discountApplied bool) PriceBreakdown {
	if ticketCount < 0 {
		ticketCount = 0
	}

	count := decimal.NewFromInt(int64(ticketCount))

	subtotal := count.Mul(p.cfg.TicketPrice)
	serviceFee := count.Mul(p.cfg.ServiceFeeRate)
	preDiscount := subtotal.Add(serviceFee)

	discount := decimal.Zero
	if discountApplied {
		discount = preDiscount.Mul(p.cfg.DiscountRate)
	}

	return PriceBreakdown{
		TicketCount:      ticketCount,
		SubtotalTickets:  subtotal,
		ServiceFee:       serviceFee,
		PreDiscountTotal: preDiscount,
		DiscountAmount:   discount,
		FinalTotal:       preDiscount.Sub(discount),
		DiscountApplied:  discountApplied,
	}
}

// EvaluateDiscountCode checks the rules in order and returns the first one
// that fails, or DiscountAccepted.
// Only the empty check ignores surrounding whitespace; a padded code is unknown.
func (p *PricingEngine) EvaluateDiscountCode(code string, ticketCount int) DiscountResult {
	switch {
	case strings.TrimSpace(code) == "":
		return DiscountRejectedEmptyCode
	case ticketCount <= 1:
		return DiscountRejectedTooFewTickets
	case ticketCount%2 != 0:
		return DiscountRejectedOddTickets
	case !strings.EqualFold(code, p.cfg.DiscountCode):
		return DiscountRejectedUnknownCode
	}

	return DiscountAccepted
}
