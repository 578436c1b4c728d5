package services

import (
	"context"
	"errors"
	"log/slog"

	"fedoffice/internal/domain"
)

// PriceInput carries the resolved identifiers a price computation needs.
// Nil ids mean the corresponding dimension was never resolved.
type PriceInput struct {
	EventID     string
	ModalityID  *string
	CategoryID  *string
	GenderID    *string
	TierID      *string
	CouponID    *string
	EventIsFree bool
}

// PriceQuote is the authoritative price for one registration: the tier base
// (possibly replaced by a category override), the coupon-discounted final
// price, and the display data that goes with them.
type PriceQuote struct {
	BasePrice          float64
	FinalPrice         float64
	TierName           *string
	OriginalPrice      *float64
	DiscountAmount     *float64
	DiscountPercentage *float64
	CouponCode         *string
	IsFree             bool
}

// PricingEngine layers the base tier price, the exact-tuple category override
// and the coupon discount. Missing rows and failing sub-lookups degrade to
// "no price information" rather than aborting the lookup.
type PricingEngine struct {
	pricing domain.PricingRepository
	logger  *slog.Logger
}

func NewPricingEngine(pricing domain.PricingRepository, logger *slog.Logger) *PricingEngine {
	return &PricingEngine{
		pricing: pricing,
		logger:  logger,
	}
}

// Resolve computes the price quote for in. It never fails: every sub-lookup
// that errors is logged and treated as absent.
func (e *PricingEngine) Resolve(ctx context.Context, in PriceInput) PriceQuote {
	var quote PriceQuote

	base := 0.0
	if in.TierID != nil {
		tier, err := e.pricing.GetTier(ctx, *in.TierID, in.EventID)
		switch {
		case err == nil:
			base = domain.ToAmount(tier.Price)
			quote.TierName = &tier.Name
		case !errors.Is(err, domain.ErrNotFound):
			e.logger.WarnContext(ctx, "tier lookup failed", "tier_id", *in.TierID, "event_id", in.EventID, "err", err)
		}
	}
	original := base

	// The exact 4-way override always replaces the tier base; there is no
	// partial-match fallback to a looser combination.
	if in.ModalityID != nil && in.CategoryID != nil && in.GenderID != nil && in.TierID != nil {
		cp, err := e.pricing.GetCategoryPrice(ctx, in.EventID, *in.ModalityID, *in.CategoryID, *in.GenderID, *in.TierID)
		switch {
		case err == nil:
			base = domain.ToAmount(cp.Price)
		case !errors.Is(err, domain.ErrNotFound):
			e.logger.WarnContext(ctx, "category price lookup failed", "event_id", in.EventID, "err", err)
		}
	}

	final := base
	if in.CouponID != nil {
		coupon, err := e.pricing.GetCoupon(ctx, *in.CouponID)
		switch {
		case err == nil:
			pct := coupon.Discount
			amount := base * pct / 100
			final = base - amount
			quote.DiscountPercentage = &pct
			quote.DiscountAmount = &amount
			quote.CouponCode = &coupon.Code
		case !errors.Is(err, domain.ErrNotFound):
			e.logger.WarnContext(ctx, "coupon lookup failed", "coupon_id", *in.CouponID, "err", err)
		}
	}

	quote.BasePrice = base
	quote.FinalPrice = final
	if final != original {
		quote.OriginalPrice = &original
	}
	quote.IsFree = in.EventIsFree || final == 0
	return quote
}
