package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Event is a federation event opened for registrations.
// swagger:model Event
type Event struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	IsFree    bool       `json:"is_free"`
}

// PricingTier is a priced purchase lot of an event (early-bird, regular, ...).
type PricingTier struct {
	ID      string          `json:"id"`
	EventID string          `json:"event_id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
}

// CategoryPrice overrides a tier's base price for one exact
// modality/category/gender/tier combination.
type CategoryPrice struct {
	EventID    string          `json:"event_id"`
	ModalityID string          `json:"modality_id"`
	CategoryID string          `json:"category_id"`
	GenderID   string          `json:"gender_id"`
	TierID     string          `json:"tier_id"`
	Price      decimal.Decimal `json:"price"`
}

// DiscountCoupon is a percentage discount applicable to a registration.
type DiscountCoupon struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// EventRepository defines read-only access to events.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
}

// PricingRepository defines read-only access to tiers, category overrides and
// coupons.
type PricingRepository interface {
	GetTier(ctx context.Context, tierID, eventID string) (*PricingTier, error)
	GetCategoryPrice(ctx context.Context, eventID, modalityID, categoryID, genderID, tierID string) (*CategoryPrice, error)
	GetCoupon(ctx context.Context, couponID string) (*DiscountCoupon, error)
}

// LabelRepository resolves modality/category/gender ids to display names.
type LabelRepository interface {
	GetModalityName(ctx context.Context, id string) (string, error)
	GetCategoryName(ctx context.Context, id string) (string, error)
	GetGenderName(ctx context.Context, id string) (string, error)
}
