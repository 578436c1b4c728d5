package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fedoffice/internal/domain"
)

type pricingRepository struct {
	DB *sql.DB
}

func NewPricingRepository(db *sql.DB) domain.PricingRepository {
	return &pricingRepository{
		DB: db,
	}
}

func (r *pricingRepository) GetTier(ctx context.Context, tierID, eventID string) (*domain.PricingTier, error) {
	query := `
		SELECT id, event_id, name, price
		FROM event_pricing_tiers
		WHERE id = $1 AND event_id = $2
	`
	t := &domain.PricingTier{}
	err := r.DB.QueryRowContext(ctx, query, tierID, eventID).Scan(
		&t.ID, &t.EventID, &t.Name, &t.Price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *pricingRepository) GetCategoryPrice(ctx context.Context, eventID, modalityID, categoryID, genderID, tierID string) (*domain.CategoryPrice, error) {
	// Exact 4-way match only; a looser combination never applies.
	query := `
		SELECT event_id, modality_id, category_id, gender_id, tier_id, price
		FROM event_pricing_by_category
		WHERE event_id = $1 AND modality_id = $2 AND category_id = $3
			AND gender_id = $4 AND tier_id = $5
	`
	cp := &domain.CategoryPrice{}
	err := r.DB.QueryRowContext(ctx, query, eventID, modalityID, categoryID, genderID, tierID).Scan(
		&cp.EventID, &cp.ModalityID, &cp.CategoryID, &cp.GenderID, &cp.TierID, &cp.Price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cp, nil
}

func (r *pricingRepository) GetCoupon(ctx context.Context, couponID string) (*domain.DiscountCoupon, error) {
	query := `
		SELECT id, code, discount
		FROM event_discount_coupons
		WHERE id = $1
	`
	c := &domain.DiscountCoupon{}
	err := r.DB.QueryRowContext(ctx, query, couponID).Scan(&c.ID, &c.Code, &c.Discount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
