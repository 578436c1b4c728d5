package services

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"fedoffice/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type mockRegistrationRepository struct {
	byProtocol   map[string]*domain.Registration
	byID         map[string]*domain.Registration
	firstByEvent map[string]*domain.Registration
	payments     map[string][]*domain.Payment
	err          error
}

func (m *mockRegistrationRepository) GetByProtocols(ctx context.Context, protocols []string) (*domain.Registration, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range protocols {
		if reg, ok := m.byProtocol[p]; ok {
			return reg, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	if m.err != nil {
		return nil, m.err
	}
	if reg, ok := m.byID[id]; ok {
		return reg, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockRegistrationRepository) GetFirstByEventID(ctx context.Context, eventID string) (*domain.Registration, error) {
	if reg, ok := m.firstByEvent[eventID]; ok {
		return reg, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockRegistrationRepository) ListPayments(ctx context.Context, registrationID string) ([]*domain.Payment, error) {
	return m.payments[registrationID], nil
}

type mockTempRegistrationRepository struct {
	byID map[string]*domain.TempRegistration
}

func (m *mockTempRegistrationRepository) GetByIDs(ctx context.Context, ids []string) (*domain.TempRegistration, error) {
	for _, id := range ids {
		if t, ok := m.byID[id]; ok {
			return t, nil
		}
	}
	return nil, domain.ErrNotFound
}

type mockTransactionRepository struct {
	byKey map[string]*domain.PaymentTransaction
	err   error
}

func (m *mockTransactionRepository) GetByProtocolOrExternalID(ctx context.Context, candidates []string) (*domain.PaymentTransaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range candidates {
		if tx, ok := m.byKey[c]; ok {
			return tx, nil
		}
	}
	return nil, domain.ErrNotFound
}

type mockEventRepository struct {
	events map[string]*domain.Event
	err    error
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	if ev, ok := m.events[id]; ok {
		return ev, nil
	}
	return nil, domain.ErrNotFound
}

type mockAthleteRepository struct {
	athletes map[string]*domain.Athlete
}

func (m *mockAthleteRepository) GetByID(ctx context.Context, id string) (*domain.Athlete, error) {
	if a, ok := m.athletes[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

type mockLabelRepository struct {
	modalities map[string]string
	categories map[string]string
	genders    map[string]string
}

func (m *mockLabelRepository) lookup(table map[string]string, id string) (string, error) {
	if name, ok := table[id]; ok {
		return name, nil
	}
	return "", domain.ErrNotFound
}

func (m *mockLabelRepository) GetModalityName(ctx context.Context, id string) (string, error) {
	return m.lookup(m.modalities, id)
}

func (m *mockLabelRepository) GetCategoryName(ctx context.Context, id string) (string, error) {
	return m.lookup(m.categories, id)
}

func (m *mockLabelRepository) GetGenderName(ctx context.Context, id string) (string, error) {
	return m.lookup(m.genders, id)
}

type mockPricingRepository struct {
	tiers          map[string]*domain.PricingTier   // key: tierID:eventID
	categoryPrices map[string]*domain.CategoryPrice // key: eventID:modalityID:categoryID:genderID:tierID
	coupons        map[string]*domain.DiscountCoupon
	tierErr        error
}

func (m *mockPricingRepository) GetTier(ctx context.Context, tierID, eventID string) (*domain.PricingTier, error) {
	if m.tierErr != nil {
		return nil, m.tierErr
	}
	if t, ok := m.tiers[tierID+":"+eventID]; ok {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockPricingRepository) GetCategoryPrice(ctx context.Context, eventID, modalityID, categoryID, genderID, tierID string) (*domain.CategoryPrice, error) {
	key := strings.Join([]string{eventID, modalityID, categoryID, genderID, tierID}, ":")
	if cp, ok := m.categoryPrices[key]; ok {
		return cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockPricingRepository) GetCoupon(ctx context.Context, couponID string) (*domain.DiscountCoupon, error) {
	if c, ok := m.coupons[couponID]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}
