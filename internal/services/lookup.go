package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fedoffice/internal/domain"
)

const entityTypeEvent = "EVENT"

// Placeholder identity for payments that cannot be joined to any participant.
const (
	placeholderName  = "Inscrição Confirmada"
	placeholderEmail = "-"
)

type lookupService struct {
	regRepo     domain.RegistrationRepository
	tempRepo    domain.TempRegistrationRepository
	txRepo      domain.TransactionRepository
	eventRepo   domain.EventRepository
	athleteRepo domain.AthleteRepository
	labels      domain.LabelRepository
	pricing     *PricingEngine
	logger      *slog.Logger
}

// NewLookupService wires the multi-source resolver. All repositories are
// read-only; the service keeps no state between calls.
func NewLookupService(
	regRepo domain.RegistrationRepository,
	tempRepo domain.TempRegistrationRepository,
	txRepo domain.TransactionRepository,
	eventRepo domain.EventRepository,
	athleteRepo domain.AthleteRepository,
	labels domain.LabelRepository,
	pricing *PricingEngine,
	logger *slog.Logger,
) domain.LookupService {
	return &lookupService{
		regRepo:     regRepo,
		tempRepo:    tempRepo,
		txRepo:      txRepo,
		eventRepo:   eventRepo,
		athleteRepo: athleteRepo,
		labels:      labels,
		pricing:     pricing,
		logger:      logger,
	}
}

// GetByProtocol reconstructs the one canonical record for a protocol string.
// Sources are tried in strict precedence order and the first hit wins:
// confirmed registration, temporary registration, payment transaction (linked,
// then unlinked). Exhausting all of them is the only way to get ErrNotFound.
func (s *lookupService) GetByProtocol(ctx context.Context, protocol string) (*domain.RegistrationDetails, error) {
	candidates := CandidateProtocols(strings.TrimSpace(protocol))

	reg, err := s.regRepo.GetByProtocols(ctx, candidates)
	if err == nil {
		return s.fromRegistration(ctx, reg, nil)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	temp, err := s.tempRepo.GetByIDs(ctx, candidates)
	if err == nil {
		return s.fromTempRegistration(ctx, temp)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get temp registration: %w", err)
	}

	// One query covers both prefix forms: the candidate set already carries
	// the bare and the "EVE-" variants, for protocol and external id alike.
	tx, err := s.txRepo.GetByProtocolOrExternalID(ctx, candidates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get payment transaction: %w", err)
	}

	if tx.EntityType == entityTypeEvent {
		if tx.EntityID != nil {
			linked, err := s.regRepo.GetByID(ctx, *tx.EntityID)
			if err == nil {
				return s.fromRegistration(ctx, linked, tx)
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("get linked registration: %w", err)
			}
		}
		details, err := s.fromLinkedTransaction(ctx, tx)
		if err != nil {
			return nil, err
		}
		if details != nil {
			return details, nil
		}
	}

	return s.fromUnlinkedTransaction(ctx, tx)
}

// fromRegistration assembles the record for a confirmed registration. tx is
// the transaction that led here when the registration was reached through the
// gateway, nil otherwise; it only backfills payment method and date.
func (s *lookupService) fromRegistration(ctx context.Context, reg *domain.Registration, tx *domain.PaymentTransaction) (*domain.RegistrationDetails, error) {
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get event: %w", err)
		}
		s.logger.WarnContext(ctx, "registration references missing event", "registration_id", reg.ID, "event_id", reg.EventID)
		event = nil
	}

	quote := s.pricing.Resolve(ctx, PriceInput{
		EventID:     reg.EventID,
		ModalityID:  reg.ModalityID,
		CategoryID:  reg.CategoryID,
		GenderID:    reg.GenderID,
		TierID:      reg.TierID,
		CouponID:    reg.CouponID,
		EventIsFree: event != nil && event.IsFree,
	})

	d := &domain.RegistrationDetails{
		ID:          reg.ID,
		Protocol:    reg.Protocol,
		Name:        reg.Name,
		Email:       reg.Email,
		EventID:     &reg.EventID,
		ModalityID:  reg.ModalityID,
		CategoryID:  reg.CategoryID,
		GenderID:    reg.GenderID,
		TierID:      reg.TierID,
		Status:      reg.Status,
		CreatedAt:   reg.CreatedAt,
		UpdatedAt:   &reg.UpdatedAt,
		CPF:         reg.CPF,
		Phone:       reg.Phone,
		Birthdate:   reg.Birthdate,
		AddressData: s.parseAddress(ctx, reg.AddressData),
	}
	s.applyEvent(d, event)
	s.applyQuote(d, quote)
	s.applyLabels(ctx, d)

	payments, err := s.regRepo.ListPayments(ctx, reg.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "payment history lookup failed", "registration_id", reg.ID, "err", err)
	} else if len(payments) > 0 {
		d.PaymentMethod = &payments[0].Method
		d.PaymentDate = payments[0].PaidAt
	}
	if d.PaymentMethod == nil && tx != nil {
		d.PaymentMethod = tx.PaymentMethod
		created := tx.CreatedAt
		d.PaymentDate = &created
	}

	return normalizeOutput(d)
}

// fromTempRegistration assembles the record for a pending purchase. Temp rows
// have no coupon and no payment history; their id doubles as the protocol.
func (s *lookupService) fromTempRegistration(ctx context.Context, temp *domain.TempRegistration) (*domain.RegistrationDetails, error) {
	event, err := s.eventRepo.GetByID(ctx, temp.EventID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get event: %w", err)
		}
		event = nil
	}

	quote := s.pricing.Resolve(ctx, PriceInput{
		EventID:     temp.EventID,
		ModalityID:  temp.ModalityID,
		CategoryID:  temp.CategoryID,
		GenderID:    temp.GenderID,
		TierID:      temp.TierID,
		EventIsFree: event != nil && event.IsFree,
	})

	d := &domain.RegistrationDetails{
		ID:          temp.ID,
		Protocol:    temp.ID,
		Name:        temp.Name,
		Email:       temp.Email,
		EventID:     &temp.EventID,
		ModalityID:  temp.ModalityID,
		CategoryID:  temp.CategoryID,
		GenderID:    temp.GenderID,
		TierID:      temp.TierID,
		Status:      domain.StatusPending,
		CreatedAt:   temp.CreatedAt,
		UpdatedAt:   &temp.UpdatedAt,
		CPF:         temp.CPF,
		Phone:       temp.Phone,
		Birthdate:   temp.Birthdate,
		AddressData: s.parseAddress(ctx, temp.AddressData),
	}
	s.applyEvent(d, event)
	s.applyQuote(d, quote)
	s.applyLabels(ctx, d)

	return normalizeOutput(d)
}

// fromLinkedTransaction synthesizes a virtual registration from a gateway
// transaction whose entity points at an event but at no registration row.
// It returns (nil, nil) when no event can be resolved, so the caller falls
// through to the unlinked path.
func (s *lookupService) fromLinkedTransaction(ctx context.Context, tx *domain.PaymentTransaction) (*domain.RegistrationDetails, error) {
	eventID := ""
	if tx.EntityID != nil {
		eventID = *tx.EntityID
	} else if id, ok := tx.Metadata.EventID(); ok {
		eventID = id
	}
	if eventID == "" {
		return nil, nil
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	amount := domain.ToAmount(tx.Amount)

	d := &domain.RegistrationDetails{
		ID:        tx.ID,
		Protocol:  transactionProtocol(tx),
		Name:      placeholderName,
		Email:     placeholderEmail,
		Status:    domain.StatusConfirmed,
		Price:     amount,
		IsFree:    amount == 0,
		CreatedAt: tx.CreatedAt,
	}
	if name, ok := tx.Metadata.CustomerName(); ok {
		d.Name = name
	}
	if email, ok := tx.Metadata.CustomerEmail(); ok {
		d.Email = email
	}
	if genderID, ok := tx.Metadata.GenderID(); ok {
		if name, err := s.labels.GetGenderName(ctx, genderID); err == nil {
			d.GenderName = &name
		} else if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "gender lookup failed", "gender_id", genderID, "err", err)
		}
	}
	s.applyEvent(d, event)
	s.applyDescription(d, tx.Description)
	d.PaymentMethod = tx.PaymentMethod
	created := tx.CreatedAt
	d.PaymentDate = &created

	return normalizeOutput(d)
}

// fromUnlinkedTransaction reconstructs the record for a payment that cannot be
// joined to any registration row. Participant identity is recovered through a
// chain of fallbacks; without a resolvable event the lookup is a not-found.
func (s *lookupService) fromUnlinkedTransaction(ctx context.Context, tx *domain.PaymentTransaction) (*domain.RegistrationDetails, error) {
	eventID := ""
	if tx.EntityID != nil {
		eventID = *tx.EntityID
	} else if id, ok := tx.Metadata.EventID(); ok {
		eventID = id
	}
	if eventID == "" {
		return nil, domain.ErrNotFound
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	amount := domain.ToAmount(tx.Amount)

	d := &domain.RegistrationDetails{
		ID:         tx.ID,
		Protocol:   transactionProtocol(tx),
		Status:     domain.StatusConfirmed,
		Price:      amount,
		PaidAmount: &amount,
		IsFree:     amount == 0,
		CreatedAt:  tx.CreatedAt,
	}
	d.Name, d.Email = s.resolveParticipant(ctx, tx)
	s.applyEvent(d, event)
	s.applyDescription(d, tx.Description)
	d.PaymentMethod = tx.PaymentMethod
	created := tx.CreatedAt
	d.PaymentDate = &created

	return normalizeOutput(d)
}

// resolveParticipant recovers a name/email for an unlinked payment, trying in
// order: the metadata registration id, any registration for the transaction's
// event, an athlete profile with the entity id, and finally placeholders.
func (s *lookupService) resolveParticipant(ctx context.Context, tx *domain.PaymentTransaction) (string, string) {
	if regID, ok := tx.Metadata.RegistrationID(); ok {
		if reg, err := s.regRepo.GetByID(ctx, regID); err == nil {
			return reg.Name, reg.Email
		} else if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "metadata registration lookup failed", "registration_id", regID, "err", err)
		}
	}
	if tx.EntityID != nil {
		if reg, err := s.regRepo.GetFirstByEventID(ctx, *tx.EntityID); err == nil {
			return reg.Name, reg.Email
		} else if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "event registration lookup failed", "event_id", *tx.EntityID, "err", err)
		}
		if athlete, err := s.athleteRepo.GetByID(ctx, *tx.EntityID); err == nil {
			return athlete.Name, athlete.Email
		} else if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "athlete lookup failed", "athlete_id", *tx.EntityID, "err", err)
		}
	}
	return placeholderName, placeholderEmail
}

func (s *lookupService) applyEvent(d *domain.RegistrationDetails, event *domain.Event) {
	if event == nil {
		return
	}
	d.EventID = &event.ID
	d.EventTitle = &event.Title
	d.EventStartDate = event.StartDate
	d.EventEndDate = event.EndDate
	if event.IsFree {
		d.IsFree = true
	}
}

func (s *lookupService) applyQuote(d *domain.RegistrationDetails, quote PriceQuote) {
	d.Price = quote.FinalPrice
	d.TierName = quote.TierName
	d.OriginalPrice = quote.OriginalPrice
	d.DiscountAmount = quote.DiscountAmount
	d.DiscountPercentage = quote.DiscountPercentage
	d.CouponCode = quote.CouponCode
	d.IsFree = d.IsFree || quote.IsFree
}

// applyLabels fills display names for the relational ids that are present.
// Each lookup is independent and soft-fails.
func (s *lookupService) applyLabels(ctx context.Context, d *domain.RegistrationDetails) {
	resolve := func(id *string, get func(context.Context, string) (string, error), kind string) *string {
		if id == nil {
			return nil
		}
		name, err := get(ctx, *id)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				s.logger.WarnContext(ctx, "label lookup failed", "kind", kind, "id", *id, "err", err)
			}
			return nil
		}
		return &name
	}
	if d.ModalityName == nil {
		d.ModalityName = resolve(d.ModalityID, s.labels.GetModalityName, "modality")
	}
	if d.CategoryName == nil {
		d.CategoryName = resolve(d.CategoryID, s.labels.GetCategoryName, "category")
	}
	if d.GenderName == nil {
		d.GenderName = resolve(d.GenderID, s.labels.GetGenderName, "gender")
	}
}

// applyDescription runs the free-text extractor and fills labels that are
// still unknown.
func (s *lookupService) applyDescription(d *domain.RegistrationDetails, description *string) {
	if description == nil {
		return
	}
	extracted := ExtractDetails(*description)
	if d.ModalityName == nil {
		d.ModalityName = extracted.ModalityName
	}
	if d.CategoryName == nil {
		d.CategoryName = extracted.CategoryName
	}
	if d.GenderName == nil {
		d.GenderName = extracted.GenderName
	}
}

// parseAddress turns the serialized address blob into an object; malformed
// data degrades to null.
func (s *lookupService) parseAddress(ctx context.Context, raw *string) map[string]any {
	if raw == nil || *raw == "" {
		return nil
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(*raw), &parsed); err != nil {
		s.logger.WarnContext(ctx, "address data is not valid JSON", "err", err)
		return nil
	}
	return parsed
}

// transactionProtocol picks the identifier the caller should see for a
// transaction-derived record.
func transactionProtocol(tx *domain.PaymentTransaction) string {
	if tx.Protocol != "" {
		return tx.Protocol
	}
	return tx.ExternalID
}

// normalizeOutput round-trips the record through JSON so nothing that cannot
// serialize leaks to the caller, and repeated lookups over unchanged data stay
// byte-identical.
func normalizeOutput(d *domain.RegistrationDetails) (*domain.RegistrationDetails, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("serialize registration details: %w", err)
	}
	out := &domain.RegistrationDetails{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("deserialize registration details: %w", err)
	}
	return out, nil
}
