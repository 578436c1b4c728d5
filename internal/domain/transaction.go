package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Metadata is the opaque JSON blob a payment gateway attaches to a
// transaction. Its shape varies per gateway version, so every accessor tries
// the known key variants and reports absence instead of failing.
type Metadata map[string]any

// Scan implements sql.Scanner for JSONB columns. Malformed metadata is treated
// as absent: the resolver must keep going when the gateway wrote garbage.
func (m *Metadata) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		*m = nil
		return nil
	}
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		*m = nil
		return nil
	}
	*m = parsed
	return nil
}

func (m Metadata) stringKey(keys ...string) (string, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// EventID returns the event id hint, if the gateway recorded one.
func (m Metadata) EventID() (string, bool) {
	return m.stringKey("eventId", "event_id", "entityId", "entity_id")
}

// GenderID returns the gender id hint, if present.
func (m Metadata) GenderID() (string, bool) {
	return m.stringKey("genderId", "gender_id")
}

// RegistrationID returns the linked registration id, if present.
func (m Metadata) RegistrationID() (string, bool) {
	return m.stringKey("registrationId", "registration_id")
}

// CustomerName returns the buyer name under any of its historical keys.
func (m Metadata) CustomerName() (string, bool) {
	return m.stringKey("customerName", "customer_name", "name", "Name")
}

// CustomerEmail returns the buyer email under any of its historical keys.
func (m Metadata) CustomerEmail() (string, bool) {
	return m.stringKey("customerEmail", "customer_email", "email", "Email")
}

// PaymentTransaction is a payment-gateway-side record, loosely linked to a
// purchase via EntityID/EntityType.
type PaymentTransaction struct {
	ID            string          `json:"id"`
	Protocol      string          `json:"protocol"`
	ExternalID    string          `json:"external_id"`
	EntityID      *string         `json:"entity_id"`
	EntityType    string          `json:"entity_type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   *string         `json:"description"`
	Metadata      Metadata        `json:"metadata"`
	PaymentMethod *string         `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransactionRepository defines read-only access to gateway transactions.
type TransactionRepository interface {
	// GetByProtocolOrExternalID returns the transaction whose protocol or
	// external id matches any candidate, or ErrNotFound.
	GetByProtocolOrExternalID(ctx context.Context, candidates []string) (*PaymentTransaction, error)
}
