package domain

import (
	"context"
	"time"
)

// RegistrationStatus is the lifecycle status of a registration purchase.
type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "PENDING"
	StatusConfirmed RegistrationStatus = "CONFIRMED"
	StatusCancelled RegistrationStatus = "CANCELLED"
)

// Registration is a confirmed purchase row. Relational ids are nullable
// because older imports predate the structured modality/category/gender model.
// swagger:model Registration
type Registration struct {
	ID          string             `json:"id"`
	Protocol    string             `json:"protocol"`
	Status      RegistrationStatus `json:"status"`
	EventID     string             `json:"event_id"`
	ModalityID  *string            `json:"modality_id"`
	CategoryID  *string            `json:"category_id"`
	GenderID    *string            `json:"gender_id"`
	TierID      *string            `json:"tier_id"`
	CouponID    *string            `json:"coupon_id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	CPF         *string            `json:"cpf"`
	Phone       *string            `json:"phone"`
	Birthdate   *time.Time         `json:"birthdate"`
	AddressData *string            `json:"address_data"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// Payment is one payment recorded against a confirmed registration.
type Payment struct {
	ID             string     `json:"id"`
	RegistrationID string     `json:"registration_id"`
	Method         string     `json:"method"`
	PaidAt         *time.Time `json:"paid_at"`
}

// TempRegistration is a registration whose payment has not been confirmed yet.
// Its id doubles as its protocol; it carries no coupon and no payments.
type TempRegistration struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	ModalityID  *string    `json:"modality_id"`
	CategoryID  *string    `json:"category_id"`
	GenderID    *string    `json:"gender_id"`
	TierID      *string    `json:"tier_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	CPF         *string    `json:"cpf"`
	Phone       *string    `json:"phone"`
	Birthdate   *time.Time `json:"birthdate"`
	AddressData *string    `json:"address_data"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Athlete is a federated athlete profile, used as a last-resort identity
// source for unlinked payment transactions.
type Athlete struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegistrationRepository defines read-only storage access for registrations.
type RegistrationRepository interface {
	// GetByProtocols returns the registration whose protocol matches any of
	// the candidate strings, or ErrNotFound.
	GetByProtocols(ctx context.Context, protocols []string) (*Registration, error)
	GetByID(ctx context.Context, id string) (*Registration, error)
	// GetFirstByEventID returns any registration for the event, used to
	// recover a participant identity for unlinked transactions.
	GetFirstByEventID(ctx context.Context, eventID string) (*Registration, error)
	ListPayments(ctx context.Context, registrationID string) ([]*Payment, error)
}

// TempRegistrationRepository defines read-only access to pending registrations.
type TempRegistrationRepository interface {
	// GetByIDs returns the temp registration whose id matches any candidate,
	// or ErrNotFound.
	GetByIDs(ctx context.Context, ids []string) (*TempRegistration, error)
}

// AthleteRepository defines read-only access to athlete profiles.
type AthleteRepository interface {
	GetByID(ctx context.Context, id string) (*Athlete, error)
}
