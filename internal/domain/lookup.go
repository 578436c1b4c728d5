package domain

import (
	"context"
	"time"
)

// RegistrationDetails is the canonical record assembled by the lookup
// resolver. Field names follow the dashboard contract: raw foreign keys are
// lowercase (modalityid, addressdata), display labels are camelCase. Every
// field that cannot be determined is null; conditional fields (paidAmount,
// originalPrice, discount data) are present only when meaningful.
// swagger:model RegistrationDetails
type RegistrationDetails struct {
	ID       string  `json:"id"`
	Protocol string  `json:"protocol"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	EventID  *string `json:"eventId"`

	EventTitle *string `json:"eventTitle"`

	ModalityID *string `json:"modalityid"`
	CategoryID *string `json:"categoryid"`
	GenderID   *string `json:"genderid"`
	TierID     *string `json:"tierid"`

	ModalityName *string `json:"modalityName"`
	CategoryName *string `json:"categoryName"`
	GenderName   *string `json:"genderName"`
	TierName     *string `json:"tierName"`

	Price              float64  `json:"price"`
	PaidAmount         *float64 `json:"paidAmount,omitempty"`
	OriginalPrice      *float64 `json:"originalPrice,omitempty"`
	DiscountAmount     *float64 `json:"discountAmount,omitempty"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	CouponCode         *string  `json:"couponCode,omitempty"`
	IsFree             bool     `json:"isFree"`

	Status        RegistrationStatus `json:"status"`
	PaymentMethod *string            `json:"paymentMethod,omitempty"`
	PaymentDate   *time.Time         `json:"paymentDate,omitempty"`

	EventStartDate *time.Time `json:"eventStartDate,omitempty"`
	EventEndDate   *time.Time `json:"eventEndDate,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	CPF         *string        `json:"cpf"`
	Phone       *string        `json:"phone"`
	Birthdate   *time.Time     `json:"birthdate"`
	AddressData map[string]any `json:"addressdata"`
}

// LookupService resolves a protocol string into the canonical registration
// record, or ErrNotFound when no source holds it.
type LookupService interface {
	GetByProtocol(ctx context.Context, protocol string) (*RegistrationDetails, error)
}

// SummaryService sends a resolved registration summary by email.
type SummaryService interface {
	EmailSummary(ctx context.Context, protocol, to string) error
}

// AuthService authenticates a back-office operator and issues a token.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated operator.
type TokenIssuer interface {
	Issue(subject, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// PasswordVerifier compares a stored hash against a candidate password.
type PasswordVerifier interface {
	Compare(hash, password string) error
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the
// given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}
