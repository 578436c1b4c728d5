package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"fedoffice/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

const registrationColumns = `
	id, protocol, status, event_id, modality_id, category_id, gender_id,
	tier_id, coupon_id, name, email, cpf, phone, birthdate, address_data,
	created_at, updated_at
`

func scanRegistration(row *sql.Row) (*domain.Registration, error) {
	reg := &domain.Registration{}
	var modalityID, categoryID, genderID, tierID, couponID sql.NullString
	var cpf, phone, addressData sql.NullString
	var birthdate sql.NullTime
	err := row.Scan(
		&reg.ID, &reg.Protocol, &reg.Status, &reg.EventID,
		&modalityID, &categoryID, &genderID, &tierID, &couponID,
		&reg.Name, &reg.Email, &cpf, &phone, &birthdate, &addressData,
		&reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if modalityID.Valid {
		reg.ModalityID = &modalityID.String
	}
	if categoryID.Valid {
		reg.CategoryID = &categoryID.String
	}
	if genderID.Valid {
		reg.GenderID = &genderID.String
	}
	if tierID.Valid {
		reg.TierID = &tierID.String
	}
	if couponID.Valid {
		reg.CouponID = &couponID.String
	}
	if cpf.Valid {
		reg.CPF = &cpf.String
	}
	if phone.Valid {
		reg.Phone = &phone.String
	}
	if birthdate.Valid {
		reg.Birthdate = &birthdate.Time
	}
	if addressData.Valid {
		reg.AddressData = &addressData.String
	}
	return reg, nil
}

func (r *registrationRepository) GetByProtocols(ctx context.Context, protocols []string) (*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE protocol = ANY($1)
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanRegistration(r.DB.QueryRowContext(ctx, query, pq.Array(protocols)))
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE id = $1
	`
	return scanRegistration(r.DB.QueryRowContext(ctx, query, id))
}

func (r *registrationRepository) GetFirstByEventID(ctx context.Context, eventID string) (*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_id = $1
		ORDER BY created_at ASC
		LIMIT 1
	`
	return scanRegistration(r.DB.QueryRowContext(ctx, query, eventID))
}

func (r *registrationRepository) ListPayments(ctx context.Context, registrationID string) ([]*domain.Payment, error) {
	query := `
		SELECT id, registration_id, method, paid_at
		FROM payments
		WHERE registration_id = $1
		ORDER BY paid_at DESC NULLS LAST
	`
	rows, err := r.DB.QueryContext(ctx, query, registrationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		p := &domain.Payment{}
		var paidAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.RegistrationID, &p.Method, &paidAt); err != nil {
			return nil, err
		}
		if paidAt.Valid {
			p.PaidAt = &paidAt.Time
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
