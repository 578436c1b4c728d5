package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"fedoffice/internal/domain"
)

type tempRegistrationRepository struct {
	DB *sql.DB
}

func NewTempRegistrationRepository(db *sql.DB) domain.TempRegistrationRepository {
	return &tempRegistrationRepository{
		DB: db,
	}
}

func (r *tempRegistrationRepository) GetByIDs(ctx context.Context, ids []string) (*domain.TempRegistration, error) {
	query := `
		SELECT id, event_id, modality_id, category_id, gender_id, tier_id,
			name, email, cpf, phone, birthdate, address_data, created_at, updated_at
		FROM temp_registrations
		WHERE id = ANY($1)
		ORDER BY created_at DESC
		LIMIT 1
	`
	t := &domain.TempRegistration{}
	var modalityID, categoryID, genderID, tierID sql.NullString
	var cpf, phone, addressData sql.NullString
	var birthdate sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, pq.Array(ids)).Scan(
		&t.ID, &t.EventID, &modalityID, &categoryID, &genderID, &tierID,
		&t.Name, &t.Email, &cpf, &phone, &birthdate, &addressData,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if modalityID.Valid {
		t.ModalityID = &modalityID.String
	}
	if categoryID.Valid {
		t.CategoryID = &categoryID.String
	}
	if genderID.Valid {
		t.GenderID = &genderID.String
	}
	if tierID.Valid {
		t.TierID = &tierID.String
	}
	if cpf.Valid {
		t.CPF = &cpf.String
	}
	if phone.Valid {
		t.Phone = &phone.String
	}
	if birthdate.Valid {
		t.Birthdate = &birthdate.Time
	}
	if addressData.Valid {
		t.AddressData = &addressData.String
	}
	return t, nil
}
