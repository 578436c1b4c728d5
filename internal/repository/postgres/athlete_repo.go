package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fedoffice/internal/domain"
)

type athleteRepository struct {
	DB *sql.DB
}

func NewAthleteRepository(db *sql.DB) domain.AthleteRepository {
	return &athleteRepository{
		DB: db,
	}
}

func (r *athleteRepository) GetByID(ctx context.Context, id string) (*domain.Athlete, error) {
	query := `
		SELECT id, name, email
		FROM athletes
		WHERE id = $1
	`
	a := &domain.Athlete{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
