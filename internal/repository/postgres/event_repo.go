package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fedoffice/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, start_date, end_date, is_free
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var startNull, endNull sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &startNull, &endNull, &e.IsFree,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if startNull.Valid {
		e.StartDate = &startNull.Time
	}
	if endNull.Valid {
		e.EndDate = &endNull.Time
	}
	return e, nil
}
