package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"fedoffice/internal/domain"
)

type transactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) domain.TransactionRepository {
	return &transactionRepository{
		DB: db,
	}
}

func (r *transactionRepository) GetByProtocolOrExternalID(ctx context.Context, candidates []string) (*domain.PaymentTransaction, error) {
	query := `
		SELECT id, protocol, external_id, entity_id, entity_type, amount,
			description, metadata, payment_method, created_at
		FROM payment_transactions
		WHERE protocol = ANY($1) OR external_id = ANY($1)
		ORDER BY created_at DESC
		LIMIT 1
	`
	tx := &domain.PaymentTransaction{}
	var entityID, description, paymentMethod sql.NullString
	err := r.DB.QueryRowContext(ctx, query, pq.Array(candidates)).Scan(
		&tx.ID, &tx.Protocol, &tx.ExternalID, &entityID, &tx.EntityType,
		&tx.Amount, &description, &tx.Metadata, &paymentMethod, &tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if entityID.Valid {
		tx.EntityID = &entityID.String
	}
	if description.Valid {
		tx.Description = &description.String
	}
	if paymentMethod.Valid {
		tx.PaymentMethod = &paymentMethod.String
	}
	return tx, nil
}
