package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fedoffice/internal/domain"
)

type labelRepository struct {
	DB *sql.DB
}

// NewLabelRepository returns a LabelRepository over the modality/category/
// gender lookup tables.
func NewLabelRepository(db *sql.DB) domain.LabelRepository {
	return &labelRepository{
		DB: db,
	}
}

func (r *labelRepository) getName(ctx context.Context, table, id string) (string, error) {
	query := fmt.Sprintf(`SELECT name FROM %s WHERE id = $1`, table)
	var name string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return name, nil
}

func (r *labelRepository) GetModalityName(ctx context.Context, id string) (string, error) {
	return r.getName(ctx, "modalities", id)
}

func (r *labelRepository) GetCategoryName(ctx context.Context, id string) (string, error) {
	return r.getName(ctx, "categories", id)
}

func (r *labelRepository) GetGenderName(ctx context.Context, id string) (string, error) {
	return r.getName(ctx, "genders", id)
}
