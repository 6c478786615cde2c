package repositories

import (
	"context"
	"errors"
	"strings"

	"fartburger/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PromoRepository struct {
	db *pgxpool.Pool
}

func NewPromoRepository(db *pgxpool.Pool) *PromoRepository {
	return &PromoRepository{db: db}
}

// FindByCode matches case-insensitively.
func (r *PromoRepository) FindByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	query := `SELECT code, discount_in_percent, active FROM promo_codes WHERE UPPER(code) = $1`

	promo := &models.PromoCode{}
	err := r.db.QueryRow(ctx, query, strings.ToUpper(code)).Scan(
		&promo.Code,
		&promo.DiscountPercent,
		&promo.Active,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return promo, nil
}
