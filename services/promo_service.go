package services

import (
	"context"
	"errors"
	"strings"

	"fartburger/models"
	"fartburger/repositories"
)

const (
	promoNotFoundMessage = "Промокод не найден"
	promoInactiveMessage = "Промокод не активен"
)

type PromoRepository interface {
	FindByCode(ctx context.Context, code string) (*models.PromoCode, error)
}

// PromoService answers promo lookups for the public validation endpoint.
type PromoService struct {
	promoRepo PromoRepository
}

func NewPromoService(repo PromoRepository) *PromoService {
	return &PromoService{promoRepo: repo}
}

// Lookup trims and upper-cases code. Unknown codes come back as a rejection with
// found=false; a blank code is ErrInvalidPromoFormat.
func (s *PromoService) Lookup(ctx context.Context, code string) (verdict models.PromoValidation, found bool, err error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return models.PromoValidation{}, false, ErrInvalidPromoFormat
	}

	promo, err := s.promoRepo.FindByCode(ctx, code)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.PromoValidation{Valid: false, Error: promoNotFoundMessage}, false, nil
	}
	if err != nil {
		return models.PromoValidation{}, false, err
	}

	if !promo.Active {
		return models.PromoValidation{Valid: false, Error: promoInactiveMessage}, true, nil
	}
	return models.PromoValidation{
		Valid:           true,
		Code:            promo.Code,
		DiscountPercent: clampPercent(promo.DiscountPercent),
	}, true, nil
}
