package libs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fartburger/models"
)

type PromoClient struct {
	baseURL string
	http    *http.Client
}

func NewPromoClient(baseURL string, timeout time.Duration) *PromoClient {
	return &PromoClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Validate asks the promo endpoint about code. A 404 is the endpoint's way of saying
// the code does not exist, so it is decoded like any other verdict.
func (c *PromoClient) Validate(ctx context.Context, code string) (models.PromoValidation, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return models.PromoValidation{}, fmt.Errorf("invalid promo endpoint: %w", err)
	}
	q := u.Query()
	q.Set("code", code)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return models.PromoValidation{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.PromoValidation{}, fmt.Errorf("promo request failed: %w", err)
	}
	defer resp.Body.Close()

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok && resp.StatusCode != http.StatusNotFound {
		return models.PromoValidation{}, fmt.Errorf("promo endpoint returned status %d", resp.StatusCode)
	}

	var result models.PromoValidation
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.PromoValidation{}, fmt.Errorf("failed to decode promo response: %w", err)
	}
	if !ok {
		result.Valid = false
	}
	return result, nil
}
