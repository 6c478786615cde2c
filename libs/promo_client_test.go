package libs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fartburger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromoClient_Validate(t *testing.T) {
	var gotCode string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCode = r.URL.Query().Get("code")
		w.Header().Set("Content-Type", "application/json")
		switch gotCode {
		case "FART10":
			w.Write([]byte(`{"valid":true,"code":"FART10","discount_percent":10}`))
		case "NOPE":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"valid":false,"error":"Промокод не найден"}`))
		case "LIAR":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"valid":true,"discount_percent":90}`))
		case "BROKEN":
			w.Write([]byte(`not json`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := NewPromoClient(srv.URL+"/api/promo", time.Second)
	ctx := context.Background()

	result, err := client.Validate(ctx, "FART10")
	require.NoError(t, err)
	assert.Equal(t, "FART10", gotCode)
	assert.Equal(t, models.PromoValidation{Valid: true, Code: "FART10", DiscountPercent: 10}, result)

	result, err = client.Validate(ctx, "NOPE")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "Промокод не найден", result.Error)

	result, err = client.Validate(ctx, "LIAR")
	require.NoError(t, err)
	assert.False(t, result.Valid)

	_, err = client.Validate(ctx, "BROKEN")
	assert.Error(t, err)

	_, err = client.Validate(ctx, "CRASH")
	assert.ErrorContains(t, err, "status 500")
}

func TestPromoClient_EscapesCode(t *testing.T) {
	var raw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw = r.URL.Query().Get("code")
		w.Write([]byte(`{"valid":false}`))
	}))
	defer srv.Close()

	_, err := NewPromoClient(srv.URL, time.Second).Validate(context.Background(), "A&B=C")
	require.NoError(t, err)
	assert.Equal(t, "A&B=C", raw)
}

func TestPromoClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewPromoClient(url, time.Second).Validate(context.Background(), "FART10")
	assert.Error(t, err)
}
