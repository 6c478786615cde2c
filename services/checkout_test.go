package services

import (
	"testing"

	"fartburger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout(t *testing.T) {
	tests := []struct {
		name    string
		in      CheckoutInput
		want    models.CheckoutResult
		wantErr error
	}{
		{
			name: "balance payment debits final total",
			in: CheckoutInput{
				DeliveryAddress: "ул. Ленина, 5",
				TipAmount:       "10",
				PaymentMethod:   models.PaymentBalance,
				WalletBalance:   500,
				CartTotal:       199,
			},
			want: models.CheckoutResult{
				Subtotal: 199, Tip: 10, FinalTotal: 209,
				PaymentMethod: models.PaymentBalance, NewBalance: 291,
			},
		},
		{
			name: "discount rounds half up",
			in: CheckoutInput{
				DeliveryAddress: "Пушкина 10",
				WalletBalance:   1000,
				CartTotal:       199,
				DiscountPercent: 10,
			},
			want: models.CheckoutResult{
				Subtotal: 199, DiscountPercent: 10, DiscountAmount: 20, FinalTotal: 179,
				PaymentMethod: models.PaymentBalance, NewBalance: 821,
			},
		},
		{
			name: "cash leaves balance untouched",
			in: CheckoutInput{
				DeliveryAddress: "дом 1",
				PaymentMethod:   models.PaymentCash,
				WalletBalance:   0,
				CartTotal:       300,
			},
			want: models.CheckoutResult{
				Subtotal: 300, FinalTotal: 300,
				PaymentMethod: models.PaymentCash, NewBalance: 0,
			},
		},
		{
			name: "exact balance is enough",
			in: CheckoutInput{
				DeliveryAddress: "дом 1",
				TipAmount:       "1",
				WalletBalance:   100,
				CartTotal:       99,
			},
			want: models.CheckoutResult{
				Subtotal: 99, Tip: 1, FinalTotal: 100,
				PaymentMethod: models.PaymentBalance, NewBalance: 0,
			},
		},
		{
			name: "negative tip counts as zero",
			in: CheckoutInput{
				DeliveryAddress: "дом 1",
				TipAmount:       "-50",
				WalletBalance:   100,
				CartTotal:       100,
			},
			want: models.CheckoutResult{
				Subtotal: 100, FinalTotal: 100,
				PaymentMethod: models.PaymentBalance, NewBalance: 0,
			},
		},
		{
			name: "percent above 100 is clamped",
			in: CheckoutInput{
				DeliveryAddress: "дом 1",
				WalletBalance:   0,
				CartTotal:       250,
				DiscountPercent: 150,
			},
			want: models.CheckoutResult{
				Subtotal: 250, DiscountPercent: 100, DiscountAmount: 250, FinalTotal: 0,
				PaymentMethod: models.PaymentBalance, NewBalance: 0,
			},
		},
		{
			name: "address without digits",
			in: CheckoutInput{
				DeliveryAddress: "ул. Ленина",
				WalletBalance:   1000,
				CartTotal:       100,
			},
			wantErr: ErrInvalidAddress,
		},
		{
			name: "address is checked before funds",
			in: CheckoutInput{
				DeliveryAddress: "",
				WalletBalance:   0,
				CartTotal:       100,
			},
			wantErr: ErrInvalidAddress,
		},
		{
			name: "tip can make funds insufficient",
			in: CheckoutInput{
				DeliveryAddress: "дом 1",
				TipAmount:       "5",
				WalletBalance:   100,
				CartTotal:       99,
			},
			wantErr: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Checkout(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.CheckoutResult{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscountAmount(t *testing.T) {
	assert.Equal(t, 0, DiscountAmount(0, 50))
	assert.Equal(t, 0, DiscountAmount(100, 0))
	assert.Equal(t, 0, DiscountAmount(100, -5))
	assert.Equal(t, 10, DiscountAmount(99, 10))
	assert.Equal(t, 5, DiscountAmount(45, 11))
	assert.Equal(t, 15, DiscountAmount(30, 50))
	assert.Equal(t, 250, DiscountAmount(250, 120))
}

func TestParseLeadingInt(t *testing.T) {
	cases := map[string]int{
		"":       0,
		"abc":    0,
		"12":     12,
		"  42  ": 42,
		"12abc":  12,
		"3.7":    3,
		"-20":    -20,
		"+7":     7,
		"-":      0,
		"1e3":    1,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLeadingInt(in), "input %q", in)
	}
}
