package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWallet_TopUp(t *testing.T) {
	var w Wallet

	assert.True(t, w.TopUp(500))
	assert.False(t, w.TopUp(0))
	assert.False(t, w.TopUp(-100))
	assert.Equal(t, 500, w.Balance())

	for _, amount := range QuickTopUps {
		w.TopUp(amount)
	}
	assert.Equal(t, 2100, w.Balance())
}

func TestCardValidator(t *testing.T) {
	v := NewCardValidator()

	tests := []struct {
		name    string
		number  string
		expiry  string
		cvv     string
		wantErr bool
	}{
		{name: "valid with separators", number: "2202 1234 5678 9012", expiry: "12/25", cvv: "123"},
		{name: "valid plain", number: "2202123456789012", expiry: "0130", cvv: "999"},
		{name: "wrong prefix", number: "4111 1111 1111 1111", expiry: "12/25", cvv: "123", wantErr: true},
		{name: "short number", number: "2202 1234 5678 901", expiry: "12/25", cvv: "123", wantErr: true},
		{name: "month 13", number: "2202123456789012", expiry: "13/25", cvv: "123", wantErr: true},
		{name: "month 00", number: "2202123456789012", expiry: "00/25", cvv: "123", wantErr: true},
		{name: "short expiry", number: "2202123456789012", expiry: "1/25", cvv: "123", wantErr: true},
		{name: "short cvv", number: "2202123456789012", expiry: "12/25", cvv: "12", wantErr: true},
		{name: "empty form", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(NormalizeCard(tt.number, tt.expiry, tt.cvv))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPaymentFormatInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCardValidator_MessageNamesFirstBadField(t *testing.T) {
	v := NewCardValidator()

	err := v.Validate(NormalizeCard("2202123456789012", "13/25", "1"))
	assert.ErrorContains(t, err, "month must be between 01 and 12")

	err = v.Validate(NormalizeCard("1234", "13/25", "1"))
	assert.ErrorContains(t, err, "card number must start with 2202")
}
