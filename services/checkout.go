package services

import (
	"regexp"
	"strings"

	"fartburger/models"
)

var houseNumber = regexp.MustCompile(`\d`)

type CheckoutInput struct {
	DeliveryAddress string
	TipAmount       string
	PaymentMethod   models.PaymentMethod
	WalletBalance   int
	CartTotal       int
	DiscountPercent int
}

// Checkout validates an order and settles it against the wallet. Checks run in a
// fixed order and the first failure is returned.
func Checkout(in CheckoutInput) (models.CheckoutResult, error) {
	if !houseNumber.MatchString(in.DeliveryAddress) {
		return models.CheckoutResult{}, ErrInvalidAddress
	}

	discount := DiscountAmount(in.CartTotal, in.DiscountPercent)
	tip := max(0, ParseLeadingInt(in.TipAmount))
	final := in.CartTotal - discount + tip

	method := in.PaymentMethod
	if method == "" {
		method = models.PaymentBalance
	}

	if method == models.PaymentBalance && in.WalletBalance < final {
		return models.CheckoutResult{}, ErrInsufficientFunds
	}

	balance := in.WalletBalance
	if method == models.PaymentBalance {
		balance -= final
	}

	return models.CheckoutResult{
		Subtotal:        in.CartTotal,
		DiscountPercent: clampPercent(in.DiscountPercent),
		DiscountAmount:  discount,
		Tip:             tip,
		FinalTotal:      final,
		PaymentMethod:   method,
		NewBalance:      balance,
	}, nil
}

// DiscountAmount rounds half up, matching the storefront's displayed totals.
func DiscountAmount(total, percent int) int {
	percent = clampPercent(percent)
	if total <= 0 || percent == 0 {
		return 0
	}
	return (total*percent + 50) / 100
}

func clampPercent(p int) int {
	return min(max(p, 0), 100)
}

// ParseLeadingInt reads an optionally signed run of leading digits after any
// whitespace and ignores the rest ("12abc" is 12, "3.7" is 3). Anything else is 0.
func ParseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	sign := 1
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		if n > (1<<31)/10 {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	if digits == 0 {
		return 0
	}
	return sign * n
}
