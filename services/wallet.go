package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// QuickTopUps are the preset amounts offered next to the free-form field.
var QuickTopUps = []int{100, 500, 1000}

type Wallet struct {
	balance int
}

func (w *Wallet) Balance() int {
	return w.balance
}

// TopUp credits a positive amount and reports whether anything changed.
func (w *Wallet) TopUp(amount int) bool {
	if amount <= 0 {
		return false
	}
	w.balance += amount
	return true
}

func (w *Wallet) settle(newBalance int) {
	w.balance = newBalance
}

// CardPrefix is the only card range accepted by the top-up form.
const CardPrefix = "2202"

// CardDetails is the normalized content of the top-up form. This is a format check
// only, nothing is ever charged.
type CardDetails struct {
	Number string `validate:"len=16,number,startswith=2202"`
	Expiry string `validate:"len=4,number,expmonth"`
	CVV    string `validate:"len=3,number"`
}

type CardValidator struct {
	validate *validator.Validate
}

func NewCardValidator() *CardValidator {
	v := validator.New()
	v.RegisterValidation("expmonth", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) < 2 {
			return false
		}
		month, err := strconv.Atoi(s[:2])
		return err == nil && month >= 1 && month <= 12
	})
	return &CardValidator{validate: v}
}

// NormalizeCard strips the separators the form inserts ("2202 1234 ...", "MM/YY").
func NormalizeCard(number, expiry, cvv string) CardDetails {
	return CardDetails{
		Number: digitsOnly(number),
		Expiry: digitsOnly(expiry),
		CVV:    digitsOnly(cvv),
	}
}

func (v *CardValidator) Validate(card CardDetails) error {
	err := v.validate.Struct(card)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrPaymentFormatInvalid, err)
	}

	first := verrs[0]
	switch {
	case first.Field() == "Number":
		return fmt.Errorf("%w: card number must start with %s and contain 16 digits", ErrPaymentFormatInvalid, CardPrefix)
	case first.Field() == "Expiry" && first.Tag() == "expmonth":
		return fmt.Errorf("%w: month must be between 01 and 12", ErrPaymentFormatInvalid)
	case first.Field() == "Expiry":
		return fmt.Errorf("%w: expiry must be in MM/YY format", ErrPaymentFormatInvalid)
	default:
		return fmt.Errorf("%w: CVV must contain 3 digits", ErrPaymentFormatInvalid)
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
