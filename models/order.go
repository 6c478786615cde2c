package models

type PaymentMethod string

const (
	PaymentBalance PaymentMethod = "balance"
	PaymentCash    PaymentMethod = "cash"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentBalance || p == PaymentCash
}

// CheckoutForm holds the cart sheet fields that survive until a successful checkout.
type CheckoutForm struct {
	DeliveryAddress string        `json:"delivery_address"`
	TipAmount       string        `json:"tip_amount"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PromoCode       string        `json:"promo_code"`
}

type CheckoutResult struct {
	Subtotal        int           `json:"subtotal"`
	DiscountPercent int           `json:"discount_percent"`
	DiscountAmount  int           `json:"discount_amount"`
	Tip             int           `json:"tip"`
	FinalTotal      int           `json:"final_total"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	NewBalance      int           `json:"new_balance"`
}
