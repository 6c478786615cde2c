package models

type DialogState struct {
	Open          bool           `json:"open"`
	Item          *MenuItem      `json:"item,omitempty"`
	Customization *Customization `json:"customization,omitempty"`
	Price         int            `json:"price"`
	Surcharge     int            `json:"surcharge"`
}

type CartState struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"item_count"`
	Total     int        `json:"total"`
}

type PromoState struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
	Applied         bool   `json:"applied"`
}

type StorefrontState struct {
	SessionID string       `json:"session_id"`
	Balance   int          `json:"balance"`
	Cart      CartState    `json:"cart"`
	Dialog    DialogState  `json:"dialog"`
	Form      CheckoutForm `json:"form"`
	Promo     PromoState   `json:"promo"`
	// QuickTopUps are the preset amounts offered next to the free-form top-up field.
	QuickTopUps []int `json:"quick_top_ups"`
	// Preview is cart total after discount plus tip, as shown next to the checkout button.
	Preview int `json:"preview_total"`
}

// PromoValidation is the remote validator's answer.
type PromoValidation struct {
	Valid           bool   `json:"valid"`
	Code            string `json:"code,omitempty"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
	Error           string `json:"error,omitempty"`
}
