package models

type OpenDialogRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type SelectOptionRequest struct {
	Type  OptionType `json:"type" binding:"required"`
	Label string     `json:"label" binding:"required"`
}

type IngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

type TopUpRequest struct {
	Amount int `json:"amount"`
}

type CardTopUpRequest struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	Amount     string `json:"amount"`
}

type PromoCodeRequest struct {
	Code string `json:"code"`
}

type CheckoutRequest struct {
	DeliveryAddress string        `json:"delivery_address"`
	TipAmount       string        `json:"tip_amount"`
	PaymentMethod   PaymentMethod `json:"payment_method" binding:"omitempty,oneof=balance cash"`
}

type SupportRequest struct {
	UserName string `json:"user_name"`
	Message  string `json:"message"`
}

type AdminLoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminReplyRequest struct {
	AdminResponse string `json:"admin_response"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
