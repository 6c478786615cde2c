package services

import "errors"

var (
	ErrInvalidAddress       = errors.New("delivery address must contain a house number")
	ErrInsufficientFunds    = errors.New("insufficient balance")
	ErrInvalidPromoFormat   = errors.New("promo code is required")
	ErrPromoRejected        = errors.New("promo code rejected")
	ErrPaymentFormatInvalid = errors.New("invalid card details")
	ErrSupportMessageEmpty  = errors.New("support message is empty")
	ErrNetworkFailure       = errors.New("remote service unavailable")

	ErrEmptyCart       = errors.New("cart is empty")
	ErrDialogClosed    = errors.New("no item dialog is open")
	ErrItemNotFound    = errors.New("menu item not found")
	ErrInvalidOption   = errors.New("invalid option choice")
	ErrMessageNotFound = errors.New("support message not found")
	ErrEmptyReply      = errors.New("admin response is required")
	ErrUnauthorized    = errors.New("invalid login or password")
	ErrSessionExpired  = errors.New("admin session expired")
)
