package controllers

import (
	"errors"
	"net/http"

	"fartburger/models"
	"fartburger/services"

	"github.com/gin-gonic/gin"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{services.ErrInvalidAddress, http.StatusBadRequest},
	{services.ErrInsufficientFunds, http.StatusPaymentRequired},
	{services.ErrInvalidPromoFormat, http.StatusBadRequest},
	{services.ErrPromoRejected, http.StatusUnprocessableEntity},
	{services.ErrPaymentFormatInvalid, http.StatusBadRequest},
	{services.ErrSupportMessageEmpty, http.StatusBadRequest},
	{services.ErrNetworkFailure, http.StatusBadGateway},
	{services.ErrEmptyCart, http.StatusBadRequest},
	{services.ErrDialogClosed, http.StatusConflict},
	{services.ErrItemNotFound, http.StatusNotFound},
	{services.ErrInvalidOption, http.StatusBadRequest},
	{services.ErrMessageNotFound, http.StatusNotFound},
	{services.ErrEmptyReply, http.StatusBadRequest},
	{services.ErrUnauthorized, http.StatusUnauthorized},
	{services.ErrSessionExpired, http.StatusUnauthorized},
}

func statusFor(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, message string, err error) {
	c.JSON(statusFor(err), models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   err.Error(),
	})
}
