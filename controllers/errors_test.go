package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fartburger/services"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusPaymentRequired, statusFor(services.ErrInsufficientFunds))
	assert.Equal(t, http.StatusBadGateway, statusFor(fmt.Errorf("%w: timeout", services.ErrNetworkFailure)))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(fmt.Errorf("%w: expired", services.ErrPromoRejected)))
	assert.Equal(t, http.StatusNotFound, statusFor(services.ErrMessageNotFound))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("database is down")))
}
