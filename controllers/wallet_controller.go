package controllers

import (
	"net/http"

	"fartburger/middleware"
	"fartburger/models"

	"github.com/gin-gonic/gin"
)

type WalletController struct{}

type walletData struct {
	Balance int  `json:"balance"`
	Applied bool `json:"applied"`
}

// @Summary Top up balance
// @Description Add funds to the mock wallet; non-positive amounts are ignored
// @Tags Wallet
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body models.TopUpRequest true "Amount"
// @Success 200 {object} models.Response
// @Router /wallet/topup [post]
func (ctrl *WalletController) TopUp(c *gin.Context) {
	var req models.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	balance, applied := middleware.Storefront(c).TopUp(req.Amount)
	message := "Balance topped up"
	if !applied {
		message = "Amount must be positive, balance unchanged"
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data:    walletData{Balance: balance, Applied: applied},
	})
}

// @Summary Top up with card form
// @Description Checks the card fields by format only, then tops up. No payment is made.
// @Tags Wallet
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body models.CardTopUpRequest true "Card form"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /wallet/card [post]
func (ctrl *WalletController) CardTopUp(c *gin.Context) {
	var req models.CardTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	balance, applied, err := middleware.Storefront(c).TopUpWithCard(req)
	if err != nil {
		respondError(c, "Invalid card details", err)
		return
	}
	message := "Balance topped up"
	if !applied {
		message = "Amount must be positive, balance unchanged"
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data:    walletData{Balance: balance, Applied: applied},
	})
}
