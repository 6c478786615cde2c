package controllers

import (
	"net/http"

	"fartburger/middleware"
	"fartburger/models"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{}

// @Summary Edit promo code
// @Description Store the promo text; any change drops an applied discount
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body models.PromoCodeRequest true "Promo code"
// @Success 200 {object} models.Response{data=models.PromoState}
// @Router /promo [put]
func (ctrl *CheckoutController) SetPromoCode(c *gin.Context) {
	var req models.PromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Promo code updated",
		Data:    middleware.Storefront(c).SetPromoCode(req.Code),
	})
}

// @Summary Apply promo code
// @Description Validate the stored promo text with the promo service
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} models.Response{data=models.PromoState}
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /promo/apply [post]
func (ctrl *CheckoutController) ApplyPromo(c *gin.Context) {
	state, err := middleware.Storefront(c).ApplyPromo(c.Request.Context())
	if err != nil {
		respondError(c, "Promo code not applied", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Promo code applied", Data: state})
}

// @Summary Checkout
// @Description Place the order: validates the address, applies discount and tip, settles payment
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body models.CheckoutRequest true "Checkout form"
// @Success 200 {object} models.Response{data=models.CheckoutResult}
// @Failure 400 {object} models.ErrorResponse
// @Failure 402 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := middleware.Storefront(c).Checkout(req)
	if err != nil {
		respondError(c, "Checkout failed", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order placed", Data: result})
}

// @Summary Contact support
// @Description Forward a message to the support service
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body models.SupportRequest true "Message"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /support [post]
func (ctrl *CheckoutController) SendSupport(c *gin.Context) {
	var req models.SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if err := middleware.Storefront(c).SendSupport(c.Request.Context(), req.Message); err != nil {
		respondError(c, "Failed to send message", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Message sent"})
}
