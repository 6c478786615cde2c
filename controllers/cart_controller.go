package controllers

import (
	"net/http"

	"fartburger/middleware"
	"fartburger/models"

	"github.com/gin-gonic/gin"
)

type CartController struct{}

// @Summary Get cart
// @Description Cart lines with totals and readable customization
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} models.Response{data=models.CartState}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    middleware.Storefront(c).Cart(),
	})
}

// @Summary Get storefront
// @Description Full snapshot of the session: balance, cart, dialog, checkout form and promo
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} models.Response{data=models.StorefrontState}
// @Router /storefront [get]
func (ctrl *CartController) GetStorefront(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Storefront retrieved",
		Data:    middleware.Storefront(c).State(),
	})
}
