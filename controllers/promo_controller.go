package controllers

import (
	"net/http"

	"fartburger/models"
	"fartburger/services"

	"github.com/gin-gonic/gin"
)

type PromoController struct {
	promo *services.PromoService
}

func NewPromoController(promo *services.PromoService) *PromoController {
	return &PromoController{promo: promo}
}

// @Summary Validate promo code
// @Description Promo validation endpoint used by the storefront
// @Tags Backend
// @Produce json
// @Param code query string true "Promo code"
// @Success 200 {object} models.PromoValidation
// @Failure 400 {object} models.PromoValidation
// @Failure 404 {object} models.PromoValidation
// @Router /api/promo [get]
func (ctrl *PromoController) ValidatePromo(c *gin.Context) {
	verdict, found, err := ctrl.promo.Lookup(c.Request.Context(), c.Query("code"))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, models.PromoValidation{Valid: false, Error: err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, verdict)
		return
	}
	c.JSON(http.StatusOK, verdict)
}
