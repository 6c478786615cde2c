package controllers

import (
	"net/http"

	"fartburger/middleware"
	"fartburger/models"
	"fartburger/services"

	"github.com/gin-gonic/gin"
)

type DialogController struct{}

// @Summary Open item dialog
// @Description Start customizing a menu item; replaces any open dialog
// @Tags Dialog
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body models.OpenDialogRequest true "Item"
// @Success 200 {object} models.Response{data=models.DialogState}
// @Failure 404 {object} models.ErrorResponse
// @Router /dialog [post]
func (ctrl *DialogController) OpenDialog(c *gin.Context) {
	var req models.OpenDialogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	state, err := middleware.Storefront(c).OpenItem(req.ItemID)
	if err != nil {
		respondError(c, "Failed to open item", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Dialog opened", Data: state})
}

// @Summary Get item dialog
// @Tags Dialog
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} models.Response{data=models.DialogState}
// @Router /dialog [get]
func (ctrl *DialogController) GetDialog(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Dialog retrieved",
		Data:    middleware.Storefront(c).Dialog(),
	})
}

// @Summary Select option
// @Tags Dialog
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body models.SelectOptionRequest true "Option"
// @Success 200 {object} models.Response{data=models.DialogState}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /dialog/options [put]
func (ctrl *DialogController) SelectOption(c *gin.Context) {
	var req models.SelectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	state, err := middleware.Storefront(c).SelectOption(req.Type, req.Label)
	if err != nil {
		respondError(c, "Failed to select option", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Option selected", Data: state})
}

// @Summary Toggle ingredient
// @Description Remove a base ingredient, or put it back
// @Tags Dialog
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body models.IngredientRequest true "Ingredient"
// @Success 200 {object} models.Response{data=models.DialogState}
// @Failure 409 {object} models.ErrorResponse
// @Router /dialog/ingredients/toggle [post]
func (ctrl *DialogController) ToggleIngredient(c *gin.Context) {
	ctrl.editIngredient(c, (*services.Storefront).ToggleIngredient)
}

// @Summary Add extra ingredient
// @Description Add one more unit of an ingredient, at most 3
// @Tags Dialog
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body models.IngredientRequest true "Ingredient"
// @Success 200 {object} models.Response{data=models.DialogState}
// @Failure 409 {object} models.ErrorResponse
// @Router /dialog/ingredients/add [post]
func (ctrl *DialogController) AddIngredient(c *gin.Context) {
	ctrl.editIngredient(c, (*services.Storefront).AddIngredient)
}

// @Summary Remove extra ingredient
// @Description Take back one added unit of an ingredient
// @Tags Dialog
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body models.IngredientRequest true "Ingredient"
// @Success 200 {object} models.Response{data=models.DialogState}
// @Failure 409 {object} models.ErrorResponse
// @Router /dialog/ingredients/remove [post]
func (ctrl *DialogController) RemoveIngredient(c *gin.Context) {
	ctrl.editIngredient(c, (*services.Storefront).RemoveIngredient)
}

func (ctrl *DialogController) editIngredient(c *gin.Context, edit func(*services.Storefront, string) (models.DialogState, error)) {
	var req models.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	state, err := edit(middleware.Storefront(c), req.Name)
	if err != nil {
		respondError(c, "Failed to update ingredients", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Ingredients updated", Data: state})
}

// @Summary Add to cart
// @Description Add the customized item to the cart and close the dialog
// @Tags Dialog
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 201 {object} models.Response{data=models.CartLine}
// @Failure 409 {object} models.ErrorResponse
// @Router /dialog/cart [post]
func (ctrl *DialogController) AddToCart(c *gin.Context) {
	line, err := middleware.Storefront(c).AddToCart()
	if err != nil {
		respondError(c, "Failed to add to cart", err)
		return
	}
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Added to cart", Data: line})
}

// @Summary Close item dialog
// @Tags Dialog
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} models.Response
// @Router /dialog [delete]
func (ctrl *DialogController) CloseDialog(c *gin.Context) {
	middleware.Storefront(c).CloseDialog()
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Dialog closed"})
}
