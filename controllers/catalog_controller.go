package controllers

import (
	"net/http"

	"fartburger/models"
	"fartburger/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// @Summary Get all categories
// @Description Get the menu categories, "all" first
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Category}
// @Router /categories [get]
func (ctrl *CatalogController) GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    ctrl.catalog.GetAllCategories(),
	})
}

// @Summary Get menu
// @Description Get menu items, optionally filtered by category
// @Tags Menu
// @Produce json
// @Param category query string false "Category id" default(all)
// @Success 200 {object} models.Response{data=[]models.MenuItem}
// @Router /menu [get]
func (ctrl *CatalogController) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Menu retrieved",
		Data:    ctrl.catalog.GetMenu(c.DefaultQuery("category", models.CategoryAll)),
	})
}

// @Summary Get menu item
// @Tags Menu
// @Produce json
// @Param id path string true "Menu item id"
// @Success 200 {object} models.Response{data=models.MenuItem}
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [get]
func (ctrl *CatalogController) GetItemByID(c *gin.Context) {
	item, err := ctrl.catalog.GetItemByID(c.Param("id"))
	if err != nil {
		respondError(c, "Menu item not found", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Menu item retrieved",
		Data:    item,
	})
}
