package routes

import (
	"fartburger/controllers"
	"fartburger/handler"
	"fartburger/middleware"
	"fartburger/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Dependencies struct {
	Catalog  *services.CatalogService
	Registry *services.SessionRegistry
	Promo    *services.PromoService
	Support  *services.SupportService
	Auth     *services.AuthService
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	catalogCtrl := controllers.NewCatalogController(deps.Catalog)
	promoCtrl := controllers.NewPromoController(deps.Promo)
	supportCtrl := controllers.NewSupportController(deps.Support)
	adminCtrl := controllers.NewAdminController(deps.Auth)
	dialogCtrl := &controllers.DialogController{}
	cartCtrl := &controllers.CartController{}
	walletCtrl := &controllers.WalletController{}
	checkoutCtrl := &controllers.CheckoutController{}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", gin.WrapF(handler.Handler))

	router.GET("/categories", catalogCtrl.GetAllCategories)
	router.GET("/menu", catalogCtrl.GetMenu)
	router.GET("/menu/:id", catalogCtrl.GetItemByID)

	router.GET("/api/promo", promoCtrl.ValidatePromo)
	router.POST("/api/support", supportCtrl.Submit)

	store := router.Group("/")
	store.Use(middleware.SessionMiddleware(deps.Registry))
	{
		store.GET("/storefront", cartCtrl.GetStorefront)
		store.GET("/cart", cartCtrl.GetCart)

		store.POST("/dialog", dialogCtrl.OpenDialog)
		store.GET("/dialog", dialogCtrl.GetDialog)
		store.DELETE("/dialog", dialogCtrl.CloseDialog)
		store.PUT("/dialog/options", dialogCtrl.SelectOption)
		store.POST("/dialog/ingredients/toggle", dialogCtrl.ToggleIngredient)
		store.POST("/dialog/ingredients/add", dialogCtrl.AddIngredient)
		store.POST("/dialog/ingredients/remove", dialogCtrl.RemoveIngredient)
		store.POST("/dialog/cart", dialogCtrl.AddToCart)

		store.POST("/wallet/topup", walletCtrl.TopUp)
		store.POST("/wallet/card", walletCtrl.CardTopUp)

		store.PUT("/promo", checkoutCtrl.SetPromoCode)
		store.POST("/promo/apply", checkoutCtrl.ApplyPromo)
		store.POST("/checkout", checkoutCtrl.Checkout)
		store.POST("/support", checkoutCtrl.SendSupport)
	}

	router.POST("/admin/login", adminCtrl.Login)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminMiddleware(deps.Auth))
	{
		admin.POST("/logout", adminCtrl.Logout)
		admin.GET("/session", adminCtrl.Session)
		admin.GET("/messages", supportCtrl.List)
		admin.PUT("/messages/:id", supportCtrl.Reply)
	}
}
