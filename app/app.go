package app

import (
	"log"

	"fartburger/config"
	"fartburger/libs"
	"fartburger/middleware"
	"fartburger/repositories"
	"fartburger/routes"
	"fartburger/services"

	"github.com/gin-gonic/gin"
)

// App is the wired HTTP application shared by the server binary and the
// serverless entrypoint.
type App struct {
	Router   *gin.Engine
	Registry *services.SessionRegistry
}

// New builds every service from config.AppConfig. ConnectDB and InitRedis must
// have run first; a nil pool or client selects the in-memory fallback.
func New(router *gin.Engine) (*App, error) {
	cfg := config.AppConfig

	catalogRepo, err := repositories.NewCatalogRepository()
	if err != nil {
		return nil, err
	}
	catalog := services.NewCatalogService(catalogRepo)

	var (
		promoRepo   services.PromoRepository
		supportRepo services.SupportRepository
	)
	if config.DB != nil {
		promoRepo = repositories.NewPromoRepository(config.DB)
		supportRepo = repositories.NewSupportRepository(config.DB)
	} else {
		promoRepo = repositories.NewMemoryPromoRepository(repositories.DefaultPromoCodes())
		supportRepo = repositories.NewMemorySupportRepository(repositories.DefaultSupportMessages())
	}

	var sessions services.SessionStore
	if config.RedisClient != nil {
		sessions = services.NewRedisSessionStore(config.RedisClient)
	} else {
		sessions = services.NewMemorySessionStore()
	}

	credentials, err := services.NewStaticCredentials(cfg.AdminLogin, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	registry := services.NewSessionRegistry(services.StorefrontDeps{
		Catalog: catalog,
		Promo:   libs.NewPromoClient(cfg.PromoAPIURL, cfg.RemoteTimeout),
		Support: libs.NewSupportClient(cfg.SupportAPIURL, cfg.RemoteTimeout),
		Cards:   services.NewCardValidator(),
	})

	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, routes.Dependencies{
		Catalog:  catalog,
		Registry: registry,
		Promo:    services.NewPromoService(promoRepo),
		Support:  services.NewSupportService(supportRepo),
		Auth:     services.NewAuthService(credentials, sessions, cfg.JWTSecret, cfg.AdminSessionTTL),
	})

	log.Printf("Promo endpoint: %s", cfg.PromoAPIURL)
	log.Printf("Support endpoint: %s", cfg.SupportAPIURL)

	return &App{Router: router, Registry: registry}, nil
}
