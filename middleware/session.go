package middleware

import (
	"fartburger/services"

	"github.com/gin-gonic/gin"
)

const (
	SessionHeader = "X-Session-ID"
	storefrontKey = "storefront"
)

// SessionMiddleware attaches the caller's storefront to the request. A missing or
// unknown X-Session-ID starts a new session; the id in use is always echoed back.
func SessionMiddleware(registry *services.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := registry.Resolve(c.GetHeader(SessionHeader))
		c.Header(SessionHeader, store.ID())
		c.Set(storefrontKey, store)
		c.Next()
	}
}

// Storefront returns the session attached by SessionMiddleware.
func Storefront(c *gin.Context) *services.Storefront {
	return c.MustGet(storefrontKey).(*services.Storefront)
}
