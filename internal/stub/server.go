// Package stub is an in-memory double of the Holidaysri backend used by
// the test suite and the local dev loop. It implements the exact envelope
// and route contract the client consumes; it is not the production backend
// and holds no state beyond its own process.
package stub

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Options configures a stub server instance
type Options struct {
	JWTSecret      string
	JWTIssuer      string
	AllowedOrigins []string
	// DisableRateLimit removes the per-IP limiter; tests hammering the
	// server from one address set this.
	DisableRateLimit bool
}

// NewRouter assembles the stub's gin engine
func NewRouter(opts Options) *gin.Engine {
	if opts.JWTSecret == "" {
		opts.JWTSecret = "holidaysri-dev-secret"
	}
	if opts.JWTIssuer == "" {
		opts.JWTIssuer = "holidaysri-stub"
	}

	tokens := NewTokenManager(opts.JWTSecret, opts.JWTIssuer, 24*time.Hour)
	h := &handlers{store: newMemoryStore(), tokens: tokens}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	limiter := func() gin.HandlerFunc { return func(c *gin.Context) { c.Next() } }()
	if !opts.DisableRateLimit {
		limiter = NewRateLimiter(rate.Limit(100), 200).Middleware()
	}
	auth := BearerAuthMiddleware(tokens)
	bodyLimit := BodySizeLimitMiddleware(1 * 1024 * 1024)

	api := router.Group("/api")
	api.Use(limiter)

	api.POST("/auth/dev-login", bodyLimit, h.DevLogin)

	api.GET("/:category/provinces", h.GetProvinces)
	api.GET("/:category/mine", auth, h.ListMine)
	api.POST("/:category/publish", auth, bodyLimit, h.Publish)
	api.GET("/:category/:id", h.GetListing)
	api.PUT("/:category/:id", auth, bodyLimit, h.UpdateListing)
	api.GET("/:category/:id/reviews", h.GetReviews)
	api.POST("/:category/:id/reviews", auth, bodyLimit, h.SubmitReview)
	api.DELETE("/:category/:id/reviews/:reviewId", auth, h.DeleteReview)

	return router
}
