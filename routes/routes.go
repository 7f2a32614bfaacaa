package routes

import (
	"net/http"
	"time"

	"washly/handlers"
	"washly/middleware"
	"washly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterOrderRoutes registers all endpoints for the order-building engine.
func RegisterOrderRoutes(r *gin.Engine, oh *handlers.OrderHandler) {
	orders := r.Group("/api/orders")
	{
		orders.Use(middleware.JWTAuthUserMiddleware())
		orders.POST("/session", oh.StartOrder)
		orders.POST("/session/from-store", oh.StartOrderFromStore)
		orders.GET("/session/:sessionID", oh.GetSession)
		orders.PUT("/session/:sessionID/pickup", oh.SetPickup)
		orders.PUT("/session/:sessionID/items", oh.SetItems)
		orders.PUT("/session/:sessionID/store", oh.SetStore)
		orders.PUT("/session/:sessionID/addons", oh.SetAddOns)
		orders.POST("/session/:sessionID/next", oh.NextStep)
		orders.POST("/session/:sessionID/prev", oh.PrevStep)
		orders.POST("/session/:sessionID/coupon", oh.ApplyCoupon)
		orders.POST("/session/:sessionID/breakdown", oh.ReconcileBreakdown)
		orders.POST("/session/:sessionID/submit", oh.SubmitOrder)
		orders.DELETE("/session/:sessionID", oh.ResetOrder)
		orders.GET("/coupons", oh.ListCoupons)
		orders.GET("/history", oh.OrderHistory)
	}
}

// RegisterAuthRoutes registers token lifecycle endpoints.
func RegisterAuthRoutes(r *gin.Engine, ah *handlers.AuthHandler) {
	auth := r.Group("/api/auth")
	{
		auth.Use(middleware.JWTAuthUserMiddleware())
		auth.POST("/logout", ah.Logout)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, oh *handlers.OrderHandler, ah *handlers.AuthHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterOrderRoutes(r, oh)
	RegisterAuthRoutes(r, ah)
}
