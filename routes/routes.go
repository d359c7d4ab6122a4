package routes

import (
	"net/http"
	"time"

	"teerenta/handlers"
	"teerenta/middleware"
	"teerenta/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, ih *handlers.ItemHandler, bh *handlers.BookingHandler, ph *handlers.PromoHandler, th *handlers.TouristHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// One group per bookable kind: catalogue plus booking endpoints.
	for _, kind := range models.AllKinds {
		registerKindRoutes(api, kind, ih, bh)
	}

	promo := api.Group("/promo")
	{
		promo.POST("", middleware.JWTAuthMiddleware(), ph.Create)
		promo.POST("/validate", middleware.JWTAuthMiddleware(), ph.Validate)
	}

	touristGroup := api.Group("/tourist")
	touristGroup.Use(middleware.JWTAuthMiddleware())
	{
		touristGroup.GET("/profile", th.GetProfile)
		touristGroup.PUT("/profile", th.UpdateProfile)
		touristGroup.POST("/wallet/topup", th.TopUpWallet)
	}
}

func registerKindRoutes(api *gin.RouterGroup, kind models.ItemKind, ih *handlers.ItemHandler, bh *handlers.BookingHandler) {
	g := api.Group("/" + string(kind))

	// Public catalogue reads.
	g.GET("", ih.List(kind))
	g.GET("/upcoming", ih.Upcoming(kind))
	g.GET("/one/:id", ih.Get(kind))

	// Everything else requires an authenticated tourist or provider.
	auth := g.Group("")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/my", ih.Mine(kind))
		auth.POST("", ih.Create(kind))
		auth.PUT("/:id", ih.Update(kind))
		auth.DELETE("/:id", ih.Deactivate(kind))

		auth.POST("/book/:id", bh.Book(kind))
		auth.GET("/booked", bh.ListBooked(kind))
		auth.POST("/cancel/:id", bh.Cancel(kind))
	}
}
