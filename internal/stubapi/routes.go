package stubapi

import (
	"log"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the stub implementation of the REST contract the client
// consumes. Everything under /api except /api/auth requires a bearer token.
func NewRouter(store *Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	h := NewHandler(store)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Login)
			auth.POST("/register", h.Register)
		}

		protected := api.Group("", h.RequireAuth)
		{
			orders := protected.Group("/orders")
			{
				orders.GET("", h.ListOrders)
				orders.GET("/:id", h.GetOrder)
				orders.POST("", h.CreateOrder)
				orders.PUT("/:id", h.UpdateOrder)
				orders.PATCH("/:id/status", h.UpdateOrderStatus)
				orders.DELETE("/:id", h.DeleteOrder)
			}

			checklist := protected.Group("/checklist")
			{
				checklist.GET("/orders/:orderId/checklist", h.ListChecklist)
				checklist.POST("/orders/:orderId/checklist", h.AddChecklistItem)
				checklist.PATCH("/:id/toggle", h.ToggleChecklistItem)
				checklist.DELETE("/:id", h.DeleteChecklistItem)
			}

			photos := protected.Group("/photos")
			{
				photos.POST("/:orderId", h.UploadPhoto)
				photos.DELETE("/:id", h.DeletePhoto)
			}
		}
	}

	// Uploaded photo bytes resolve at the API origin, outside /api.
	router.GET("/uploads/:filename", h.ServeUpload)

	return router
}
