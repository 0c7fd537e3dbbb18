package api

import (
	"github.com/gin-gonic/gin"

	imagepkg "github.com/youruser/lifestyleapp/internal/image"
)

func RegisterRoutes(r *gin.Engine, c *imagepkg.Compositor) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/compose", composeHandler(c))
	}
}
