package media

import "github.com/gin-gonic/gin"

// RegisterRoutes registers media routes under the session-gated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/upload", h.Upload)

	mediaGroup := r.Group("/media")
	{
		mediaGroup.GET("", h.List)
		mediaGroup.GET("/:id", h.Detail)
		mediaGroup.DELETE("/:id", h.Delete)
	}
}
