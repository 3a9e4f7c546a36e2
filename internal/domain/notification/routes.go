package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes registers notification routes under the session-gated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	notes := r.Group("/notifications")
	{
		notes.GET("", h.List)
		notes.POST("/read-all", h.ReadAll)
		notes.POST("/clear-all", h.ClearAll)
	}
}
