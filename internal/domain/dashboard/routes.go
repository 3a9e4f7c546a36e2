package dashboard

import "github.com/gin-gonic/gin"

// RegisterRoutes registers dashboard routes under the session-gated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	dash := r.Group("/dashboard")
	{
		dash.GET("/stats", h.Stats)
		dash.GET("/activity", h.Activity)
	}
}
