package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"snapstream/internal/domain/media"
	"snapstream/internal/pkg/response"
)

// Handler derives dashboard views from the caller's media. It owns no state
// of its own; everything is read through the media service.
type Handler struct {
	media *media.Service
}

func NewHandler(mediaService *media.Service) *Handler {
	return &Handler{media: mediaService}
}

func (h *Handler) Stats(c *gin.Context) {
	email := c.GetString("email")

	stats, err := h.media.Stats(c.Request.Context(), email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	response.OK(c, http.StatusOK, "", gin.H{
		"total_uploads": stats.Total,
		"processing":    stats.Processing,
		"completed":     stats.Completed,
		"failed":        stats.Failed,
	})
}

func (h *Handler) Activity(c *gin.Context) {
	email := c.GetString("email")

	recent, err := h.media.RecentActivity(c.Request.Context(), email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to load activity")
		return
	}

	response.OK(c, http.StatusOK, "", gin.H{"activity": recent})
}
