package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"snapstream/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	email := c.GetString("email")

	notes, err := h.service.List(c.Request.Context(), email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to load notifications")
		return
	}

	response.OK(c, http.StatusOK, "", gin.H{"notifications": notes})
}

func (h *Handler) ReadAll(c *gin.Context) {
	email := c.GetString("email")

	if err := h.service.MarkAllRead(c.Request.Context(), email); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to mark notifications as read")
		return
	}

	response.OK(c, http.StatusOK, "All marked as read", nil)
}

func (h *Handler) ClearAll(c *gin.Context) {
	email := c.GetString("email")

	if err := h.service.ClearAll(c.Request.Context(), email); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to clear notifications")
		return
	}

	response.OK(c, http.StatusOK, "All cleared", nil)
}
