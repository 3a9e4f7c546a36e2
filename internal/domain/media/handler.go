package media

import (
	"errors"
	"fmt"
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

func (h *Handler) Upload(c *gin.Context) {
	email := c.GetString("email")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "No file field found in request")
		return
	}

	tags := c.PostForm("custom_tags")
	if tags == "" {
		tags = c.PostForm("tags")
	}

	m, err := h.service.Upload(c.Request.Context(), email, fileHeader, tags)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFile):
			response.Fail(c, http.StatusBadRequest, "No file selected")
		case errors.Is(err, ErrTypeNotSupported):
			response.Fail(c, http.StatusBadRequest, "File type not supported")
		case errors.Is(err, ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, "File too large")
		default:
			response.Fail(c, http.StatusInternalServerError, fmt.Sprintf("File save error: %v", err))
		}
		return
	}

	response.OK(c, http.StatusCreated, "Upload successful", gin.H{
		"media_id": m.ID,
		"media":    m,
	})
}

func (h *Handler) List(c *gin.Context) {
	email := c.GetString("email")

	items, err := h.service.List(c.Request.Context(), email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to list media")
		return
	}

	response.OK(c, http.StatusOK, "", gin.H{"media": items})
}

func (h *Handler) Detail(c *gin.Context) {
	email := c.GetString("email")
	id := c.Param("id")

	m, analysis, err := h.service.Detail(c.Request.Context(), email, id)
	if err != nil {
		if errors.Is(err, ErrMediaNotFound) {
			response.Fail(c, http.StatusNotFound, "Media not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to load media")
		return
	}

	response.OK(c, http.StatusOK, "", gin.H{
		"media":    m,
		"analysis": analysis,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	email := c.GetString("email")
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), email, id); err != nil {
		if errors.Is(err, ErrMediaNotFound) {
			response.Fail(c, http.StatusNotFound, "Media not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete media")
		return
	}

	response.OK(c, http.StatusOK, "Deleted", nil)
}
