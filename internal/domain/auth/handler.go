package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"snapstream/internal/pkg/response"
)

const sessionCookie = "session_token"

// Handler manages all HTTP interactions for accounts and profiles.
type Handler struct {
	service      *Service
	cookieMaxAge int
	cookieSecure bool
}

func NewHandler(service *Service, cookieMaxAge int, cookieSecure bool) *Handler {
	return &Handler{
		service:      service,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAllFieldsRequired):
			response.Fail(c, http.StatusBadRequest, "All fields required")
		case errors.Is(err, ErrEmailExists):
			response.Fail(c, http.StatusConflict, "Email already exists")
		default:
			response.Fail(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	response.OK(c, http.StatusCreated, "Registered successfully", gin.H{"redirect": "/login"})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			response.Fail(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, result.Token, h.cookieMaxAge, "/", "", h.cookieSecure, true)

	response.OK(c, http.StatusOK, "Login success", gin.H{
		"redirect": "/dashboard",
		"token":    result.Token,
		"user": UserPublic{
			Email:    result.User.Email,
			Username: result.User.Username,
		},
	})
}

// Logout is public and tolerant: a missing or dead session still yields 200
// with the cookie cleared, so repeated logouts are harmless.
func (h *Handler) Logout(c *gin.Context) {
	if sessionID := c.GetString("session_id"); sessionID != "" {
		if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
			response.Fail(c, http.StatusInternalServerError, "Failed to logout")
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", h.cookieSecure, true)
	response.OK(c, http.StatusOK, "Logged out", gin.H{"redirect": "/"})
}

func (h *Handler) Me(c *gin.Context) {
	email := c.GetString("email")

	user, err := h.service.CurrentUser(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, "User not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to load user")
		return
	}

	username := user.Username
	if username == "" {
		username = "User"
	}

	response.OK(c, http.StatusOK, "", gin.H{
		"user": UserPublic{Email: user.Email, Username: username},
	})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	email := c.GetString("email")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), email, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameRequired):
			response.Fail(c, http.StatusBadRequest, "Username is required")
		case errors.Is(err, ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, "User not found")
		default:
			response.Fail(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	response.OK(c, http.StatusOK, "Profile updated", gin.H{"username": user.Username})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	email := c.GetString("email")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), email, req); err != nil {
		switch {
		case errors.Is(err, ErrAllFieldsRequired):
			response.Fail(c, http.StatusBadRequest, "All fields required")
		case errors.Is(err, ErrPasswordTooShort):
			response.Fail(c, http.StatusBadRequest, "New password must be at least 6 characters")
		case errors.Is(err, ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, "Current password is incorrect")
		default:
			response.Fail(c, http.StatusInternalServerError, "Failed to change password")
		}
		return
	}

	response.OK(c, http.StatusOK, "Password updated successfully", nil)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	email := c.GetString("email")

	err := h.service.DeleteAccount(c.Request.Context(), email)

	// the session is gone either way
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", h.cookieSecure, true)

	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, "User not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete account")
		return
	}

	response.OK(c, http.StatusOK, "Account deleted successfully", gin.H{"redirect": "/"})
}
