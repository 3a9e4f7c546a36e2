package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes wires the endpoints usable without a session. Logout
// sits here behind the optional-session middleware supplied by the caller:
// it must stay a 200 even when nobody is logged in.
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup, optionalSession gin.HandlerFunc) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", optionalSession, h.Logout)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/me", h.Me)

	profile := protected.Group("/profile")
	{
		profile.POST("/update", h.UpdateProfile)
		profile.POST("/change-password", h.ChangePassword)
		profile.POST("/delete-account", h.DeleteAccount)
	}
}
