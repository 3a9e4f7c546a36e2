package response

import "github.com/gin-gonic/gin"

// OK writes the standard success envelope. Extra keys are merged into the
// body next to the success flag, matching the public API shape
// (e.g. "media", "notifications", "activity", "user").
func OK(c *gin.Context, statusCode int, message string, extra gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
