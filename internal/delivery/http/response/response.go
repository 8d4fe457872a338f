package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageBody is the success envelope the frontend expects
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody carries a machine-readable error code
type ErrorBody struct {
	Error string `json:"error"`
}

// CaptchaErrorBody includes the confidence score for observability.
// Score is null when the verification service did not score the token.
type CaptchaErrorBody struct {
	Error string   `json:"error"`
	Score *float64 `json:"score"`
}

// Message sends a success response
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageBody{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, errCode string) {
	c.JSON(code, ErrorBody{Error: errCode})
}

// CaptchaFailure sends the verification rejection response
func CaptchaFailure(c *gin.Context, score *float64) {
	c.JSON(http.StatusBadRequest, CaptchaErrorBody{
		Error: "Failed CAPTCHA verification",
		Score: score,
	})
}
