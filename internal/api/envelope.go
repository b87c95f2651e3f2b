package api

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape for every endpoint, success and
// error alike: {type, message, code, data?}.
type Envelope struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
}

func respondSuccess(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{Type: "success", Message: message, Code: code, Data: data})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Type: "error", Message: message, Code: code})
}

// abortWithError writes the error envelope and stops the handler chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Envelope{Type: "error", Message: message, Code: code})
}
