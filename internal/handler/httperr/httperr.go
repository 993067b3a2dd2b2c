// Package httperr defines the JSON error envelope and the abort helper
// the error middleware picks responses out of.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of every error reply. Status travels
// out-of-band in gin's error Meta, never in the body.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the gin context for logging and writes
// the envelope. The original error must exist; msg is what the client sees.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
