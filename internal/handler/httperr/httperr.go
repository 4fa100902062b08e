package httperr

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the client-visible part of an error response.
type ErrorBody struct {
	Message string `json:"message"`
}

// Response is the envelope every error endpoint answers with. Status is kept
// out of the JSON body; it travels as the HTTP status code.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// AbortWithError records the underlying error on the gin context (so the
// error middleware and logs see the cause) and answers with the public
// envelope. The original error never reaches the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr.AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
