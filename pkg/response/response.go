package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FallbackMessage is returned when a failure carries no message of its own.
const FallbackMessage = "Something went wrong!"

// Envelope is the fixed JSON shape every endpoint returns. Status is
// mirrored in the body on purpose; clients of the original API rely on it.
type Envelope struct {
	Status     int    `json:"status"`
	Message    string `json:"message"`
	Token      string `json:"token,omitempty"`
	User       any    `json:"user,omitempty"`
	Data       any    `json:"data,omitempty"`
	Total      *int64 `json:"total,omitempty"`
	Pagination any    `json:"pagination,omitempty"`
	Sort       any    `json:"sort,omitempty"`
}

// JSON writes the envelope with its own status as the HTTP status code.
func JSON(c *gin.Context, e Envelope) {
	if e.Status == 0 {
		e.Status = http.StatusOK
	}
	c.JSON(e.Status, e)
}

// Err writes a bare {status, message} failure envelope.
func Err(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Status: status, Message: message})
}

// AbortErr writes a failure envelope and stops the handler chain;
// middleware rejections go through here.
func AbortErr(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Status: status, Message: message})
}

// ServiceError maps any service-layer failure to HTTP 500 with the
// error's message, as the original API does for every thrown error.
func ServiceError(c *gin.Context, err error) {
	msg := FallbackMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	Err(c, http.StatusInternalServerError, msg)
}
