// Package response holds the small set of JSON body shapes the API emits.
// Success payloads are returned as plain entities; these helpers cover the
// message and error envelopes.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the {"message": ...} envelope used for status-only replies.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorsBody carries the ordered validation message list.
type ErrorsBody struct {
	Errors []string `json:"errors"`
}

// Message writes a {"message": ...} body with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// ValidationErrors writes a {"errors": [...]} body with the given status.
func ValidationErrors(c echo.Context, statusCode int, messages []string) error {
	return c.JSON(statusCode, ErrorsBody{Errors: messages})
}
