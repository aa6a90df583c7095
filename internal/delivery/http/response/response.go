// Package response holds the uniform response envelopes of the HTTP API.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error envelope shared by every endpoint.
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Error writes the uniform error envelope with the given status.
func Error(c echo.Context, statusCode int, message string, details any) error {
	return c.JSON(statusCode, ErrorBody{
		Error:   message,
		Details: details,
	})
}
