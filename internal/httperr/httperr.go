package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Status returns the HTTP status for a business error code.
func Status(code string) int {
	switch code {
	case CodeInvalidParam, CodeMissingParam, CodePastDate:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeAlreadyExists, CodeAlreadyBooked:
		return http.StatusConflict
	case CodeForbidden:
		return http.StatusForbidden
	case CodeWrongCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err to the response. Business errors keep their message,
// everything else is logged and hidden behind a generic 500.
func Respond(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		Write(c, Status(be.Code), be.Code, be.Error())
		return
	}

	slog.Error("request failed",
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.Any("error", err),
	)
	Internal(c, "internal_error", "Internal server error.")
}
