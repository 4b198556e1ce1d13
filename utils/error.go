package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies failures for the HTTP layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnavailable
)

// AppError carries a kind and a client-safe message, wrapping the cause.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches any AppError of the same kind and message, so package-level
// sentinels work with errors.Is after wrapping.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

func NewError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap attaches a cause to a sentinel without losing its identity.
func Wrap(sentinel *AppError, cause error) *AppError {
	return &AppError{Kind: sentinel.Kind, Message: sentinel.Message, Err: cause}
}

var (
	ErrInvalidID    = NewError(KindBadRequest, "invalid id")
	ErrUnauthorized = NewError(KindUnauthorized, "unauthorized access")
	ErrForbidden    = NewError(KindForbidden, "forbidden access")
)

// StatusFor maps an error to its HTTP status. Unknown errors are internal.
func StatusFor(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// RespondError writes err as a JSON error with the status of its kind.
// Internal errors are logged with their full cause.
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	message := err.Error()
	var appErr *AppError
	if errors.As(err, &appErr) && status != http.StatusInternalServerError {
		message = appErr.Message
	}
	logger := LoggerFrom(c)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

// ErrorHandler is a middleware that converts panics into a 500 carrying the
// panic message, so one bad request never takes the process down.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				LoggerFrom(c).Error("Unhandled panic", zap.Any("error", rec))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: fmt.Sprint(rec),
				})
			}
		}()
		c.Next()
	}
}

// NotFoundHandler answers unmatched routes with the offending path.
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Message: fmt.Sprintf("The requested url is invalid: [%s]", c.Request.URL.RequestURI()),
	})
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	LoggerFrom(c).Warn(message, zap.String("details", details))
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Details: details})
}

// LoggerFrom returns the request-scoped logger set by the request id
// middleware, falling back to the global logger.
func LoggerFrom(c *gin.Context) *zap.Logger {
	if c != nil {
		if l, exists := c.Get("logger"); exists {
			if logger, ok := l.(*zap.Logger); ok {
				return logger
			}
		}
	}
	if Logger != nil {
		return Logger
	}
	return zap.L()
}
