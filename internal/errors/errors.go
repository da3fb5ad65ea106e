package errors

import (
	"net/http"
	"os"
	"strings"

	"codeberg.org/personachat/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for critical errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For SSE streaming handlers:
//   - Before any frame is written, respond with a normal JSON error
//   - After streaming has started, emit a terminal `data: {"error": ...}` frame instead
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)
//
// Message fields carry localizable message keys ("error.insufficient_funds"),
// never display prose. Clients own the translation tables.

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "unauthorized", "not_found")
	Message string `json:"message"`           // localizable message key
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeUnauthorized      = "unauthorized"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "not_found"
	CodeValidationError   = "validation_error"
	CodeServerError       = "server_error"
	CodeBadRequest        = "bad_request"
	CodeConflict          = "conflict"
	CodeTooManyRequests   = "too_many_requests"
	CodeInsufficientFunds = "insufficient_funds"
	CodeSubscriptionReq   = "subscription_required"
	CodeGuestLimit        = "guest_limit_exceeded"
	CodeInsufficientConf  = "insufficient_configuration"
	CodePlanNotFound      = "plan_not_found"
)

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, messageKey string) {
	if messageKey == "" {
		messageKey = "error.authentication_required"
	}

	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: messageKey,
	})
}

// returns a 403 forbidden error
func Forbidden(c *gin.Context, messageKey string) {
	if messageKey == "" {
		messageKey = "error.permission_denied"
	}

	c.JSON(http.StatusForbidden, ErrorResponse{
		Error:   CodeForbidden,
		Message: messageKey,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	messageKey := "error.not_found"

	if resource != "" {
		messageKey = "error." + resource + "_not_found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: messageKey,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, messageKey string, err error) {
	if messageKey == "" {
		messageKey = "error.invalid_request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: messageKey,
	}

	// add details if error provided
	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, err error) {
	details := ""

	if err != nil {
		details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: "error.validation_failed",
		Details: details,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, messageKey string, err error) {
	if messageKey == "" {
		messageKey = "error.internal"
	}

	// log full error server-side with context
	logger.ErrorErr(err, messageKey,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	// return sanitized error to client
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: messageKey,
		Details: sanitizeError(err),
	})
}

// returns a 409 conflict error
func Conflict(c *gin.Context, messageKey string) {
	if messageKey == "" {
		messageKey = "error.conflict"
	}

	c.JSON(http.StatusConflict, ErrorResponse{
		Error:   CodeConflict,
		Message: messageKey,
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: "error.too_many_requests",
	})
}

// returns a 400 error when the user's balance cannot cover a purchase
func InsufficientFunds(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeInsufficientFunds,
		Message: "error.insufficient_funds",
	})
}

// returns a 403 error when a persona requires an active subscription
func SubscriptionRequired(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorResponse{
		Error:   CodeSubscriptionReq,
		Message: "error.subscription_required",
	})
}

// returns a 403 error when a guest has used up the free message budget
func GuestLimitExceeded(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorResponse{
		Error:   CodeGuestLimit,
		Message: "error.guest_limit_exceeded",
	})
}

// returns a 400 error when no API key is configured for the provider
func InsufficientConfiguration(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeInsufficientConf,
		Message: "error.insufficient_configuration",
	})
}

// returns a 400 error for purchases against an unknown plan
func PlanNotFound(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodePlanNotFound,
		Message: "error.plan_not_found",
	})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	env := os.Getenv("ENVIRONMENT")

	if env != "production" {
		return errMsg
	}

	if strings.Contains(errMsg, "database") || strings.Contains(errMsg, "sql") {
		return "database operation failed"
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") {
		return "connection error occurred"
	}

	if strings.Contains(errMsg, "timeout") {
		return "request timed out"
	}

	if strings.Contains(errMsg, "permission") || strings.Contains(errMsg, "unauthorized") {
		return "permission denied"
	}

	if strings.Contains(errMsg, "not found") {
		return "resource not found"
	}

	return "an error occurred"
}
