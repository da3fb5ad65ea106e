package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(writeError func(c *gin.Context)) (*httptest.ResponseRecorder, ErrorResponse) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(c)

	var body ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body) //nolint:errcheck
	return w, body
}

func TestDomainErrors_CodesAndStatuses(t *testing.T) {
	tests := []struct {
		name       string
		writeError func(c *gin.Context)
		status     int
		code       string
	}{
		{"insufficient funds", InsufficientFunds, http.StatusBadRequest, CodeInsufficientFunds},
		{"subscription required", SubscriptionRequired, http.StatusForbidden, CodeSubscriptionReq},
		{"guest limit", GuestLimitExceeded, http.StatusForbidden, CodeGuestLimit},
		{"insufficient configuration", InsufficientConfiguration, http.StatusBadRequest, CodeInsufficientConf},
		{"plan not found", PlanNotFound, http.StatusBadRequest, CodePlanNotFound},
		{"too many requests", TooManyRequests, http.StatusTooManyRequests, CodeTooManyRequests},
	}

	for _, tt := range tests {
		w, body := respond(tt.writeError)

		assert.Equal(t, tt.status, w.Code, tt.name)
		assert.Equal(t, tt.code, body.Error, tt.name)
		assert.Contains(t, body.Message, "error.", "%s: message is a localizable key", tt.name)
	}
}

func TestNotFound_NamesResource(t *testing.T) {
	w, body := respond(func(c *gin.Context) { NotFound(c, "plan") })

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodeNotFound, body.Error)
}

func TestInternalError_SanitizesInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	w, body := respond(func(c *gin.Context) {
		InternalError(c, "error.database_failed", fmt.Errorf("pq: password authentication failed for user"))
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, body.Details, "password", "raw errors must not leak in production")
}

func TestInternalError_DetailsInDevelopment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	w, body := respond(func(c *gin.Context) {
		InternalError(c, "error.database_failed", fmt.Errorf("connection refused"))
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, body.Details, "connection refused")
}
