package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Health check
// @Description Returns service liveness
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: "ok"})
}

// PingHandler godoc
// @Summary Ping
// @Tags health
// @Produce plain
// @Success 200 {string} string "pong"
// @Router /api/v1/ping [get]
func PingHandler(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
