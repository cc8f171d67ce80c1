package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DatabasePinger reports whether the backing store is reachable.
type DatabasePinger interface {
	Ping() error
}

type HealthHandler struct {
	db      DatabasePinger
	version string
}

func NewHealthHandler(db DatabasePinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Check handles GET /health. It always answers 200 so load balancers can
// distinguish "process up, dependency down" from "process down".
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.status())
}

// Detailed handles GET /health/detailed and fails the request when the
// database is unreachable.
func (h *HealthHandler) Detailed(c *gin.Context) {
	resp := h.status()
	if resp.Database != "up" {
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ping handles GET /ping
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (h *HealthHandler) status() HealthResponse {
	dbStatus := "up"
	status := "healthy"
	if err := h.db.Ping(); err != nil {
		dbStatus = "down"
		status = "degraded"
	}

	return HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
