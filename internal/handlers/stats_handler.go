// internal/handlers/stats_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms_backend/internal/storage"
)

type StatsHandler struct {
	Store storage.Store
}

func NewStatsHandler(store storage.Store) *StatsHandler { return &StatsHandler{Store: store} }

// Stats reports the dashboard counters. Only totalEmployees reflects the
// store; the remaining counters are the fixed demo values the dashboard
// has always shown.
func (h *StatsHandler) Stats(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalEmployees": len(users),
		"presentToday":   15,
		"onLeave":        3,
		"pendingLeaves":  5,
	})
}

func (h *StatsHandler) Happiness(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{
		{"name": "Happy", "value": 70, "color": "#10B981"},
		{"name": "Neutral", "value": 20, "color": "#F59E0B"},
		{"name": "Stressed", "value": 10, "color": "#EF4444"},
	})
}
