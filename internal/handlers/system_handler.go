// internal/handlers/system_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms_backend/internal/storage"
)

type SystemHandler struct {
	Store storage.Store
}

func NewSystemHandler(store storage.Store) *SystemHandler { return &SystemHandler{Store: store} }

// Init creates the schema if absent and seeds the default admin account.
// Safe to call repeatedly.
func (h *SystemHandler) Init(c *gin.Context) {
	if err := h.Store.Init(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "init failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database initialized"})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "hrms backend is running",
	})
}
