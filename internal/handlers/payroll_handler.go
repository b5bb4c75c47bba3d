// internal/handlers/payroll_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms_backend/internal/storage"
)

type PayrollHandler struct {
	Store storage.Store
}

func NewPayrollHandler(store storage.Store) *PayrollHandler { return &PayrollHandler{Store: store} }

func (h *PayrollHandler) List(c *gin.Context) {
	rows, err := h.Store.ListPayroll(c.Request.Context(), c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
