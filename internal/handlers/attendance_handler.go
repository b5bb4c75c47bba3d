// internal/handlers/attendance_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hrms_backend/internal/apperror"
	"hrms_backend/internal/models"
	"hrms_backend/internal/storage"
)

type AttendanceHandler struct {
	Store storage.Store
}

func NewAttendanceHandler(store storage.Store) *AttendanceHandler {
	return &AttendanceHandler{Store: store}
}

func (h *AttendanceHandler) List(c *gin.Context) {
	rows, err := h.Store.ListAttendance(c.Request.Context(), c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type AttendanceReq struct {
	UserID     string   `json:"userId"`
	Date       string   `json:"date"`
	CheckIn    *string  `json:"checkIn"`
	CheckOut   *string  `json:"checkOut"`
	Status     *string  `json:"status"`
	TotalHours *float64 `json:"totalHours"`
}

// Save upserts on the (userId, date) pair: an existing record for that
// day is updated in place, keeping its id; otherwise check-in creates a
// new record. At most one record per user and date ever exists.
func (h *AttendanceHandler) Save(c *gin.Context) {
	var req AttendanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	existing, err := h.Store.AttendanceByUserDate(c.Request.Context(), req.UserID, req.Date)
	if err == nil {
		if req.CheckOut != nil && *req.CheckOut != "" {
			existing.CheckOut = req.CheckOut
		}
		if req.TotalHours != nil && *req.TotalHours != 0 {
			existing.TotalHours = req.TotalHours
		}
		if req.Status != nil && *req.Status != "" {
			existing.Status = models.AttendanceStatus(*req.Status)
		}

		if err := h.Store.SaveAttendance(c.Request.Context(), existing); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save"})
			return
		}
		c.JSON(http.StatusOK, existing)
		return
	}
	if apperror.GetCode(err) != apperror.CodeNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load"})
		return
	}

	status := models.StatusPresent
	if req.Status != nil && *req.Status != "" {
		status = models.AttendanceStatus(*req.Status)
	}

	record := models.Attendance{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		Date:       req.Date,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     status,
		TotalHours: req.TotalHours,
	}

	if err := h.Store.CreateAttendance(c.Request.Context(), &record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save"})
		return
	}

	c.JSON(http.StatusCreated, record)
}
