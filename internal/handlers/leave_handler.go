// internal/handlers/leave_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hrms_backend/internal/apperror"
	"hrms_backend/internal/models"
	"hrms_backend/internal/storage"
)

type LeaveHandler struct {
	Store storage.Store
}

func NewLeaveHandler(store storage.Store) *LeaveHandler { return &LeaveHandler{Store: store} }

func (h *LeaveHandler) List(c *gin.Context) {
	rows, err := h.Store.ListLeaves(c.Request.Context(), c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type CreateLeaveReq struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	Type         string  `json:"type"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Reason       *string `json:"reason"`
	Status       string  `json:"status"`
	AdminComment *string `json:"adminComment"`
}

func (h *LeaveHandler) Create(c *gin.Context) {
	var req CreateLeaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	status := models.LeaveStatus(req.Status)
	if status == "" {
		status = models.LeavePending
	}

	leave := models.Leave{
		ID:           id,
		UserID:       req.UserID,
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		Status:       status,
		AdminComment: req.AdminComment,
	}

	if err := h.Store.CreateLeave(c.Request.Context(), &leave); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save"})
		return
	}

	c.JSON(http.StatusCreated, leave)
}

type UpdateLeaveReq struct {
	Status       *string `json:"status"`
	AdminComment *string `json:"adminComment"`
}

// Update touches only the status and admin comment; both are optional
// independently. Dates, type and reason are never modified here.
func (h *LeaveHandler) Update(c *gin.Context) {
	leave, err := h.Store.LeaveByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if apperror.GetCode(err) == apperror.CodeNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Leave not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load"})
		return
	}

	var req UpdateLeaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if req.Status != nil && *req.Status != "" {
		leave.Status = models.LeaveStatus(*req.Status)
	}
	if req.AdminComment != nil && *req.AdminComment != "" {
		leave.AdminComment = req.AdminComment
	}

	if err := h.Store.SaveLeave(c.Request.Context(), leave); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save"})
		return
	}

	c.JSON(http.StatusOK, leave)
}
