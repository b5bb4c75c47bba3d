// internal/handlers/user_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms_backend/internal/apperror"
	"hrms_backend/internal/models"
	"hrms_backend/internal/storage"
	"hrms_backend/internal/utils"
)

type UserHandler struct {
	Store storage.Store
}

func NewUserHandler(store storage.Store) *UserHandler { return &UserHandler{Store: store} }

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load"})
		return
	}
	c.JSON(http.StatusOK, users)
}

type UpdateUserReq struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Password   *string  `json:"password"`
	Role       *string  `json:"role"`
	Position   *string  `json:"position"`
	Department *string  `json:"department"`
	JoinDate   *string  `json:"joinDate"`
	Phone      *string  `json:"phone"`
	Address    *string  `json:"address"`
	Salary     *float64 `json:"salary"`
	AvatarURL  *string  `json:"avatarUrl"`
}

// Update overwrites only the fields present in the body; the password is
// re-hashed only when a new non-empty one is supplied.
func (h *UserHandler) Update(c *gin.Context) {
	user, err := h.Store.UserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if apperror.GetCode(err) == apperror.CodeNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load"})
		return
	}

	var req UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.JoinDate != nil {
		user.JoinDate = *req.JoinDate
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.Salary != nil {
		user.Salary = req.Salary
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if req.Password != nil && *req.Password != "" {
		pwHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "hash failed"})
			return
		}
		user.Password = pwHash
	}

	if err := h.Store.SaveUser(c.Request.Context(), user); err != nil {
		if apperror.GetCode(err) == apperror.CodeConflict {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save"})
		return
	}

	c.JSON(http.StatusOK, user)
}
