// internal/handlers/auth_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hrms_backend/internal/apperror"
	"hrms_backend/internal/models"
	"hrms_backend/internal/storage"
	"hrms_backend/internal/utils"
)

type AuthHandler struct {
	Store storage.Store
}

func NewAuthHandler(store storage.Store) *AuthHandler { return &AuthHandler{Store: store} }

type RegisterReq struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Role       string   `json:"role"`
	Position   string   `json:"position"`
	Department string   `json:"department"`
	JoinDate   string   `json:"joinDate"`
	Phone      *string  `json:"phone"`
	Address    *string  `json:"address"`
	Salary     *float64 `json:"salary"`
	AvatarURL  *string  `json:"avatarUrl"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if _, err := h.Store.UserByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	} else if apperror.GetCode(err) != apperror.CodeNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load"})
		return
	}

	pwHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "hash failed"})
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	role := models.UserRole(req.Role)
	if role == "" {
		role = models.RoleEmployee
	}

	user := models.User{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		Password:   pwHash,
		Role:       role,
		Position:   req.Position,
		Department: req.Department,
		JoinDate:   req.JoinDate,
		Phone:      req.Phone,
		Address:    req.Address,
		Salary:     req.Salary,
		AvatarURL:  req.AvatarURL,
	}

	if err := h.Store.CreateUser(c.Request.Context(), &user); err != nil {
		if apperror.GetCode(err) == apperror.CodeConflict {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	user, err := h.Store.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if apperror.GetCode(err) == apperror.CodeNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load"})
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, user)
}
