package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// SaveUserHandler handles POST /users.
func (h *UserHandler) SaveUserHandler(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user", err.Error())
		return
	}
	res, err := h.UserService.SaveUser(c.Request.Context(), u)
	if err != nil {
		if errors.Is(err, user.ErrInvalidUser) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save user", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetUsersHandler handles GET /users.
func (h *UserHandler) GetUsersHandler(c *gin.Context) {
	users, err := h.UserService.ListUsers(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdminHandler handles GET /users/admin/:email.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// MakeAdminHandler handles PUT /users/admin/:id.
func (h *UserHandler) MakeAdminHandler(c *gin.Context) {
	id := c.Param("id")
	res, err := h.UserService.MakeAdmin(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrInvalidID) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update role", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

// IssueTokenHandler handles GET /jwt?email=. Unknown emails get 403 with an empty token.
func (h *UserHandler) IssueTokenHandler(c *gin.Context) {
	logger := getLogger(c)
	email := c.Query("email")

	token, err := h.UserService.IssueToken(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
			return
		}
		logger.Error("token issuance failed", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
