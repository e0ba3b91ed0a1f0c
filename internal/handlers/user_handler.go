package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-care-api/internal/apperrors"
	"github.com/harentsoaR/dental-care-api/internal/models"
)

// ListUsers handles GET /users.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Repos.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin handles GET /users/admin/:email. An unknown email is 401, not false.
func (h *Handler) CheckAdmin(c *gin.Context) {
	user, err := h.Repos.Users.FindByEmail(c.Request.Context(), c.Param("email"))
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// UpsertUser handles PATCH /users.
func (h *Handler) UpsertUser(c *gin.Context) {
	var req models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.Repos.Users.Upsert(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PromoteUser handles PATCH /users/:id.
func (h *Handler) PromoteUser(c *gin.Context) {
	result, err := h.Repos.Users.SetRole(c.Request.Context(), c.Param("id"), models.RoleAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
