package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-care-api/internal/apperrors"
	"github.com/harentsoaR/dental-care-api/internal/models"
)

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Repos.Doctors.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// GetDoctor answers null rather than 404 for an unknown id; existing clients
// check for an empty body.
func (h *Handler) GetDoctor(c *gin.Context) {
	doctor, err := h.Repos.Doctors.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req models.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.Repos.Doctors.Create(c.Request.Context(), req.ToDoctor())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	result, err := h.Repos.Doctors.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
