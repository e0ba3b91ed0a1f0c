package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-care-api/internal/models"
)

// GetAppointmentsByEmail handles GET /appointments/:email. No bookings is an empty array.
func (h *Handler) GetAppointmentsByEmail(c *gin.Context) {
	appointments, err := h.Repos.Appointments.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}
	c.JSON(http.StatusOK, appointments)
}

// ReviewAppointment handles PATCH /appointments/:id; the whole body is the review.
func (h *Handler) ReviewAppointment(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		badRequest(c, err)
		return
	}
	if review.Rating == 0 && review.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "review needs a rating or a comment"})
		return
	}

	result, err := h.Repos.Appointments.SetReview(c.Request.Context(), c.Param("id"), review)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateAppointment handles POST /appointments.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.Repos.Appointments.Create(c.Request.Context(), req.ToAppointment())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
