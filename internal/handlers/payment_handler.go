package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-care-api/internal/middleware"
	"github.com/harentsoaR/dental-care-api/internal/models"
)

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	secret, err := h.PaymentSvc.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// RecordPayment handles POST /payments and writes exactly one response.
func (h *Handler) RecordPayment(c *gin.Context) {
	var req models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, created, err := h.PaymentSvc.RecordPayment(c.Request.Context(), c.GetString(middleware.EmailKey), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Payment already exists"})
		return
	}
	c.JSON(http.StatusOK, result)
}
