package handlers

import (
	"github.com/harentsoaR/dental-care-api/internal/repository"
	"github.com/harentsoaR/dental-care-api/internal/services"
	"github.com/harentsoaR/dental-care-api/internal/utils"
)

// Handler carries the collaborators every route needs. It holds no request state.
type Handler struct {
	Repos      repository.Repositories
	Tokens     *utils.TokenService
	PaymentSvc *services.PaymentService
}

func NewHandler(repos repository.Repositories, tokens *utils.TokenService, paymentSvc *services.PaymentService) *Handler {
	return &Handler{
		Repos:      repos,
		Tokens:     tokens,
		PaymentSvc: paymentSvc,
	}
}
