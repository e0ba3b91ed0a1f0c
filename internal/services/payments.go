package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/harentsoaR/dental-care-api/internal/apperrors"
	"github.com/harentsoaR/dental-care-api/internal/models"
	"github.com/harentsoaR/dental-care-api/internal/repository"
)

// ErrProviderNotConfigured is returned when no payment secret was supplied.
var ErrProviderNotConfigured = errors.New("payment provider is not configured")

// PaymentProvider creates a provider-side payment intent and returns its client secret.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string, methods []string) (string, error)
}

type PaymentService struct {
	provider PaymentProvider
	payments repository.PaymentRepository
	currency string
	methods  []string
	now      func() time.Time
}

func NewPaymentService(provider PaymentProvider, payments repository.PaymentRepository, currency string) *PaymentService {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{
		provider: provider,
		payments: payments,
		currency: currency,
		methods:  []string{"card"},
		now:      time.Now,
	}
}

// AmountInMinorUnits converts a price into cents, rounding to the nearest unit.
func AmountInMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent rejects absent or sub-cent prices before contacting the provider.
func (s *PaymentService) CreateIntent(ctx context.Context, price *float64) (string, error) {
	if price == nil || math.IsNaN(*price) || math.IsInf(*price, 0) {
		return "", fmt.Errorf("%w: price is required", apperrors.ErrInvalidInput)
	}
	amount := AmountInMinorUnits(*price)
	if amount < 1 {
		return "", fmt.Errorf("%w: price must be at least 0.01", apperrors.ErrInvalidInput)
	}
	if s.provider == nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnavailable, ErrProviderNotConfigured)
	}

	secret, err := s.provider.CreateIntent(ctx, amount, s.currency, s.methods)
	if err != nil {
		log.Printf("Payment intent for %d %s failed: %v", amount, s.currency, err)
		return "", fmt.Errorf("%w: create payment intent", apperrors.ErrUnavailable)
	}
	return secret, nil
}

// RecordPayment stores the payment once per transaction id. created is false
// when the transaction was already recorded.
func (s *PaymentService) RecordPayment(ctx context.Context, callerEmail string, req models.RecordPaymentRequest) (*models.InsertResult, bool, error) {
	if req.TransactionID == "" {
		return nil, false, fmt.Errorf("%w: transactionId is required", apperrors.ErrInvalidInput)
	}

	payment := models.Payment{
		TransactionID: req.TransactionID,
		Email:         req.Email,
		Price:         req.Price,
		AppointmentID: req.AppointmentID,
		Status:        req.Status,
		Date:          s.now().UTC(),
	}
	if payment.Email == "" {
		payment.Email = callerEmail
	}
	if req.Date != nil {
		payment.Date = req.Date.UTC()
	}

	res, created, err := s.payments.Record(ctx, payment)
	if err != nil {
		return nil, false, err
	}
	if !created {
		log.Printf("Payment %s already recorded, skipping insert", req.TransactionID)
	}
	return res, created, nil
}
