// Package repository is the document-store boundary. Handlers and middleware only
// see the interfaces below; Mongo and in-memory implementations satisfy them.
package repository

import (
	"context"
	"fmt"

	"github.com/harentsoaR/dental-care-api/internal/apperrors"
	"github.com/harentsoaR/dental-care-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UsersCollection        = "users"
	DoctorsCollection      = "doctors"
	AppointmentsCollection = "appointments"
	PaymentsCollection     = "payments"
)

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	// FindByEmail returns apperrors.ErrNotFound when no identity has the email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// Upsert sets name and email on the identity with that email, creating it if absent.
	Upsert(ctx context.Context, name, email string) (*models.UpdateResult, error)
	// SetRole updates an existing identity by id. An unknown id matches nothing.
	SetRole(ctx context.Context, id, role string) (*models.UpdateResult, error)
	// EnsureAdmin creates or promotes the identity with the email to admin.
	EnsureAdmin(ctx context.Context, email string) (*models.UpdateResult, error)
}

type DoctorRepository interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Get(ctx context.Context, id string) (*models.Doctor, error)
	Create(ctx context.Context, doctor models.Doctor) (*models.InsertResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

type AppointmentRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.Appointment, error)
	SetReview(ctx context.Context, id string, review models.Review) (*models.UpdateResult, error)
	Create(ctx context.Context, appointment models.Appointment) (*models.InsertResult, error)
}

type PaymentRepository interface {
	// Record inserts the payment unless one with the same transaction id is
	// already stored. created is false, and nothing is written, in that case.
	Record(ctx context.Context, payment models.Payment) (result *models.InsertResult, created bool, err error)
}

// Repositories is the store handle passed explicitly to handlers and middleware.
type Repositories struct {
	Users        UserRepository
	Doctors      DoctorRepository
	Appointments AppointmentRepository
	Payments     PaymentRepository
	Ping         func(ctx context.Context) error
}

// ParseID converts a hex id from a URL into the store's id type.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q", apperrors.ErrInvalidInput, id)
	}
	return oid, nil
}
