// Package memory is an in-process implementation of the repository interfaces,
// used by tests and by STORE_DRIVER=memory for local runs.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/dental-care-api/internal/apperrors"
	"github.com/harentsoaR/dental-care-api/internal/models"
	"github.com/harentsoaR/dental-care-api/internal/repository"
)

type Store struct {
	mu sync.RWMutex

	users        []models.User
	doctors      []models.Doctor
	appointments []models.Appointment
	payments     []models.Payment
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Users:        &users{s},
		Doctors:      &doctors{s},
		Appointments: &appointments{s},
		Payments:     &payments{s},
		Ping:         func(context.Context) error { return nil },
	}
}

// AddUser inserts an identity directly and returns its id.
func (s *Store) AddUser(user models.User) primitive.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, user)
	return user.ID
}

// Payments returns a copy of every stored payment.
func (s *Store) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Payment(nil), s.payments...)
}

type users struct{ s *Store }

func (r *users) List(context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]models.User, 0, len(r.s.users)), r.s.users...), nil
}

func (r *users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := r.indexByEmail(email); i >= 0 {
		user := r.s.users[i]
		return &user, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *users) Upsert(_ context.Context, name, email string) (*models.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := r.indexByEmail(email); i >= 0 {
		modified := r.s.users[i].Name != name
		r.s.users[i].Name = name
		return matched(modified), nil
	}
	id := primitive.NewObjectID()
	r.s.users = append(r.s.users, models.User{ID: id, Name: name, Email: email})
	return upserted(id), nil
}

func (r *users) SetRole(_ context.Context, id, role string) (*models.UpdateResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == oid {
			modified := r.s.users[i].Role != role
			r.s.users[i].Role = role
			return matched(modified), nil
		}
	}
	return &models.UpdateResult{Acknowledged: true}, nil
}

func (r *users) EnsureAdmin(_ context.Context, email string) (*models.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := r.indexByEmail(email); i >= 0 {
		modified := r.s.users[i].Role != models.RoleAdmin
		r.s.users[i].Role = models.RoleAdmin
		return matched(modified), nil
	}
	id := primitive.NewObjectID()
	r.s.users = append(r.s.users, models.User{ID: id, Email: email, Role: models.RoleAdmin})
	return upserted(id), nil
}

// indexByEmail must be called with the lock held.
func (r *users) indexByEmail(email string) int {
	for i := range r.s.users {
		if r.s.users[i].Email == email {
			return i
		}
	}
	return -1
}

type doctors struct{ s *Store }

func (r *doctors) List(context.Context) ([]models.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]models.Doctor, 0, len(r.s.doctors)), r.s.doctors...), nil
}

func (r *doctors) Get(_ context.Context, id string) (*models.Doctor, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, d := range r.s.doctors {
		if d.ID == oid {
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *doctors) Create(_ context.Context, doctor models.Doctor) (*models.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doctor.ID = primitive.NewObjectID()
	r.s.doctors = append(r.s.doctors, doctor)
	return &models.InsertResult{Acknowledged: true, InsertedID: doctor.ID.Hex()}, nil
}

func (r *doctors) Delete(_ context.Context, id string) (*models.DeleteResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, d := range r.s.doctors {
		if d.ID == oid {
			r.s.doctors = append(r.s.doctors[:i], r.s.doctors[i+1:]...)
			return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.DeleteResult{Acknowledged: true}, nil
}

type appointments struct{ s *Store }

func (r *appointments) ListByEmail(_ context.Context, email string) ([]models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Appointment, 0)
	for _, a := range r.s.appointments {
		if a.BookedBy == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *appointments) SetReview(_ context.Context, id string, review models.Review) (*models.UpdateResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.appointments {
		if r.s.appointments[i].ID == oid {
			rv := review
			r.s.appointments[i].Review = &rv
			return matched(true), nil
		}
	}
	return &models.UpdateResult{Acknowledged: true}, nil
}

func (r *appointments) Create(_ context.Context, appointment models.Appointment) (*models.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	appointment.ID = primitive.NewObjectID()
	r.s.appointments = append(r.s.appointments, appointment)
	return &models.InsertResult{Acknowledged: true, InsertedID: appointment.ID.Hex()}, nil
}

type payments struct{ s *Store }

// Record checks and inserts under one write lock, the in-process
// equivalent of the unique index on transactionId.
func (r *payments) Record(_ context.Context, payment models.Payment) (*models.InsertResult, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.payments {
		if p.TransactionID == payment.TransactionID {
			return nil, false, nil
		}
	}
	payment.ID = primitive.NewObjectID()
	r.s.payments = append(r.s.payments, payment)
	return &models.InsertResult{Acknowledged: true, InsertedID: payment.ID.Hex()}, true, nil
}

func matched(modified bool) *models.UpdateResult {
	res := &models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if modified {
		res.ModifiedCount = 1
	}
	return res
}

func upserted(id primitive.ObjectID) *models.UpdateResult {
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id.Hex()}
}
