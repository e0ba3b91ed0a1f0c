package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/dental-care-api/internal/models"
)

type mongoAppointments struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(coll *mongo.Collection) AppointmentRepository {
	return &mongoAppointments{coll: coll}
}

func (r *mongoAppointments) ListByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"bookedBy": email})
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	defer cursor.Close(ctx)

	// Empty slice, not nil, so the response is [] when nothing is booked.
	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appointments, nil
}

func (r *mongoAppointments) SetReview(ctx context.Context, id string, review models.Review) (*models.UpdateResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"review": review}})
	if err != nil {
		return nil, fmt.Errorf("update appointment review: %w", err)
	}
	return toUpdateResult(res), nil
}

func (r *mongoAppointments) Create(ctx context.Context, appointment models.Appointment) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, appointment)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return toInsertResult(res), nil
}
