package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/dental-care-api/internal/apperrors"
	"github.com/harentsoaR/dental-care-api/internal/models"
)

type mongoDoctors struct {
	coll *mongo.Collection
}

func NewDoctorRepository(coll *mongo.Collection) DoctorRepository {
	return &mongoDoctors{coll: coll}
}

func (r *mongoDoctors) List(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return doctors, nil
}

func (r *mongoDoctors) Get(ctx context.Context, id string) (*models.Doctor, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var doctor models.Doctor
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return &doctor, nil
}

func (r *mongoDoctors) Create(ctx context.Context, doctor models.Doctor) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	return toInsertResult(res), nil
}

func (r *mongoDoctors) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete doctor: %w", err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
