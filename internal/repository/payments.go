package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/dental-care-api/internal/models"
)

type mongoPayments struct {
	coll *mongo.Collection
}

func NewPaymentRepository(coll *mongo.Collection) PaymentRepository {
	return &mongoPayments{coll: coll}
}

// Record is a conditional insert: an upsert keyed on transactionId that only
// writes on insert. Two racing requests either match the existing document
// or collide on the unique index; both outcomes mean "already recorded".
func (r *mongoPayments) Record(ctx context.Context, payment models.Payment) (*models.InsertResult, bool, error) {
	payment.ID = primitive.NewObjectID()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"transactionId": payment.TransactionID},
		bson.M{"$setOnInsert": payment},
		options.Update().SetUpsert(true),
	)
	if mongo.IsDuplicateKeyError(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("record payment: %w", err)
	}
	if res.UpsertedCount == 0 {
		return nil, false, nil
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: payment.ID.Hex()}, true, nil
}
