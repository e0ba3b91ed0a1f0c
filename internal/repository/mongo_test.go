package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/harentsoaR/dental-care-api/internal/apperrors"
	"github.com/harentsoaR/dental-care-api/internal/models"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoPaymentsRecord(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts new transaction", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{
				bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: primitive.NewObjectID()}},
			}},
		))

		res, created, err := repo.Record(context.Background(), models.Payment{TransactionID: "tx1"})
		require.NoError(mt, err)
		assert.True(mt, created)
		assert.NotEmpty(mt, res.InsertedID)
	})

	mt.Run("existing transaction is not inserted", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		res, created, err := repo.Record(context.Background(), models.Payment{TransactionID: "tx1"})
		require.NoError(mt, err)
		assert.False(mt, created)
		assert.Nil(mt, res)
	})

	mt.Run("duplicate key from a racing insert", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: Dental_Care.payments index: transactionId_unique",
		}))

		_, created, err := repo.Record(context.Background(), models.Payment{TransactionID: "tx1"})
		require.NoError(mt, err)
		assert.False(mt, created)
	})

	mt.Run("other store errors propagate", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad update document",
		}))

		_, _, err := repo.Record(context.Background(), models.Payment{TransactionID: "tx1"})
		assert.Error(mt, err)
	})
}

func TestMongoUsersFindByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "admin@dental.care"},
			{Key: "role", Value: "admin"},
		}))

		user, err := repo.FindByEmail(context.Background(), "admin@dental.care")
		require.NoError(mt, err)
		assert.True(mt, user.IsAdmin())
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.FindByEmail(context.Background(), "ghost@dental.care")
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})
}

func TestMongoUsersSetRole(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("updates existing", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.SetRole(context.Background(), primitive.NewObjectID().Hex(), models.RoleAdmin)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Equal(mt, int64(1), res.ModifiedCount)
	})

	mt.Run("malformed id never reaches the store", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)

		_, err := repo.SetRole(context.Background(), "not-an-id", models.RoleAdmin)
		assert.ErrorIs(mt, err, apperrors.ErrInvalidInput)
	})
}

func TestMongoAppointmentsListByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no bookings yields empty slice", func(mt *mtest.T) {
		repo := NewAppointmentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		list, err := repo.ListByEmail(context.Background(), "nobody@example.com")
		require.NoError(mt, err)
		assert.NotNil(mt, list)
		assert.Empty(mt, list)
	})

	mt.Run("returns bookings", func(mt *mtest.T) {
		repo := NewAppointmentRepository(mt.Coll)
		first := mtest.CreateCursorResponse(1, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "bookedBy", Value: "patient@example.com"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "bookedBy", Value: "patient@example.com"}},
		)
		killCursors := mtest.CreateCursorResponse(0, namespace(mt), mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		list, err := repo.ListByEmail(context.Background(), "patient@example.com")
		require.NoError(mt, err)
		assert.Len(mt, list, 2)
	})
}

func TestMongoDoctorsCreateAndDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := NewDoctorRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		res, err := repo.Create(context.Background(), models.Doctor{Name: "Dr. Smile"})
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewDoctorRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.DeletedCount)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		repo := NewDoctorRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.Get(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})
}
