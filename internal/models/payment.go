package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	AppointmentID string             `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
}

// RecordPaymentRequest is the body of POST /payments.
type RecordPaymentRequest struct {
	TransactionID string     `json:"transactionId" binding:"required"`
	Email         string     `json:"email" binding:"omitempty,email"`
	Price         float64    `json:"price" binding:"gte=0"`
	AppointmentID string     `json:"appointmentId"`
	Status        string     `json:"status"`
	Date          *time.Time `json:"date"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent. Price is a
// pointer so an absent value can be told apart from zero.
type PaymentIntentRequest struct {
	Price *float64 `json:"price"`
}
