package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookedBy    string             `bson:"bookedBy" json:"bookedBy"`
	PatientName string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	DoctorID    string             `bson:"doctorId,omitempty" json:"doctorId,omitempty"`
	DoctorName  string             `bson:"doctorName,omitempty" json:"doctorName,omitempty"`
	Date        string             `bson:"date,omitempty" json:"date,omitempty"`
	Slot        string             `bson:"slot,omitempty" json:"slot,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Review      *Review            `bson:"review,omitempty" json:"review,omitempty"`
}

type Review struct {
	Rating  int    `bson:"rating,omitempty" json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Comment string `bson:"comment,omitempty" json:"comment,omitempty"`
}

// CreateAppointmentRequest is the body of POST /appointments.
type CreateAppointmentRequest struct {
	BookedBy    string  `json:"bookedBy" binding:"required,email"`
	PatientName string  `json:"patientName"`
	DoctorID    string  `json:"doctorId"`
	DoctorName  string  `json:"doctorName"`
	Date        string  `json:"date"`
	Slot        string  `json:"slot"`
	Price       float64 `json:"price" binding:"gte=0"`
}

func (r CreateAppointmentRequest) ToAppointment() Appointment {
	return Appointment{
		BookedBy:    r.BookedBy,
		PatientName: r.PatientName,
		DoctorID:    r.DoctorID,
		DoctorName:  r.DoctorName,
		Date:        r.Date,
		Slot:        r.Slot,
		Price:       r.Price,
	}
}
