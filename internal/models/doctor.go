package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	Specialty      string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	About          string             `bson:"about,omitempty" json:"about,omitempty"`
	Fee            float64            `bson:"fee,omitempty" json:"fee,omitempty"`
	AvailableSlots []string           `bson:"availableSlots,omitempty" json:"availableSlots,omitempty"`
}

// CreateDoctorRequest is the body of POST /doctors.
type CreateDoctorRequest struct {
	Name           string   `json:"name" binding:"required"`
	Specialty      string   `json:"specialty"`
	Email          string   `json:"email" binding:"omitempty,email"`
	Phone          string   `json:"phone"`
	Image          string   `json:"image"`
	About          string   `json:"about"`
	Fee            float64  `json:"fee" binding:"gte=0"`
	AvailableSlots []string `json:"availableSlots"`
}

func (r CreateDoctorRequest) ToDoctor() Doctor {
	return Doctor{
		Name:           r.Name,
		Specialty:      r.Specialty,
		Email:          r.Email,
		Phone:          r.Phone,
		Image:          r.Image,
		About:          r.About,
		Fee:            r.Fee,
		AvailableSlots: r.AvailableSlots,
	}
}
