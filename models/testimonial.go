package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Testimonial struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampName string             `bson:"campName" json:"campName"`
	Date     time.Time          `bson:"date" json:"date"`
	Feedback string             `bson:"feedback" json:"feedback"`
	Rating   float64            `bson:"rating" json:"rating"` // 1-5
}
