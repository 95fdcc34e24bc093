package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL    string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"` // guest, participant, organizer
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// UserProfileUpdate is the PUT /user/:email body. Only these two
// fields are ever written back; everything else on the document stays.
type UserProfileUpdate struct {
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
}
