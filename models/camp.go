package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Camp is shared by the "camps" and "upcoming-camps" collections.
// The two collections carry the same schema; which one a document
// lives in marks its lifecycle stage.
type Camp struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampName                string             `bson:"campName" json:"campName"`
	Image                   string             `bson:"image,omitempty" json:"image,omitempty"`
	ScheduledDateTime       *time.Time         `bson:"scheduledDateTime,omitempty" json:"scheduledDateTime,omitempty"`
	VenueLocation           string             `bson:"venueLocation,omitempty" json:"venueLocation,omitempty"`
	SpecializedServices     string             `bson:"specializedServices,omitempty" json:"specializedServices,omitempty"`
	HealthcareProfessionals string             `bson:"healthcareProfessionals,omitempty" json:"healthcareProfessionals,omitempty"`
	TargetAudience          string             `bson:"targetAudience,omitempty" json:"targetAudience,omitempty"`
	CampFees                float64            `bson:"campFees" json:"campFees"`
	PeopleAttended          int                `bson:"peopleAttended" json:"peopleAttended"`
}
