package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Participant is a camp registration: the registrant's personal and
// health details plus a snapshot of the camp's display fields taken at
// registration time. The snapshot is intentionally not kept in sync
// with the camp document afterwards.
type Participant struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampID             primitive.ObjectID `bson:"campId" json:"campId"`
	ParticipantName    string             `bson:"participantName" json:"participantName"`
	ParticipantEmail   string             `bson:"participantEmail" json:"participantEmail"`
	Age                int                `bson:"age,omitempty" json:"age,omitempty"`
	Phone              string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Gender             string             `bson:"gender,omitempty" json:"gender,omitempty"`
	EmergencyContact   string             `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
	HealthIssue        string             `bson:"healthIssue,omitempty" json:"healthIssue,omitempty"`
	ConfirmationStatus string             `bson:"confirmationStatus" json:"confirmationStatus"` // pending, confirmed
	PaymentStatus      string             `bson:"paymentStatus" json:"paymentStatus"`           // pending, paid

	// Camp snapshot, denormalized at registration.
	CampName          string     `bson:"campName" json:"campName"`
	CampFees          float64    `bson:"campFees" json:"campFees"`
	VenueLocation     string     `bson:"venueLocation,omitempty" json:"venueLocation,omitempty"`
	ScheduledDateTime *time.Time `bson:"scheduledDateTime,omitempty" json:"scheduledDateTime,omitempty"`
}
