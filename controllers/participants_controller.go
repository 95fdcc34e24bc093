package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/healthhub/camp-server-go/config"
	models "github.com/healthhub/camp-server-go/models"
)

type participantData struct {
	ParticipantName  string `json:"participantName"`
	ParticipantEmail string `json:"participantEmail"`
	Age              int    `json:"age"`
	Phone            string `json:"phone"`
	Gender           string `json:"gender"`
	EmergencyContact string `json:"emergencyContact"`
	HealthIssue      string `json:"healthIssue"`

	// Clients sometimes send these; registration ignores them.
	ConfirmationStatus string `json:"confirmationStatus"`
	PaymentStatus      string `json:"paymentStatus"`
}

type campSnapshot struct {
	CampName          string     `json:"campName"`
	CampFees          float64    `json:"campFees"`
	VenueLocation     string     `json:"venueLocation"`
	ScheduledDateTime *time.Time `json:"scheduledDateTime"`
}

// newParticipant builds the registration record. Both statuses always
// start at "pending" no matter what the caller supplied.
func newParticipant(campID primitive.ObjectID, data participantData, camp campSnapshot) models.Participant {
	return models.Participant{
		ID:                 primitive.NewObjectID(),
		CampID:             campID,
		ParticipantName:    data.ParticipantName,
		ParticipantEmail:   data.ParticipantEmail,
		Age:                data.Age,
		Phone:              data.Phone,
		Gender:             data.Gender,
		EmergencyContact:   data.EmergencyContact,
		HealthIssue:        data.HealthIssue,
		ConfirmationStatus: models.StatusPending,
		PaymentStatus:      models.StatusPending,
		CampName:           camp.CampName,
		CampFees:           camp.CampFees,
		VenueLocation:      camp.VenueLocation,
		ScheduledDateTime:  camp.ScheduledDateTime,
	}
}

// ---------------- REGISTER ----------------
func RegisterParticipant(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CampID          string          `json:"campId" binding:"required"`
			ParticipantData participantData `json:"participantData"`
			CampData        campSnapshot    `json:"campData"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		campID, err := primitive.ObjectIDFromHex(input.CampID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camp id"})
			return
		}

		participant := newParticipant(campID, input.ParticipantData, input.CampData)

		col := cfg.MongoClient.Database(cfg.DBName).Collection("participants")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, participant); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register participant"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func listParticipants(cfg *config.Config, filter func(email string) bson.M) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		col := cfg.MongoClient.Database(cfg.DBName).Collection("participants")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, filter(email))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch participants"})
			return
		}

		var participants []models.Participant
		if err := cursor.All(ctx, &participants); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode participants"})
			return
		}
		if participants == nil {
			participants = []models.Participant{}
		}

		c.JSON(http.StatusOK, participants)
	}
}

// ---------------- LIST ----------------
func ListParticipantsByEmail(cfg *config.Config) gin.HandlerFunc {
	return listParticipants(cfg, func(email string) bson.M {
		return bson.M{"participantEmail": email}
	})
}

// Only registrations the participant has paid for.
func ListAttendedByEmail(cfg *config.Config) gin.HandlerFunc {
	return listParticipants(cfg, func(email string) bson.M {
		return bson.M{"participantEmail": email, "paymentStatus": models.StatusPaid}
	})
}

// ---------------- GET ----------------
func GetRegistered(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant id"})
			return
		}

		var participant models.Participant
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = cfg.MongoClient.Database(cfg.DBName).
			Collection("participants").
			FindOne(ctx, bson.M{"_id": oid}).
			Decode(&participant)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "participant not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch participant"})
			return
		}

		c.JSON(http.StatusOK, participant)
	}
}
