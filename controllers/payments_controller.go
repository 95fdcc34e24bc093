package controllers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	config "github.com/healthhub/camp-server-go/config"
	models "github.com/healthhub/camp-server-go/models"
)

// toMinorUnits converts a decimal price to the integer cent amount
// Stripe expects.
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// ---------------- PAYMENT INTENT ----------------
// Pure passthrough: ask Stripe for a client-confirmable intent.
func CreatePaymentIntent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Price float64 `json:"price"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than 0"})
			return
		}

		stripe.Key = cfg.StripeSecretKey
		params := &stripe.PaymentIntentParams{
			Amount:             stripe.Int64(toMinorUnits(input.Price)),
			Currency:           stripe.String(string(stripe.CurrencyUSD)),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		}

		intent, err := paymentintent.New(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create payment intent"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
	}
}

// ---------------- RECORD PAYMENT ----------------
// Two sequential writes, deliberately not a transaction: the payment
// record is kept even when the participant update matches nothing, and
// the caller sees both results. The campId body field carries the
// participant document id (wire-compat with existing clients).
func RecordPayment(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email         string    `json:"email" binding:"required"`
			Price         float64   `json:"price"`
			TransactionID string    `json:"transactionId" binding:"required"`
			Date          time.Time `json:"date"`
			CampID        string    `json:"campId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		payment := models.Payment{
			ID:            primitive.NewObjectID(),
			Email:         input.Email,
			Price:         input.Price,
			TransactionID: input.TransactionID,
			Date:          input.Date,
			CampID:        input.CampID,
		}
		if payment.Date.IsZero() {
			payment.Date = time.Now()
		}

		db := cfg.MongoClient.Database(cfg.DBName)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		insertRes, err := db.Collection("payments").InsertOne(ctx, payment)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record payment"})
			return
		}

		// Best-effort status flip. A malformed or unknown id leaves the
		// payment in place and reports zero matches.
		updateResult := gin.H{"matchedCount": 0, "modifiedCount": 0}
		if participantID, err := primitive.ObjectIDFromHex(input.CampID); err == nil {
			res, err := db.Collection("participants").UpdateOne(
				ctx,
				bson.M{"_id": participantID},
				bson.M{"$set": bson.M{"paymentStatus": models.StatusPaid}},
			)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "payment recorded but participant update failed"})
				return
			}
			updateResult = gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount}
		}

		c.JSON(http.StatusOK, gin.H{
			"paymentResult": gin.H{"insertedId": insertRes.InsertedID},
			"updateResult":  updateResult,
		})
	}
}

func listPayments(cfg *config.Config, filter bson.M) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := cfg.MongoClient.Database(cfg.DBName).Collection("payments").Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}

// ---------------- LIST ----------------
func ListPayments(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		payments, err := listPayments(cfg, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}

func ListPaymentsByEmail(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		payments, err := listPayments(cfg, bson.M{"email": c.Param("email")})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}
