package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/healthhub/camp-server-go/config"
	models "github.com/healthhub/camp-server-go/models"
	utils "github.com/healthhub/camp-server-go/utils"
)

// ---------------- SUBSCRIBE ----------------
// Emails are normalized to lowercase before the existence check, so
// uniqueness is case-insensitive.
func SubscribeNewsletter(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := models.NormalizeEmail(input.Email)
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("newsletters")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var existing models.NewsletterSubscriber
		if err := col.FindOne(ctx, bson.M{"email": email}).Decode(&existing); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email Already Subscribed!"})
			return
		}

		subscriber := models.NewsletterSubscriber{
			ID:    primitive.NewObjectID(),
			Email: email,
		}
		if _, err := col.InsertOne(ctx, subscriber); err != nil {
			// The unique index catches the concurrent subscribe that
			// slipped past the existence check.
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email Already Subscribed!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not subscribe"})
			return
		}

		// Welcome mail is best-effort; the subscription stands either way.
		go func() {
			if err := utils.SendEmail(
				subscriber.Email,
				"Welcome to the Health Hub newsletter",
				"<p>Thanks for subscribing! We will keep you posted on upcoming medical camps.</p>",
			); err != nil {
				log.Printf("newsletter welcome email to %s failed: %v", subscriber.Email, err)
			}
		}()

		c.JSON(http.StatusCreated, subscriber)
	}
}
