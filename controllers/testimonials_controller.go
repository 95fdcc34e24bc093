package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	config "github.com/healthhub/camp-server-go/config"
	models "github.com/healthhub/camp-server-go/models"
)

const recentTestimonialLimit = 4

// ---------------- LIST ----------------
// Four most recent, newest first.
func ListTestimonials(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection("testimonials")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{}, sortedFindOpts("date", -1, recentTestimonialLimit))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch testimonials"})
			return
		}

		var testimonials []models.Testimonial
		if err := cursor.All(ctx, &testimonials); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode testimonials"})
			return
		}
		if testimonials == nil {
			testimonials = []models.Testimonial{}
		}

		c.JSON(http.StatusOK, testimonials)
	}
}
