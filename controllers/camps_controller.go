package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/healthhub/camp-server-go/config"
	models "github.com/healthhub/camp-server-go/models"
	utils "github.com/healthhub/camp-server-go/utils"
)

const popularCampLimit = 6

// sortedFindOpts builds the top-N query options used by the popular /
// least-popular listings.
func sortedFindOpts(field string, direction int, limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: field, Value: direction}}).
		SetLimit(limit)
}

func listCamps(cfg *config.Config, collection string, opts *options.FindOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection(collection)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var cursorOpts []*options.FindOptions
		if opts != nil {
			cursorOpts = append(cursorOpts, opts)
		}
		cursor, err := col.Find(ctx, bson.M{}, cursorOpts...)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch camps"})
			return
		}

		var camps []models.Camp
		if err := cursor.All(ctx, &camps); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode camps"})
			return
		}
		if camps == nil {
			camps = []models.Camp{}
		}

		c.JSON(http.StatusOK, camps)
	}
}

// ---------------- LIST ----------------
func ListCamps(cfg *config.Config) gin.HandlerFunc {
	return listCamps(cfg, "camps", nil)
}

func ListUpcomingCamps(cfg *config.Config) gin.HandlerFunc {
	return listCamps(cfg, "upcoming-camps", nil)
}

// Top 6 by attendance, most attended first.
func ListPopularCamps(cfg *config.Config) gin.HandlerFunc {
	return listCamps(cfg, "camps", sortedFindOpts("peopleAttended", -1, popularCampLimit))
}

func ListLeastPopularCamps(cfg *config.Config) gin.HandlerFunc {
	return listCamps(cfg, "camps", sortedFindOpts("peopleAttended", 1, popularCampLimit))
}

// ---------------- GET ----------------
// A malformed id is the caller's fault (400); a well-formed id with no
// document behind it is a 404.
func GetCampDetails(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		campID, err := primitive.ObjectIDFromHex(c.Param("campId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camp id"})
			return
		}

		var camp models.Camp
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = cfg.MongoClient.Database(cfg.DBName).
			Collection("camps").
			FindOne(ctx, bson.M{"_id": campID}).
			Decode(&camp)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "camp not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch camp"})
			return
		}

		c.JSON(http.StatusOK, camp)
	}
}

// ---------------- CREATE (organizer) ----------------
func createCamp(cfg *config.Config, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CampName                string  `form:"campName" binding:"required"`
			ScheduledDateTime       *string `form:"scheduledDateTime"`
			VenueLocation           string  `form:"venueLocation"`
			SpecializedServices     string  `form:"specializedServices"`
			HealthcareProfessionals string  `form:"healthcareProfessionals"`
			TargetAudience          string  `form:"targetAudience"`
			CampFees                float64 `form:"campFees"`
		}
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var scheduled *time.Time
		if input.ScheduledDateTime != nil && *input.ScheduledDateTime != "" {
			parsed, err := time.Parse(time.RFC3339, *input.ScheduledDateTime)
			if err != nil {
				layouts := []string{"2006-01-02", "2006-01-02 15:04", "2006-01-02 15:04:05"}
				for _, layout := range layouts {
					if t, e := time.Parse(layout, *input.ScheduledDateTime); e == nil {
						parsed = t
						err = nil
						break
					}
				}
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduledDateTime format, use RFC3339 or YYYY-MM-DD"})
					return
				}
			}
			scheduled = &parsed
		}

		form, err := c.MultipartForm()
		if err != nil && err != http.ErrNotMultipart {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
			return
		}

		var imageURL string
		if form != nil {
			if files := form.File["image"]; len(files) > 0 {
				fileHeader := files[0]
				file, err := fileHeader.Open()
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
					return
				}
				url, err := utils.UploadToCloudinary(file, fileHeader)
				file.Close()
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{
						"error":   "image upload failed",
						"details": err.Error(),
						"file":    fileHeader.Filename,
					})
					return
				}
				imageURL = url
			}
		}

		camp := models.Camp{
			ID:                      primitive.NewObjectID(),
			CampName:                input.CampName,
			Image:                   imageURL,
			ScheduledDateTime:       scheduled,
			VenueLocation:           input.VenueLocation,
			SpecializedServices:     input.SpecializedServices,
			HealthcareProfessionals: input.HealthcareProfessionals,
			TargetAudience:          input.TargetAudience,
			CampFees:                input.CampFees,
			PeopleAttended:          0,
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection(collection)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, camp); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create camp"})
			return
		}

		c.JSON(http.StatusCreated, camp)
	}
}

func CreateCamp(cfg *config.Config) gin.HandlerFunc {
	return createCamp(cfg, "camps")
}

func CreateUpcomingCamp(cfg *config.Config) gin.HandlerFunc {
	return createCamp(cfg, "upcoming-camps")
}
