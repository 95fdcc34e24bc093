package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	config "github.com/healthhub/camp-server-go/config"
)

func TestSubscribeNewsletterBadInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/newsletter", SubscribeNewsletter(&config.Config{}))

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "nope"},
		{name: "missing email", body: `{}`},
		{name: "blank email", body: `{"email":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/newsletter", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func postNewsletter(mt *mtest.T, body string) *httptest.ResponseRecorder {
	mt.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/newsletter", SubscribeNewsletter(&config.Config{MongoClient: mt.Client, DBName: "healthHub"}))

	req := httptest.NewRequest(http.MethodPost, "/newsletter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubscribeNewsletterStorePaths(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("first subscribe succeeds", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "healthHub.newsletters", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		w := postNewsletter(mt, `{"email":"A@X.COM"}`)

		assert.Equal(mt, http.StatusCreated, w.Code)
		assert.Contains(mt, w.Body.String(), `"email":"a@x.com"`)
	})

	mt.Run("second identical subscribe conflicts", func(mt *mtest.T) {
		existing := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@x.com"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthHub.newsletters", mtest.FirstBatch, existing))

		w := postNewsletter(mt, `{"email":"a@x.com"}`)

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), "Email Already Subscribed!")
	})

	mt.Run("case-insensitive duplicate conflicts", func(mt *mtest.T) {
		existing := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@x.com"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthHub.newsletters", mtest.FirstBatch, existing))

		w := postNewsletter(mt, `{"email":"  A@x.Com "}`)

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), "Email Already Subscribed!")
	})

	// Two concurrent subscribes can both pass the existence check; the
	// unique index turns the losing insert into the same conflict reply.
	mt.Run("lost insert race conflicts", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "healthHub.newsletters", mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error collection: healthHub.newsletters index: email_1",
			}),
		)

		w := postNewsletter(mt, `{"email":"a@x.com"}`)

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), "Email Already Subscribed!")
	})
}
