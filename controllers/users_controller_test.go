package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	config "github.com/healthhub/camp-server-go/config"
)

func getUser(mt *mtest.T, email string) *httptest.ResponseRecorder {
	mt.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user/:email", GetUser(&config.Config{MongoClient: mt.Client, DBName: "healthHub"}))

	req := httptest.NewRequest(http.MethodGet, "/user/"+email, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetUserStorePaths(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		user := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@x.com"},
			{Key: "displayName", Value: "Amina"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthHub.users", mtest.FirstBatch, user))

		w := getUser(mt, "a@x.com")

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), "Amina")
	})

	mt.Run("unknown email is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthHub.users", mtest.FirstBatch))

		w := getUser(mt, "nobody@x.com")

		assert.Equal(mt, http.StatusNotFound, w.Code)
		assert.Contains(mt, w.Body.String(), "user not found")
	})

	mt.Run("store failure is a 500", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11601,
			Name:    "Interrupted",
			Message: "operation was interrupted",
		}))

		w := getUser(mt, "a@x.com")

		assert.Equal(mt, http.StatusInternalServerError, w.Code)
		assert.Contains(mt, w.Body.String(), "could not fetch user")
	})
}
