package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/healthhub/camp-server-go/config"
	controllers "github.com/healthhub/camp-server-go/controllers"
	middleware "github.com/healthhub/camp-server-go/middleware"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	// health
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from Health Hub Server..")
	})

	// auth
	r.POST("/jwt", controllers.IssueToken(cfg))
	r.GET("/logout", controllers.Logout(cfg))

	// public reads + signup flows
	r.PUT("/users/:email", controllers.SaveUser(cfg))
	r.GET("/camps", controllers.ListCamps(cfg))
	r.GET("/popular-camps", controllers.ListPopularCamps(cfg))
	r.GET("/least-popular-camps", controllers.ListLeastPopularCamps(cfg))
	r.GET("/camp-details/:campId", controllers.GetCampDetails(cfg))
	r.GET("/upcoming-camps", controllers.ListUpcomingCamps(cfg))
	r.GET("/testimonials", controllers.ListTestimonials(cfg))
	r.POST("/newsletter", controllers.SubscribeNewsletter(cfg))

	// protected
	auth := middleware.AuthMiddleware(cfg)

	users := r.Group("/", auth)
	{
		users.GET("users", controllers.ListUsers(cfg))
		users.POST("users", controllers.CreateUser(cfg))
		users.GET("user/:email", controllers.GetUser(cfg))
		users.PUT("user/:email", controllers.UpdateUserProfile(cfg))
	}

	camps := r.Group("/", auth)
	{
		camps.POST("camps", controllers.CreateCamp(cfg))
		camps.POST("upcoming-camps", controllers.CreateUpcomingCamp(cfg))
	}

	participants := r.Group("/", auth)
	{
		participants.POST("participant", controllers.RegisterParticipant(cfg))
		participants.GET("participant/:email", controllers.ListParticipantsByEmail(cfg))
		participants.GET("participant-attended/:email", controllers.ListAttendedByEmail(cfg))
		participants.GET("registered/:id", controllers.GetRegistered(cfg))
	}

	payments := r.Group("/", auth)
	{
		payments.POST("create-payment-intent", controllers.CreatePaymentIntent(cfg))
		payments.POST("payments", controllers.RecordPayment(cfg))
		payments.GET("payments", controllers.ListPayments(cfg))
		payments.GET("payments/:email", controllers.ListPaymentsByEmail(cfg))
	}
}
