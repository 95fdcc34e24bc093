package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/healthhub/camp-server-go/config"
	utils "github.com/healthhub/camp-server-go/utils"
)

// ---------------- ISSUE TOKEN ----------------
// The client sends its identity payload after social login; we sign it
// and hand it back as an http-only cookie.
func IssueToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var identity map[string]interface{}
		if err := c.ShouldBindJSON(&identity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(identity) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "identity payload is required"})
			return
		}

		token, err := utils.SignToken(identity, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
			return
		}

		utils.SetTokenCookie(c, token, cfg.Production())
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ---------------- LOGOUT ----------------
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ClearTokenCookie(c, cfg.Production())
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
