package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenCookieName is the session cookie the guard reads.
const TokenCookieName = "token"

// TokenValidity matches the frontend's long-lived session expectation.
const TokenValidity = 365 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// SignToken signs the caller-supplied identity payload as HMAC claims
// with a 365-day expiry.
func SignToken(identity map[string]interface{}, secret string) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(TokenValidity).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken validates signature and expiry and returns the decoded
// identity claims.
func VerifyToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SetTokenCookie writes the session cookie. In production the frontend
// is served cross-site, so the cookie needs SameSite=None + Secure;
// local development uses Strict without Secure.
func SetTokenCookie(c *gin.Context, token string, production bool) {
	cookie := &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenValidity.Seconds()),
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteStrictMode,
	}
	if production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(c.Writer, cookie)
}

// ClearTokenCookie expires the session cookie with the same attributes
// it was set with, otherwise browsers keep the old one.
func ClearTokenCookie(c *gin.Context, production bool) {
	cookie := &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteStrictMode,
	}
	if production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(c.Writer, cookie)
}
