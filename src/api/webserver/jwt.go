package webserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 30 * time.Minute

func issueJWT(subject string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(tokenLifetime).Unix(),
	})
	return token.SignedString(secret)
}

func parseJWT(raw string, secret []byte) (string, bool) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) { return secret, nil })
	if err != nil || !tok.Valid {
		return "", false
	}
	sub, _ := tok.Claims.(jwt.MapClaims)["sub"].(string)
	if sub == "" {
		return "", false
	}
	return sub, true
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return h[7:]
}

func JWTMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		sub, ok := parseJWT(raw, secret)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set("user", sub)
		c.Next()
	}
}
