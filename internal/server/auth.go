package server

import (
	"fmt"
	"net/http"
	"time"

	"shackchat/internal/chat"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// issueToken signs a session token carrying the session ID
func (s *Server) issueToken(sessionID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"iat":        time.Now().Unix(),
	})
	return token.SignedString(s.secret)
}

// parseToken validates a session token and returns the session ID
func (s *Server) parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", fmt.Errorf("token missing session_id")
	}
	return sessionID, nil
}

// AuthMiddleware resolves the session from the Authorization header and
// aborts with 401 when the token is missing or invalid
func (s *Server) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		sessionID, err := s.parseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		sess, ok := s.session(sessionID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown session"})
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Next()
	}
}

// currentSession returns the session attached by AuthMiddleware
func currentSession(c *gin.Context) *chat.Session {
	v, _ := c.Get("session")
	sess, _ := v.(*chat.Session)
	return sess
}
