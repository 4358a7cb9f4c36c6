package middleware

import (
	"errors"
	"net/http"
	"strings"

	"api/config"
	"api/database"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "user"

// Constants for error messages
const (
	ErrNoTokenProvided = "No token provided"
	ErrInvalidToken    = "Invalid or expired token"
	ErrUserNotFound    = "User not found"
)

// AuthMiddleware authenticates the request from the bearer token or the
// auth_token cookie issued by the host platform and loads the matching user
// into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrNoTokenProvided})
			return
		}

		userID, err := parseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken})
			return
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUserNotFound})
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// GetUserFromRequest returns the authenticated user stored by AuthMiddleware.
// The error response is already written when an error is returned.
func GetUserFromRequest(c *gin.Context) (*models.User, error) {
	value, exists := c.Get(userContextKey)
	if !exists {
		response.Error(c, http.StatusUnauthorized, ErrNoTokenProvided)
		return nil, errors.New("no authenticated user in context")
	}

	user, ok := value.(*models.User)
	if !ok {
		response.Error(c, http.StatusUnauthorized, ErrInvalidToken)
		return nil, errors.New("invalid user in context")
	}
	return user, nil
}

// extractToken reads the token from the Authorization header or the cookie
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// parseToken validates the JWT signature and returns the subject user id
func parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	userID, err := claims.GetSubject()
	if err != nil || userID == "" {
		return "", errors.New("missing subject")
	}
	return userID, nil
}
