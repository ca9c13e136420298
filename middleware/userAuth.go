package middleware

import (
	"net/http"
	"strings"

	"carebridge/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// JWTAuthUserMiddleware guards customer-facing routes. The token subject
// (the verified phone number) is exposed on the context as userID.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return requireRole("user", "userID")
}

// JWTAuthProviderMiddleware guards workbench routes. The token subject (the
// provider ID) is exposed on the context as providerID.
func JWTAuthProviderMiddleware() gin.HandlerFunc {
	return requireRole("provider", "providerID")
}

func requireRole(role, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		sub, _ := claims["sub"].(string)
		tokenRole, _ := claims["role"].(string)
		if sub == "" || tokenRole != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(contextKey, sub)
		c.Next()
	}
}
