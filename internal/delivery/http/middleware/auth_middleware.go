package middleware

import (
	"net/http"
	"strings"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token (header first, cookie fallback)
// into a verified identity and stores it on the request context. The user
// record is re-read on every request so role and active status are current.
func AuthMiddleware(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		identity, err := authUC.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), identity.UserID)
		c.Set(string(domain.KeyUserEmail), identity.Email)
		c.Set(string(domain.KeyUserRole), identity.Role)

		c.Next()
	}
}

// IdentityFromContext rebuilds the Identity stored by AuthMiddleware.
func IdentityFromContext(c *gin.Context) domain.Identity {
	return domain.Identity{
		UserID: c.GetString(string(domain.KeyUserID)),
		Email:  c.GetString(string(domain.KeyUserEmail)),
		Role:   c.GetString(string(domain.KeyUserRole)),
	}
}
