package middleware

import (
	"context"
	"net/http"
	"strings"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/auth"
	"goals-project-backend/pkg/logger"
	"goals-project-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates an access token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// AuthMiddleware authenticates the Supabase access token and loads the caller's
// profile, creating it on first sign-in. The role always comes from the database.
func AuthMiddleware(verifier TokenVerifier, profiles domain.ProfileUsecase, audit *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			audit.LogAuthFailed(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), c.GetString(string(domain.KeyRequestID)), "missing token")
			response.Error(c, http.StatusUnauthorized, "Se requiere autenticación", nil)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			logger.Log.Debug("Token validation failed", "error", err)
			audit.LogAuthFailed(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), c.GetString(string(domain.KeyRequestID)), "invalid token")
			response.Error(c, http.StatusUnauthorized, "Token inválido o expirado", nil)
			c.Abort()
			return
		}

		profile, err := profiles.EnsureProfile(c.Request.Context(), claims.UserID, claims.Email)
		if err != nil {
			logger.Log.Error("Failed to load profile", "user_id", claims.UserID, "error", err)
			response.Error(c, http.StatusInternalServerError, "No se pudo cargar el perfil", nil)
			c.Abort()
			return
		}

		role := profile.Role
		if role == "" {
			role = domain.RoleUser
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), role)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// bearerToken reads the token from the Authorization header, then the auth_token cookie.
func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return ""
		}
		return strings.TrimSpace(token)
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// RequireRole rejects authenticated callers whose role is not one of roles.
func RequireRole(audit *security.SecurityLogger, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		audit.LogForbidden(c.Request.Context(), c.GetString(string(domain.KeyUserID)), c.ClientIP(),
			c.GetString(string(domain.KeyRequestID)), c.FullPath())
		response.Error(c, http.StatusForbidden, "No tienes permisos para este recurso", nil)
		c.Abort()
	}
}
