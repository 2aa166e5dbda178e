package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/auth"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/response"
)

// AuthMiddleware resolves the bearer token to an identity, checks the
// active flag and stores the user in the request context.
func AuthMiddleware(tokens *auth.TokenService, svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, apperror.ErrUnauthenticated)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, apperror.ErrUnauthenticated)
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			response.Abort(c, err)
			return
		}

		user, err := svc.GetUserByID(userID)
		if err != nil {
			response.Abort(c, apperror.ErrUnauthenticated)
			return
		}
		if !user.IsActive {
			response.Abort(c, apperror.ErrAccountInactive)
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// RequireRole enforces the minimum role for the operation. Must run
// after AuthMiddleware.
func RequireRole(min auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			response.Abort(c, apperror.ErrUnauthenticated)
			return
		}
		if !user.Role.AtLeast(min) {
			response.Abort(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(auth.RoleAdmin)
}
