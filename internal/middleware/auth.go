package middleware

import (
	stderrors "errors"

	"core-banking-statements/internal/errors"
	"core-banking-statements/internal/handlers"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid operator JWT.
// The subject and role of the token are stored on the echo context.
func RequireAuth(verifier services.TokenVerifierInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := verifier.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := verifier.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			if claims.Subject == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Token has no subject"))
			}

			c.Set(handlers.OperatorContextKey, claims.Subject)
			c.Set(handlers.OperatorRoleContextKey, claims.Role)

			return next(c)
		}
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(handlers.OperatorRoleContextKey).(string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Operator role not found in token"))
			}

			for _, r := range requiredRoles {
				if role == r {
					return next(c)
				}
			}

			return handlers.SendError(c, errors.AuthInsufficientPermission)
		}
	}
}

// RequireOperator allows only operators to call mutating endpoints
func RequireOperator() echo.MiddlewareFunc {
	return RequireRole(models.RoleOperator)
}
