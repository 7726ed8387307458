package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/lucasmtr/blog-platform/backend/internal/models"
)

// userContextKey is where verified claims are stored on the request context
const userContextKey = "user"

// JWTAuth checks for a valid bearer JWT and stores the user claims on the
// request context. Requests without a valid token are rejected.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := extractBearerToken(c)
			if err != nil {
				return err
			}

			claims, err := parseToken(tokenString, secret)
			if err != nil {
				return err
			}

			c.Set(userContextKey, claims)
			return next(c)
		}
	}
}

// OptionalJWTAuth parses a bearer token when one is supplied but lets the
// request through anonymously when it is missing or invalid. Used on routes
// whose response is enriched for authenticated callers.
func OptionalJWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := extractBearerToken(c)
			if err == nil {
				if claims, err := parseToken(tokenString, secret); err == nil {
					c.Set(userContextKey, claims)
				}
			}
			return next(c)
		}
	}
}

// AdminOnly rejects requests whose token claims do not carry the admin flag.
// Must run after JWTAuth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetUserClaims(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
			}
			if !claims.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied. Admin privileges required")
			}
			return next(c)
		}
	}
}

// GetUserClaims returns the verified claims stored by JWTAuth, or nil for
// anonymous requests
func GetUserClaims(c echo.Context) *models.JwtCustomClaims {
	claims, _ := c.Get(userContextKey).(*models.JwtCustomClaims)
	return claims
}

func extractBearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
	}

	// Expecting "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
	}
	return parts[1], nil
}

func parseToken(tokenString, secret string) (*models.JwtCustomClaims, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token signature")
		}
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}
	if !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	return claims, nil
}
