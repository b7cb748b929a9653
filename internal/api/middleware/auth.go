package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Fixed 401 reasons. The wording is part of the API contract.
const (
	MsgHeaderMissing = "Authorization header is missing"
	MsgNotBearer     = "Authorization header is not a bearer token"
	MsgInvalidToken  = "Your token is invalid or has expired"
)

// ContextAccountID is the echo context key the authenticated account ID is
// stored under.
const ContextAccountID = "account_id"

// TokenVerifier validates a bearer token and returns the account ID it was
// issued for.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// Auth rejects requests without a valid bearer token and injects the
// resolved account ID into the context.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, MsgHeaderMissing)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, MsgNotBearer)
			}

			accountID, err := verifier.VerifyToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, MsgInvalidToken)
			}

			c.Set(ContextAccountID, accountID)
			return next(c)
		}
	}
}
