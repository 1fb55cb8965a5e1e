package middleware

import (
	"net/http"

	"nutriapp/internal/apierror"
	"nutriapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	// TokenCookie is the cookie the frontend stores the bearer token in.
	TokenCookie = "myTokenName"

	ClaimsKey = "claims"
)

// TokenAuth validates the token cookie on every protected route. A missing
// cookie fails closed with 401; any verification failure (bad signature,
// expired, malformed) is logged with its exact cause and answered with a
// uniform 403 so clients learn nothing about internal token state.
func TokenAuth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(TokenCookie)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Null Token"))
			return
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Err(err).
				Msg("token rejected")
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Token invalido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *service.TokenClaims {
	claims, _ := c.MustGet(ClaimsKey).(*service.TokenClaims)
	return claims
}
