package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

const decodedKey = "user"

// TokenPolicy is the signing and claim policy shared with token issuance.
type TokenPolicy interface {
	Keyfunc(t *jwt.Token) (interface{}, error)
	CheckClaims(claims jwt.MapClaims) error
}

// Protected rejects requests without a valid "Authorization: Bearer <token>"
// header. The parsed token is kept in c.Locals("user").
func Protected(tokens TokenPolicy) fiber.Handler {
	return jwtware.New(jwtware.Config{
		KeyFunc:     tokens.Keyfunc,
		ContextKey:  decodedKey,
		TokenLookup: "header:" + fiber.HeaderAuthorization,
		AuthScheme:  "Bearer",
		SuccessHandler: func(c *fiber.Ctx) error {
			claims := DecodedClaims(c)
			if claims == nil {
				return jwtError(c, nil)
			}
			if err := tokens.CheckClaims(claims); err != nil {
				return jwtError(c, err)
			}
			return c.Next()
		},
		ErrorHandler: jwtError,
	})
}

// Missing, malformed, forged and expired tokens all get the same answer.
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   true,
		"code":    fiber.StatusUnauthorized,
		"message": "Unauthorized access",
	})
}

// DecodedClaims returns the claims attached by Protected, or nil when the
// request did not pass through it.
func DecodedClaims(c *fiber.Ctx) jwt.MapClaims {
	token, ok := c.Locals(decodedKey).(*jwt.Token)
	if !ok || token == nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

func DecodedEmail(c *fiber.Ctx) string {
	email, _ := DecodedClaims(c)["email"].(string)
	return email
}
