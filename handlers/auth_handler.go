package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type TokenIssuer interface {
	Issue(payload map[string]interface{}) (string, error)
}

type AuthHandler struct {
	tokens TokenIssuer
}

func NewAuthHandler(tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken signs whatever identity object the client posts, typically {"email": ...}.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		return serverError(c, err, "Failed to create token")
	}
	return c.JSON(fiber.Map{"token": token})
}
