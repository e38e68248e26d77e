package handlers

import (
	"github.com/anjiri1684/precision_martial/services"
	"github.com/gofiber/fiber/v2"
)

type UploadSigner interface {
	Sign() (*services.UploadSignature, error)
}

type UploadHandler struct {
	signer UploadSigner
}

// NewUploadHandler accepts a nil signer when Cloudinary is not configured.
func NewUploadHandler(signer UploadSigner) *UploadHandler {
	return &UploadHandler{signer: signer}
}

// GenerateUploadSignature creates a secure signature for a frontend class photo upload.
func (h *UploadHandler) GenerateUploadSignature(c *fiber.Ctx) error {
	if h.signer == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Uploads are not configured")
	}

	signature, err := h.signer.Sign()
	if err != nil {
		return serverError(c, err, "Failed to sign upload params")
	}
	return c.JSON(signature)
}
