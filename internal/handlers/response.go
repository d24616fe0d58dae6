package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/interview-iq/internal/services"
)

const SessionIDHeader = "X-Session-ID"

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
		"code":  status,
	})
}

// statusFor maps pipeline errors onto HTTP status codes. Model output that
// cannot be parsed is a server fault and shares 500 with unclassified errors.
func statusFor(err error) int {
	switch services.KindOf(err) {
	case services.KindIllFormedInput:
		return fiber.StatusUnprocessableEntity
	case services.KindUpstream:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func setSessionHeader(c *fiber.Ctx, id *uuid.UUID) {
	if id != nil {
		c.Set(SessionIDHeader, id.String())
	}
}
