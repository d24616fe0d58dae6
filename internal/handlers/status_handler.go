package handlers

import "github.com/gofiber/fiber/v2"

// HandleRoot handles GET /
func HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "InterviewIQ API",
		"status":    "running",
		"endpoints": []string{"/generate-questions", "/evaluate-answer"},
	})
}

// HandleHealth handles GET /health
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "InterviewIQ",
	})
}
