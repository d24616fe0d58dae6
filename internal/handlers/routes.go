package handlers

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, interview *InterviewHandler, sessions *SessionHandler) {
	app.Get("/", HandleRoot)
	app.Get("/health", HandleHealth)

	app.Post("/generate-questions", interview.HandleGenerateQuestions)
	app.Post("/generate-questions/pdf", interview.HandleGenerateQuestionsFromPDF)
	app.Post("/evaluate-answer", interview.HandleEvaluateAnswer)

	app.Get("/sessions/:id", sessions.HandleGetSession)
}
