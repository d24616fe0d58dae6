package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/interview-iq/internal/logger"
	"alfredoptarigan/interview-iq/internal/models"
	"alfredoptarigan/interview-iq/internal/services"
)

const inputPreviewLength = 50

type InterviewHandler struct {
	service     services.InterviewService
	pdfParser   services.PDFParserService
	maxFileSize int64
	logger      *zap.Logger
}

func NewInterviewHandler(
	service services.InterviewService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
	log *zap.Logger,
) *InterviewHandler {
	return &InterviewHandler{
		service:     service,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
		logger:      log,
	}
}

// HandleGenerateQuestions handles POST /generate-questions
func (h *InterviewHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.JobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	return h.generateQuestions(c, req)
}

// HandleGenerateQuestionsFromPDF handles POST /generate-questions/pdf
func (h *InterviewHandler) HandleGenerateQuestionsFromPDF(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "failed to parse multipart form")
	}

	files := form.File["file"]
	if len(files) == 0 {
		return respondError(c, fiber.StatusBadRequest, "file is required")
	}

	file := files[0]
	if file.Size > h.maxFileSize {
		return respondError(c, fiber.StatusBadRequest, fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize))
	}

	data, err := readFormFile(file)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, fmt.Sprintf("failed to read uploaded file: %v", err))
	}
	if !services.IsPDF(data) {
		return respondError(c, fiber.StatusBadRequest, "file must be a PDF")
	}

	content, err := h.pdfParser.ExtractText(data)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, fmt.Sprintf("failed to read PDF: %v", err))
	}

	h.logger.Debug("job description extracted from PDF",
		zap.String("filename", file.Filename),
		zap.Int("pages", content.PageCount),
		zap.Int("characters", len([]rune(content.Text))),
	)

	return h.generateQuestions(c, models.JobDescriptionRequest{
		Title:           formValue(form, "title"),
		Description:     &content.Text,
		ExperienceLevel: formValue(form, "experience_level"),
	})
}

// HandleEvaluateAnswer handles POST /evaluate-answer
func (h *InterviewHandler) HandleEvaluateAnswer(c *fiber.Ctx) error {
	var req models.AnswerEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	preview := logger.TruncateForLog(deref(req.Question), inputPreviewLength)
	h.logger.Info("evaluating answer", zap.String("question", preview))

	result, err := h.service.EvaluateAnswer(c.UserContext(), req)
	if err != nil {
		return h.fail(c, "evaluate_answer", "Failed to evaluate answer", preview, err)
	}

	setSessionHeader(c, result.SessionID)
	return c.JSON(result.Response)
}

func (h *InterviewHandler) generateQuestions(c *fiber.Ctx, req models.JobDescriptionRequest) error {
	preview := logger.TruncateForLog(deref(req.Title), inputPreviewLength)
	h.logger.Info("generating questions", zap.String("title", preview))

	result, err := h.service.GenerateQuestions(c.UserContext(), req)
	if err != nil {
		return h.fail(c, "generate_questions", "Failed to generate questions", preview, err)
	}

	setSessionHeader(c, result.SessionID)
	return c.JSON(result.Response)
}

func (h *InterviewHandler) fail(c *fiber.Ctx, operation, prefix, input string, err error) error {
	status := statusFor(err)
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.String("input", input),
		zap.Int("status", status),
		zap.String("kind", string(services.KindOf(err))),
		zap.Error(err),
	}

	if status < fiber.StatusInternalServerError {
		h.logger.Warn("request rejected", fields...)
	} else {
		h.logger.Error("request failed", fields...)
	}

	return respondError(c, status, fmt.Sprintf("%s: %v", prefix, err))
}

func readFormFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}

func formValue(form *multipart.Form, key string) *string {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
