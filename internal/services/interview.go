package services

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/interview-iq/internal/logger"
	"alfredoptarigan/interview-iq/internal/models"
	"alfredoptarigan/interview-iq/internal/repositories"
)

const logPreviewLength = 200

type InterviewService interface {
	GenerateQuestions(ctx context.Context, req models.JobDescriptionRequest) (*QuestionsResult, error)
	EvaluateAnswer(ctx context.Context, req models.AnswerEvaluationRequest) (*FeedbackResult, error)
}

type QuestionsResult struct {
	Response  *models.QuestionsResponse
	SessionID *uuid.UUID
}

type FeedbackResult struct {
	Response  *models.FeedbackResponse
	SessionID *uuid.UUID
}

type interviewService struct {
	client        CompletionClient
	promptBuilder *PromptBuilder
	sessions      repositories.SessionRepository
	logger        *zap.Logger
}

// NewInterviewService wires the pipeline. sessions may be nil, which disables the audit trail.
func NewInterviewService(client CompletionClient, sessions repositories.SessionRepository, log *zap.Logger) InterviewService {
	if log == nil {
		log = zap.NewNop()
	}
	return &interviewService{
		client:        client,
		promptBuilder: NewPromptBuilder(),
		sessions:      sessions,
		logger:        log,
	}
}

// GenerateQuestions implements InterviewService.
func (s *interviewService) GenerateQuestions(ctx context.Context, req models.JobDescriptionRequest) (*QuestionsResult, error) {
	job, err := ValidateJobDescription(req)
	if err != nil {
		return nil, err
	}

	raw, err := s.complete(ctx, "generate_questions", QuestionsSystemMessage, s.promptBuilder.BuildQuestionsPrompt(job))
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		return nil, err
	}

	response := &models.QuestionsResponse{
		Questions: questions,
		JobTitle:  job.Title,
	}

	return &QuestionsResult{
		Response:  response,
		SessionID: s.record(models.OperationGenerateQuestions, job.Title, job, response),
	}, nil
}

// EvaluateAnswer implements InterviewService.
func (s *interviewService) EvaluateAnswer(ctx context.Context, req models.AnswerEvaluationRequest) (*FeedbackResult, error) {
	answer, err := ValidateAnswerRequest(req)
	if err != nil {
		return nil, err
	}

	raw, err := s.complete(ctx, "evaluate_answer", FeedbackSystemMessage, s.promptBuilder.BuildFeedbackPrompt(answer))
	if err != nil {
		return nil, err
	}

	feedback, err := ParseFeedback(raw)
	if err != nil {
		return nil, err
	}

	return &FeedbackResult{
		Response:  feedback,
		SessionID: s.record(models.OperationEvaluateAnswer, "", answer, feedback),
	}, nil
}

func (s *interviewService) complete(ctx context.Context, operation, systemMessage, prompt string) (string, error) {
	s.logger.Debug("completion request",
		zap.String("operation", operation),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, logPreviewLength)),
	)

	raw, err := s.client.Complete(ctx, systemMessage, prompt)
	if err != nil {
		return "", err
	}

	s.logger.Debug("completion response",
		zap.String("operation", operation),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, logPreviewLength)),
	)

	return raw, nil
}

// record stores the finished run. Failures are logged and never reach the caller.
func (s *interviewService) record(op models.SessionOperation, jobTitle string, request, response any) *uuid.UUID {
	if s.sessions == nil {
		return nil
	}

	requestJSON, err := json.Marshal(request)
	if err != nil {
		s.logger.Warn("failed to encode session request", zap.String("operation", string(op)), zap.Error(err))
		return nil
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		s.logger.Warn("failed to encode session response", zap.String("operation", string(op)), zap.Error(err))
		return nil
	}

	session := &models.Session{
		ID:        uuid.New(),
		Operation: op,
		JobTitle:  jobTitle,
		Request:   string(requestJSON),
		Response:  string(responseJSON),
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Create(session); err != nil {
		s.logger.Warn("failed to record session", zap.String("operation", string(op)), zap.Error(err))
		return nil
	}

	return &session.ID
}
