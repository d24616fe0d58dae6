package services

import (
	"fmt"
	"unicode/utf8"

	"alfredoptarigan/interview-iq/internal/models"
)

const (
	maxTitleLength       = 200
	minDescriptionLength = 10
	maxDescriptionLength = 5000
)

var experienceLevels = map[string]bool{
	models.ExperienceEntry:  true,
	models.ExperienceMid:    true,
	models.ExperienceSenior: true,
}

// ValidateJobDescription checks presence, length and experience level. Values pass through untouched.
func ValidateJobDescription(req models.JobDescriptionRequest) (models.JobDescription, error) {
	title, err := required("title", req.Title)
	if err != nil {
		return models.JobDescription{}, err
	}
	description, err := required("description", req.Description)
	if err != nil {
		return models.JobDescription{}, err
	}
	level, err := required("experience_level", req.ExperienceLevel)
	if err != nil {
		return models.JobDescription{}, err
	}

	if err := lengthBetween("title", title, 1, maxTitleLength); err != nil {
		return models.JobDescription{}, err
	}
	if err := lengthBetween("description", description, minDescriptionLength, maxDescriptionLength); err != nil {
		return models.JobDescription{}, err
	}
	if !experienceLevels[level] {
		return models.JobDescription{}, &ValidationError{
			Field:  "experience_level",
			Reason: fmt.Sprintf("must be one of entry, mid, senior; got %q", level),
		}
	}

	return models.JobDescription{
		Title:           title,
		Description:     description,
		ExperienceLevel: level,
	}, nil
}

// ValidateAnswerRequest only checks presence; content and length are unconstrained.
func ValidateAnswerRequest(req models.AnswerEvaluationRequest) (models.AnswerRequest, error) {
	question, err := required("question", req.Question)
	if err != nil {
		return models.AnswerRequest{}, err
	}
	answer, err := required("answer", req.Answer)
	if err != nil {
		return models.AnswerRequest{}, err
	}
	jobContext, err := required("job_context", req.JobContext)
	if err != nil {
		return models.AnswerRequest{}, err
	}

	return models.AnswerRequest{
		Question:   question,
		Answer:     answer,
		JobContext: jobContext,
	}, nil
}

func required(field string, value *string) (string, error) {
	if value == nil {
		return "", &ValidationError{Field: field, Reason: "field required"}
	}
	return *value, nil
}

func lengthBetween(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at least %d characters, got %d", min, n)}
	}
	if n > max {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters, got %d", max, n)}
	}
	return nil
}
