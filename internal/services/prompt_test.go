package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/interview-iq/internal/models"
)

func TestBuildQuestionsPromptEmbedsFieldsVerbatim(t *testing.T) {
	pb := NewPromptBuilder()
	job := models.JobDescription{
		Title:           `Backend "Go" Engineer {100%}`,
		Description:     "Build APIs\nwith \"quotes\" and {braces}",
		ExperienceLevel: "senior",
	}

	prompt := pb.BuildQuestionsPrompt(job)

	assert.Contains(t, prompt, job.Title)
	assert.Contains(t, prompt, job.Description)
	assert.Contains(t, prompt, "Experience Level: senior")
	assert.Contains(t, prompt, `"category": "technical|behavioral|situational"`)
	assert.Contains(t, prompt, `"difficulty": "easy|medium|hard"`)
	assert.Equal(t, prompt, pb.BuildQuestionsPrompt(job), "prompt must be deterministic")
}

func TestBuildFeedbackPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	req := models.AnswerRequest{
		Question:   "Explain REST",
		Answer:     "It is an architectural style",
		JobContext: "Backend Engineer - mid level",
	}

	prompt := pb.BuildFeedbackPrompt(req)

	assert.Contains(t, prompt, "Question: Explain REST")
	assert.Contains(t, prompt, "Job Context: Backend Engineer - mid level")
	assert.Contains(t, prompt, "Candidate's Answer: It is an architectural style")
	assert.Contains(t, prompt, `"sample_answer"`)
}
