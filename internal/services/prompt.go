package services

import (
	"fmt"

	"alfredoptarigan/interview-iq/internal/models"
)

const (
	QuestionsSystemMessage = "You are an expert interview coach. Generate relevant, realistic interview questions based on job descriptions. Return questions in JSON format."
	FeedbackSystemMessage  = "You are an expert interview coach providing constructive feedback. Analyze answers and provide scores, strengths, improvements, and sample answers. Be encouraging but honest."
)

// PromptBuilder renders the user messages. Field values are embedded verbatim, without escaping.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionsPrompt creates prompt for interview question generation
func (pb *PromptBuilder) BuildQuestionsPrompt(job models.JobDescription) string {
	return fmt.Sprintf(`Generate 5 interview questions for this job:

Title: %s
Experience Level: %s
Description: %s

Return ONLY a JSON object with this structure:
{
    "questions": [
        {
            "question": "question text",
            "category": "technical|behavioral|situational",
            "difficulty": "easy|medium|hard"
        }
    ]
}`,
		job.Title, job.ExperienceLevel, job.Description)
}

// BuildFeedbackPrompt creates prompt for answer evaluation
func (pb *PromptBuilder) BuildFeedbackPrompt(req models.AnswerRequest) string {
	return fmt.Sprintf(`Evaluate this interview answer:

Question: %s
Job Context: %s
Candidate's Answer: %s

Return ONLY a JSON object with this structure:
{
    "score": 7,
    "strengths": ["point 1", "point 2"],
    "improvements": ["suggestion 1", "suggestion 2"],
    "sample_answer": "A strong answer example..."
}`,
		req.Question, req.JobContext, req.Answer)
}
