package models

const (
	ExperienceEntry  = "entry"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
)

// JobDescriptionRequest is the inbound generate-questions payload before validation.
// Nil fields were absent (or null) in the request body.
type JobDescriptionRequest struct {
	Title           *string `json:"title" form:"title"`
	Description     *string `json:"description" form:"description"`
	ExperienceLevel *string `json:"experience_level" form:"experience_level"`
}

type JobDescription struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ExperienceLevel string `json:"experience_level"`
}

type InterviewQuestion struct {
	Question   string `json:"question"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

type QuestionsResponse struct {
	Questions []InterviewQuestion `json:"questions"`
	JobTitle  string              `json:"job_title"`
}

// AnswerEvaluationRequest is the inbound evaluate-answer payload before validation.
type AnswerEvaluationRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	JobContext *string `json:"job_context"`
}

type AnswerRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	JobContext string `json:"job_context"`
}

type FeedbackResponse struct {
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	SampleAnswer string   `json:"sample_answer"`
}
