package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-iq/internal/models"
)

func TestExtractCandidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "json fence", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", raw: "```{\"a\":1}```", want: `{"a":1}`},
		{name: "no fence", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "surrounding prose", raw: "Here you go:\n```json\n{\"a\":1}\n```\nGood luck!", want: `{"a":1}`},
		{name: "json fence wins over earlier bare fence", raw: "```x```\n```json\n{\"b\":2}\n```", want: `{"b":2}`},
		{name: "only first pair honored", raw: "```{\"a\":1}``` and ```{\"b\":2}```", want: `{"a":1}`},
		{name: "unterminated json fence", raw: "```json\n{\"a\":1}", want: `{"a":1}`},
		{name: "single stray fence", raw: "{\"a\":1}```", want: ""},
		{name: "lone fence", raw: "```", want: ""},
		{name: "whitespace trimmed", raw: "  \n{\"a\":1}\t\n", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCandidate(tt.raw))
		})
	}
}

func TestExtractCandidateIdempotentOnCleanText(t *testing.T) {
	inputs := []string{`{"a":1}`, "  {\"questions\": []}  ", "not json at all"}
	for _, in := range inputs {
		once := ExtractCandidate(in)
		assert.Equal(t, once, ExtractCandidate(once))
	}
}

func parseKind(t *testing.T, err error) ErrorKind {
	t.Helper()
	var pErr *ParseError
	require.True(t, errors.As(err, &pErr), "expected ParseError, got %v", err)
	return pErr.Kind()
}

func TestParseQuestions(t *testing.T) {
	raw := "```json\n{\"questions\":[{\"question\":\"Explain REST\",\"category\":\"technical\",\"difficulty\":\"easy\",\"extra\":true}]}\n```"

	questions, err := ParseQuestions(raw)
	require.NoError(t, err)
	assert.Equal(t, []models.InterviewQuestion{
		{Question: "Explain REST", Category: "technical", Difficulty: "easy"},
	}, questions)
}

func TestParseQuestionsKeepsUnknownEnumValues(t *testing.T) {
	questions, err := ParseQuestions(`{"questions":[{"question":"Q","category":"cultural","difficulty":"extreme"}]}`)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "cultural", questions[0].Category)
	assert.Equal(t, "extreme", questions[0].Difficulty)
}

func TestParseQuestionsEmptyList(t *testing.T) {
	questions, err := ParseQuestions(`{"questions":[]}`)
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}

func TestParseQuestionsErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ErrorKind
	}{
		{name: "not json", raw: "Sorry, I cannot help with that.", kind: KindMalformedJSON},
		{name: "top-level array", raw: `[{"question":"Q"}]`, kind: KindMalformedJSON},
		{name: "null", raw: "null", kind: KindMalformedJSON},
		{name: "empty after stray fence", raw: "{\"questions\":[]}```", kind: KindMalformedJSON},
		{name: "missing category and difficulty", raw: `{"questions": [{"question":"Q"}]}`, kind: KindSchemaMismatch},
		{name: "missing questions", raw: `{"items": []}`, kind: KindSchemaMismatch},
		{name: "questions not a list", raw: `{"questions": "Q"}`, kind: KindSchemaMismatch},
		{name: "question item not an object", raw: `{"questions": ["Q"]}`, kind: KindSchemaMismatch},
		{name: "null item", raw: `{"questions": [null]}`, kind: KindSchemaMismatch},
		{name: "wrong primitive", raw: `{"questions": [{"question":1,"category":"technical","difficulty":"easy"}]}`, kind: KindSchemaMismatch},
		{name: "null field", raw: `{"questions": [{"question":null,"category":"technical","difficulty":"easy"}]}`, kind: KindSchemaMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuestions(tt.raw)
			require.Error(t, err)
			assert.Equal(t, tt.kind, parseKind(t, err))
		})
	}
}

func TestParseQuestionsSchemaMessageNamesField(t *testing.T) {
	_, err := ParseQuestions(`{"questions": [{"question":"Q"}]}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "questions[0].category: field required")
}

func TestParseFeedback(t *testing.T) {
	raw := "```\n{\"score\": 7, \"strengths\": [\"clear\"], \"improvements\": [\"examples\", \"depth\"], \"sample_answer\": \"REST is...\"}\n```"

	feedback, err := ParseFeedback(raw)
	require.NoError(t, err)
	assert.Equal(t, &models.FeedbackResponse{
		Score:        7,
		Strengths:    []string{"clear"},
		Improvements: []string{"examples", "depth"},
		SampleAnswer: "REST is...",
	}, feedback)
}

func TestParseFeedbackScoreIsNotRangeChecked(t *testing.T) {
	tests := []struct {
		name  string
		score string
		want  int
	}{
		{name: "in range", score: "42", want: 42},
		{name: "negative integral float", score: "-3.0", want: -3},
		{name: "exponent form", score: "1e2", want: 100},
		{name: "beyond int32", score: "3000000000", want: 3000000000},
		{name: "beyond float64 precision", score: "9007199254740993", want: 9007199254740993},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback, err := ParseFeedback(`{"score": ` + tt.score + `, "strengths": [], "improvements": [], "sample_answer": ""}`)
			require.NoError(t, err)
			assert.Equal(t, tt.want, feedback.Score)
		})
	}
}

func TestParseFeedbackErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ErrorKind
	}{
		{name: "truncated json", raw: `{"score": 7, "strengths": [`, kind: KindMalformedJSON},
		{name: "fractional score", raw: `{"score": 7.5, "strengths": [], "improvements": [], "sample_answer": ""}`, kind: KindSchemaMismatch},
		{name: "integral beyond int64", raw: `{"score": 1e30, "strengths": [], "improvements": [], "sample_answer": ""}`, kind: KindSchemaMismatch},
		{name: "string score", raw: `{"score": "7", "strengths": [], "improvements": [], "sample_answer": ""}`, kind: KindSchemaMismatch},
		{name: "missing sample answer", raw: `{"score": 7, "strengths": [], "improvements": []}`, kind: KindSchemaMismatch},
		{name: "strengths not strings", raw: `{"score": 7, "strengths": [1], "improvements": [], "sample_answer": ""}`, kind: KindSchemaMismatch},
		{name: "improvements is a string", raw: `{"score": 7, "strengths": [], "improvements": "more", "sample_answer": ""}`, kind: KindSchemaMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFeedback(tt.raw)
			require.Error(t, err)
			assert.Equal(t, tt.kind, parseKind(t, err))
		})
	}
}
