package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"alfredoptarigan/interview-iq/internal/models"
)

const (
	jsonFence = "```json"
	fence     = "```"
)

// ExtractCandidate selects the text expected to hold the JSON payload.
//
// A "```json" fence wins over a bare "```" fence. Only the first fence pair is
// honored; an unterminated fence yields everything after the opening marker.
func ExtractCandidate(raw string) string {
	candidate := raw
	if _, after, ok := strings.Cut(raw, jsonFence); ok {
		candidate, _, _ = strings.Cut(after, fence)
	} else if _, after, ok := strings.Cut(raw, fence); ok {
		candidate, _, _ = strings.Cut(after, fence)
	}
	return strings.TrimSpace(candidate)
}

// ParseQuestions maps raw model output into interview questions.
func ParseQuestions(raw string) ([]models.InterviewQuestion, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	items, err := objectListField(obj, "questions")
	if err != nil {
		return nil, err
	}

	questions := make([]models.InterviewQuestion, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("questions[%d].", i)

		question, err := stringField(item, path, "question")
		if err != nil {
			return nil, err
		}
		category, err := stringField(item, path, "category")
		if err != nil {
			return nil, err
		}
		difficulty, err := stringField(item, path, "difficulty")
		if err != nil {
			return nil, err
		}

		questions = append(questions, models.InterviewQuestion{
			Question:   question,
			Category:   category,
			Difficulty: difficulty,
		})
	}

	return questions, nil
}

// ParseFeedback maps raw model output into answer feedback. The score range is not checked.
func ParseFeedback(raw string) (*models.FeedbackResponse, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	score, err := intField(obj, "score")
	if err != nil {
		return nil, err
	}
	strengths, err := stringListField(obj, "strengths")
	if err != nil {
		return nil, err
	}
	improvements, err := stringListField(obj, "improvements")
	if err != nil {
		return nil, err
	}
	sampleAnswer, err := stringField(obj, "", "sample_answer")
	if err != nil {
		return nil, err
	}

	return &models.FeedbackResponse{
		Score:        score,
		Strengths:    strengths,
		Improvements: improvements,
		SampleAnswer: sampleAnswer,
	}, nil
}

func decodeObject(raw string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(ExtractCandidate(raw)), &obj); err != nil {
		return nil, malformedJSON(err)
	}
	if obj == nil {
		return nil, malformedJSON(errors.New("expected a JSON object, got null"))
	}
	return obj, nil
}

func lookup(obj map[string]json.RawMessage, path, key string) (json.RawMessage, error) {
	value, ok := obj[key]
	if !ok || isNull(value) {
		return nil, schemaMismatch("model response schema mismatch: %s%s: field required", path, key)
	}
	return value, nil
}

func stringField(obj map[string]json.RawMessage, path, key string) (string, error) {
	value, err := lookup(obj, path, key)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", schemaMismatch("model response schema mismatch: %s%s: expected string", path, key)
	}
	return s, nil
}

func stringListField(obj map[string]json.RawMessage, key string) ([]string, error) {
	value, err := lookup(obj, "", key)
	if err != nil {
		return nil, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, schemaMismatch("model response schema mismatch: %s: expected array of strings", key)
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		var s string
		if isNull(item) || json.Unmarshal(item, &s) != nil {
			return nil, schemaMismatch("model response schema mismatch: %s[%d]: expected string", key, i)
		}
		out = append(out, s)
	}
	return out, nil
}

func objectListField(obj map[string]json.RawMessage, key string) ([]map[string]json.RawMessage, error) {
	value, err := lookup(obj, "", key)
	if err != nil {
		return nil, err
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, schemaMismatch("model response schema mismatch: %s: expected array of objects", key)
	}
	for i, item := range items {
		if item == nil {
			return nil, schemaMismatch("model response schema mismatch: %s[%d]: expected object", key, i)
		}
	}
	return items, nil
}

// intField accepts integral JSON numbers only, so 7, 7.0 and 1e2 pass while
// 7.5 and "7" do not. The value is not range checked beyond what int holds.
func intField(obj map[string]json.RawMessage, key string) (int, error) {
	value, err := lookup(obj, "", key)
	if err != nil {
		return 0, err
	}

	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return 0, schemaMismatch("model response schema mismatch: %s: expected integer", key)
	}
	number, ok := decoded.(json.Number)
	if !ok {
		return 0, schemaMismatch("model response schema mismatch: %s: expected integer", key)
	}

	n, err := number.Int64()
	if err != nil {
		f, ferr := number.Float64()
		if ferr != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, schemaMismatch("model response schema mismatch: %s: expected integer, got %s", key, number)
		}
		n = int64(f)
	}
	if int64(int(n)) != n {
		return 0, schemaMismatch("model response schema mismatch: %s: integer out of range, got %s", key, number)
	}
	return int(n), nil
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
