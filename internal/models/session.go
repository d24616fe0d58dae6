package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SessionOperation string

const (
	OperationGenerateQuestions SessionOperation = "generate_questions"
	OperationEvaluateAnswer    SessionOperation = "evaluate_answer"
)

// Session is one completed pipeline run kept for auditing.
type Session struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Operation SessionOperation `gorm:"type:text;not null" json:"operation"`
	JobTitle  string           `gorm:"type:text" json:"job_title,omitempty"`
	Request   string           `gorm:"type:jsonb" json:"request"`
	Response  string           `gorm:"type:jsonb" json:"response"`
	CreatedAt time.Time        `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Session) TableName() string {
	return "interview_sessions"
}

type SessionResponse struct {
	ID        string           `json:"id"`
	Operation SessionOperation `json:"operation"`
	JobTitle  string           `json:"job_title,omitempty"`
	Request   json.RawMessage  `json:"request"`
	Response  json.RawMessage  `json:"response"`
	CreatedAt time.Time        `json:"created_at"`
}
