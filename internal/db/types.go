package db

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is a persisted resume analysis.
type Analysis struct {
	ID             uuid.UUID `json:"id"`
	JobDescription string    `json:"job_description"`
	ResumeText     string    `json:"resume_text"`
	Score          int       `json:"score"`
	Result         string    `json:"result"`
	CreatedAt      time.Time `json:"created_at"`
}

// ContactMessage is a persisted contact form submission.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
