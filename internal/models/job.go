package models

import "time"

type Budget struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// JobPosting is a unit of work a client wants done.
// RequiredSkills keeps its original order (display order) and is not
// deduplicated. Status is a label, not a guarded state machine.
type JobPosting struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Budget         Budget    `json:"budget"`
	Location       Location  `json:"location"`
	Category       string    `json:"category"`
	RequiredSkills []string  `json:"required_skills"`
	ClientID       string    `json:"client_id"`
	Status         JobStatus `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	IsRemote       bool      `json:"is_remote"`
}
