package models

import (
	"time"

	"github.com/google/uuid"
)

// CandidateAddress is a trimmed sheet entry that contains an "@".
// No further address validation is applied.
type CandidateAddress string

// String returns the address as a plain string.
func (a CandidateAddress) String() string {
	return string(a)
}

// Outcome is the delivery result for a single recipient.
type Outcome string

// Outcome constants define the possible results of one send.
const (
	OutcomeSent   Outcome = "sent"
	OutcomeFailed Outcome = "failed"
)

// DispatchResult records what happened to one recipient of a batch.
type DispatchResult struct {
	Address CandidateAddress `json:"email"`
	Outcome Outcome          `json:"status"`

	// Error holds the relay or connection error for failed sends.
	Error string `json:"error,omitempty"`
}

// RunSummary is the aggregate result of a batch send.
type RunSummary struct {
	RunID       uuid.UUID        `json:"run_id"`
	Total       int              `json:"total_emails"`
	Sent        int              `json:"success_count"`
	Failed      int              `json:"failure_count"`
	Results     []DispatchResult `json:"results"`
	CompletedAt time.Time        `json:"timestamp"`
}

// RunReport is the printed outcome of a batch: either a summary or the
// reason the batch never started.
type RunReport struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Summary *RunSummary `json:"summary,omitempty"`
}

// TestResult is the outcome of a single test send.
type TestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
