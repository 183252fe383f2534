package dispatcher

import (
	"time"

	"github.com/google/uuid"

	"github.com/blockedby/recruiter-mailer/internal/logger"
	"github.com/blockedby/recruiter-mailer/internal/models"
)

// DeliveryStatus is the per-recipient state reported in logs.
type DeliveryStatus string

const (
	StatusPending DeliveryStatus = "PENDING"
	StatusSending DeliveryStatus = "SENDING"
	StatusSent    DeliveryStatus = "SENT"
	StatusFailed  DeliveryStatus = "FAILED"
)

// Tracker collects the outcome of every recipient of one batch, in send order.
// It is not safe for concurrent use; batches are strictly sequential.
type Tracker struct {
	runID   uuid.UUID
	total   int
	results []models.DispatchResult
	sent    int
	failed  int
	log     *logger.Logger
}

// NewTracker creates a tracker for a batch of total recipients.
func NewTracker(runID uuid.UUID, total int, log *logger.Logger) *Tracker {
	return &Tracker{
		runID:   runID,
		total:   total,
		results: make([]models.DispatchResult, 0, total),
		log:     log,
	}
}

// TrackStart marks a recipient as being sent (PENDING → SENDING).
// position is 1-based.
func (t *Tracker) TrackStart(position int, addr models.CandidateAddress) {
	t.log.Info().
		Str("run_id", t.runID.String()).
		Int("position", position).
		Int("total", t.total).
		Str("recipient", addr.String()).
		Str("from", string(StatusPending)).
		Str("to", string(StatusSending)).
		Msgf("sending email %d/%d", position, t.total)
}

// TrackSuccess records a delivered message (SENDING → SENT).
func (t *Tracker) TrackSuccess(addr models.CandidateAddress, took time.Duration) {
	t.sent++
	t.results = append(t.results, models.DispatchResult{
		Address: addr,
		Outcome: models.OutcomeSent,
	})

	t.log.Info().
		Str("run_id", t.runID.String()).
		Str("recipient", addr.String()).
		Str("from", string(StatusSending)).
		Str("to", string(StatusSent)).
		Dur("duration", took).
		Msg("email sent successfully")
}

// TrackFailure records a failed send (SENDING → FAILED).
func (t *Tracker) TrackFailure(addr models.CandidateAddress, took time.Duration, err error) {
	t.failed++
	t.results = append(t.results, models.DispatchResult{
		Address: addr,
		Outcome: models.OutcomeFailed,
		Error:   err.Error(),
	})

	t.log.Error().
		Err(err).
		Str("run_id", t.runID.String()).
		Str("recipient", addr.String()).
		Str("from", string(StatusSending)).
		Str("to", string(StatusFailed)).
		Dur("duration", took).
		Msg("email send failed")
}

// Summary freezes the collected results into a RunSummary.
func (t *Tracker) Summary(completedAt time.Time) *models.RunSummary {
	results := make([]models.DispatchResult, len(t.results))
	copy(results, t.results)

	return &models.RunSummary{
		RunID:       t.runID,
		Total:       len(results),
		Sent:        t.sent,
		Failed:      t.failed,
		Results:     results,
		CompletedAt: completedAt,
	}
}
