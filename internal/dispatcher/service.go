package dispatcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blockedby/recruiter-mailer/internal/logger"
	"github.com/blockedby/recruiter-mailer/internal/models"
	"github.com/blockedby/recruiter-mailer/internal/sheet"
)

// NoRecipientsMessage is reported when the sheet yields no usable address,
// whether it could not be fetched or simply held none.
const NoRecipientsMessage = "No valid emails found in sheet"

// AddressSource returns the raw first-column values of the recipient sheet.
type AddressSource interface {
	FetchColumn(ctx context.Context) ([]string, error)
}

// Mailer sends one message over one relay connection.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// RenderFunc produces the email body.
type RenderFunc func() string

// Options holds the sender identity and subject lines.
type Options struct {
	Sender      string
	Subject     string
	TestSubject string
}

// Service is the main orchestrator for mailing the assignment to candidates.
type Service struct {
	source AddressSource
	mailer Mailer
	pacer  Pacer
	render RenderFunc
	opts   Options
	log    *logger.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// NewService creates a new Service.
func NewService(
	source AddressSource,
	mailer Mailer,
	pacer Pacer,
	render RenderFunc,
	opts Options,
	log *logger.Logger,
) *Service {
	return &Service{
		source: source,
		mailer: mailer,
		pacer:  pacer,
		render: render,
		opts:   opts,
		log:    log,
		now:    time.Now,
		newID:  uuid.New,
	}
}

// Recipients fetches the sheet and returns the filtered addresses.
func (s *Service) Recipients(ctx context.Context) ([]models.CandidateAddress, error) {
	raw, err := s.source.FetchColumn(ctx)
	if err != nil {
		return nil, fmt.Errorf("read recipient sheet: %w", err)
	}

	addrs := sheet.FilterAddresses(raw)
	s.log.Info().
		Int("count", len(addrs)).
		Strs("emails", addressStrings(addrs)).
		Msgf("found %d valid email addresses", len(addrs))

	return addrs, nil
}

// SendAll mails the assignment to every address in the sheet.
// A sheet that cannot be read or holds no valid address produces an
// unsuccessful report. The returned error is non-nil only if ctx is
// cancelled mid-batch, in which case no summary exists.
func (s *Service) SendAll(ctx context.Context) (models.RunReport, error) {
	s.log.Info().Msg("starting assignment email sending process")

	addrs, err := s.Recipients(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("error reading emails from sheet")
	}
	if len(addrs) == 0 {
		return models.RunReport{Success: false, Error: NoRecipientsMessage}, nil
	}

	summary, err := s.Dispatch(ctx, s.opts.Subject, s.render(), addrs)
	if err != nil {
		return models.RunReport{}, err
	}

	return models.RunReport{Success: true, Summary: summary}, nil
}

// Dispatch sends body to each recipient in order, one relay connection per
// recipient, pausing between sends but not after the last one. Send
// failures are recorded and never stop the batch.
func (s *Service) Dispatch(
	ctx context.Context,
	subject, body string,
	recipients []models.CandidateAddress,
) (*models.RunSummary, error) {
	tracker := NewTracker(s.newID(), len(recipients), s.log)

	for i, addr := range recipients {
		tracker.TrackStart(i+1, addr)

		start := s.now()
		err := s.mailer.Send(ctx, s.message(addr.String(), subject, body))
		took := s.now().Sub(start)

		if err != nil {
			tracker.TrackFailure(addr, took, err)
		} else {
			tracker.TrackSuccess(addr, took)
		}

		if i < len(recipients)-1 {
			if err := s.pacer.Pause(ctx); err != nil {
				return nil, fmt.Errorf("batch interrupted after %d/%d: %w", i+1, len(recipients), err)
			}
		}
	}

	summary := tracker.Summary(s.now())
	s.log.Info().
		Str("run_id", summary.RunID.String()).
		Int("success", summary.Sent).
		Int("failed", summary.Failed).
		Int("total", summary.Total).
		Msg("email sending completed")

	return summary, nil
}

// SendTest mails the assignment once to address using the test subject.
// The recipient sheet is not read.
func (s *Service) SendTest(ctx context.Context, address string) models.TestResult {
	address = strings.TrimSpace(address)
	s.log.Info().Str("recipient", address).Msg("sending test email")

	err := s.mailer.Send(ctx, s.message(address, s.opts.TestSubject, s.render()))
	if err != nil {
		s.log.Error().Err(err).Str("recipient", address).Msg("test email failed")
		return models.TestResult{
			Success: false,
			Message: fmt.Sprintf("Failed to send test email to %s", address),
		}
	}

	s.log.Info().Str("recipient", address).Msg("test email sent successfully")
	return models.TestResult{
		Success: true,
		Message: fmt.Sprintf("Test email sent to %s", address),
	}
}

func (s *Service) message(to, subject, body string) Message {
	return Message{
		From:    s.opts.Sender,
		To:      to,
		Subject: subject,
		HTML:    body,
	}
}

func addressStrings(addrs []models.CandidateAddress) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}
