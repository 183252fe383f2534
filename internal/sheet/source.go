// Package sheet reads candidate addresses from a publicly shared spreadsheet.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/blockedby/recruiter-mailer/internal/logger"
)

// DefaultBaseURL is the host serving spreadsheet CSV exports.
const DefaultBaseURL = "https://docs.google.com"

var (
	// ErrUnexpectedStatus is wrapped by HTTPError for any non-200 export response.
	ErrUnexpectedStatus = errors.New("unexpected export status")

	// ErrInvalidEncoding means the export body is not UTF-8 text.
	ErrInvalidEncoding = errors.New("sheet export is not valid UTF-8")
)

// HTTPError summarizes a failed export request.
type HTTPError struct {
	StatusCode int
	Status     string

	// Snippet is a truncated hint from the response body.
	Snippet string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("sheet export: status=%s", strings.TrimSpace(e.Status))
	if e.Snippet != "" {
		msg += " body=" + e.Snippet
	}
	return msg
}

func (e *HTTPError) Unwrap() error {
	return ErrUnexpectedStatus
}

// Config describes which sheet to read.
type Config struct {
	SheetID string
	BaseURL string

	// Timeout bounds the export request; zero leaves the client default.
	Timeout time.Duration
}

// Source fetches the first column of a sheet's first tab.
type Source struct {
	client  *http.Client
	baseURL string
	sheetID string
	log     *logger.Logger
}

// NewSource creates a Source. A nil client gets a fresh http.Client using cfg.Timeout.
func NewSource(cfg Config, client *http.Client, log *logger.Logger) *Source {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Source{
		client:  client,
		baseURL: strings.TrimRight(base, "/"),
		sheetID: cfg.SheetID,
		log:     log,
	}
}

// ExportURL returns the CSV export URL of the sheet's first tab.
func (s *Source) ExportURL() string {
	return fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=0", s.baseURL, url.PathEscape(s.sheetID))
}

// FetchColumn downloads the sheet as CSV and returns the first field of every
// non-empty row, in row order. Values are returned untrimmed.
func (s *Source) FetchColumn(ctx context.Context) ([]string, error) {
	u := s.ExportURL()
	s.log.Info().Str("url", u).Msg("fetching emails from public sheet")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build export request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet export: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read sheet export: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Snippet:    snippet(body),
		}
	}

	if !utf8.Valid(body) {
		return nil, ErrInvalidEncoding
	}

	values, err := firstColumn(body)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("rows", len(values)).Msg("sheet export parsed")
	return values, nil
}

func snippet(body []byte) string {
	const max = 200
	s := string(body)
	truncated := len(s) > max
	if truncated {
		s = s[:max]
	}
	s = strings.Join(strings.Fields(s), " ")
	if truncated && s != "" {
		s += "..."
	}
	return s
}
