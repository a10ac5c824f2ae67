// Package contact collects a message and delegates delivery to the
// configured hosted form service. The component never validates or
// rewrites field values: what the user typed is what gets submitted.
package contact

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/foliodev/folio/internal/errors"
	"github.com/foliodev/folio/internal/logger"
)

// Message is one composed contact message.
type Message struct {
	Name  string
	Email string
	Body  string
}

// NewForm builds the interactive form bound to msg. No Validate hooks:
// submission handling belongs entirely to the hosted service.
func NewForm(msg *Message) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Your name").
				Value(&msg.Name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&msg.Email),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Message").
				Placeholder("What's on your mind?").
				Value(&msg.Body),
		),
	)
}

// Submitter delivers messages to a form endpoint.
type Submitter struct {
	client   *http.Client
	endpoint string
	log      logger.Logger
}

// NewSubmitter creates a submitter for the given endpoint.
func NewSubmitter(endpoint string, timeout time.Duration) *Submitter {
	return &Submitter{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		log:      logger.NewEnvLogger("[contact]"),
	}
}

// SetLogger replaces the submitter's logger. Useful for tests.
func (s *Submitter) SetLogger(log logger.Logger) {
	s.log = log
}

// HasEndpoint reports whether an endpoint is configured.
func (s *Submitter) HasEndpoint() bool {
	return s.endpoint != ""
}

// Submit POSTs the message fields to the endpoint as a standard form
// body, exactly as a native form submission would carry them.
func (s *Submitter) Submit(ctx context.Context, msg Message) error {
	if s.endpoint == "" {
		return errors.New(errors.ErrContact,
			"No contact endpoint configured",
			"Set contact.endpoint in .folio.yaml to a hosted form URL")
	}

	form := url.Values{}
	form.Set("name", msg.Name)
	form.Set("email", msg.Email)
	form.Set("message", msg.Body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrContact,
			"Invalid contact endpoint: "+s.endpoint,
			"Check the contact.endpoint setting")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrContact,
			"Could not reach the form service",
			"Check your network connection and try again")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New(errors.ErrContact,
			fmt.Sprintf("Form service returned HTTP %d", resp.StatusCode),
			"Check the contact.endpoint setting")
	}

	s.log.Info("message delivered to %s", s.endpoint)
	return nil
}

// Render formats the message for print-only delivery when no endpoint
// is configured.
func (m Message) Render() string {
	var b strings.Builder
	b.WriteString("From:  " + m.Name + "\n")
	b.WriteString("Email: " + m.Email + "\n\n")
	b.WriteString(m.Body + "\n")
	return b.String()
}
