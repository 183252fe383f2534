package dispatcher

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"github.com/domodwyer/mailyak/v3"
)

// SMTPConfig describes the relay and the account used to log in to it.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Addr returns the relay address in host:port form.
func (c SMTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Message is a single outbound HTML email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// EmailSender submits messages to an authenticated SMTP relay.
// Each Send dials its own connection, upgrades it with STARTTLS when the
// relay offers it, logs in and quits before returning.
type EmailSender struct {
	addr string
	auth smtp.Auth
}

// NewEmailSender creates an EmailSender using PLAIN auth against cfg.Host.
func NewEmailSender(cfg SMTPConfig) *EmailSender {
	return &EmailSender{
		addr: cfg.Addr(),
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}
}

// Send delivers msg to exactly one recipient.
func (s *EmailSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.compose(msg).Send(); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

func (s *EmailSender) compose(msg Message) *mailyak.MailYak {
	m := mailyak.New(s.addr, s.auth)
	m.From(msg.From)
	m.To(msg.To)
	m.Subject(msg.Subject)
	m.HTML().Set(msg.HTML)
	return m
}
