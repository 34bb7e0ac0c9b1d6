package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/config"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Message is a single outgoing HTML email
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers messages. Implementations do not retry.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer returns an SMTP mailer when mail is enabled and a logging
// mailer otherwise
func NewMailer(cfg *config.MailConfig, logger *zap.Logger) (Mailer, error) {
	if !cfg.Enabled {
		logger.Info("mail delivery disabled, confirmations will only be logged")
		return NewLogMailer(logger), nil
	}
	return NewSMTPMailer(cfg, logger)
}

// SMTPMailer sends mail through an SMTP relay
type SMTPMailer struct {
	host    string
	from    string
	options []mail.Option
	logger  *zap.Logger
}

func NewSMTPMailer(cfg *config.MailConfig, logger *zap.Logger) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("mail host is required when mail is enabled")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("mail sender address is required")
	}

	policy, err := tlsPolicy(cfg.TLSPolicy)
	if err != nil {
		return nil, err
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(policy),
		mail.WithTimeout(cfg.TimeoutDuration()),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	return &SMTPMailer{
		host:    cfg.Host,
		from:    cfg.From,
		options: opts,
		logger:  logger,
	}, nil
}

func tlsPolicy(name string) (mail.TLSPolicy, error) {
	switch name {
	case "", "mandatory":
		return mail.TLSMandatory, nil
	case "opportunistic":
		return mail.TLSOpportunistic, nil
	case "none":
		return mail.NoTLS, nil
	default:
		return mail.TLSMandatory, fmt.Errorf("unknown mail TLS policy %q", name)
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	email := mail.NewMsg()
	if err := email.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := email.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	email.Subject(msg.Subject)
	email.SetDate()
	email.SetBodyString(mail.TypeTextHTML, msg.HTML)

	client, err := mail.NewClient(m.host, m.options...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	start := time.Now()
	if err := client.DialAndSendWithContext(ctx, email); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.logger.Info("mail sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// LogMailer only logs messages. Used when mail is disabled.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.logger.Info("mail delivery skipped",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("html_bytes", len(msg.HTML)),
	)
	return nil
}
