// Package email sends outbound mail, currently ticket replies over SMTP.
package email

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"stayops/internal/shared/config"
	"stayops/internal/shared/logger"
)

// Sender delivers outbound mail for the support desk.
type Sender interface {
	SendReply(to, subject, body, inReplyTo string) error
}

type smtpSender struct {
	dialer      *gomail.Dialer
	fromAddress string
	fromName    string
	logger      logger.Interface
}

func NewSMTPSender(cfg *config.EmailConfig, log logger.Interface) Sender {
	return &smtpSender{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		logger:      log.Named("email.smtp"),
	}
}

// SendReply sends a plain-text reply in the thread identified by inReplyTo.
// The subject gets a "Re: " prefix unless it already has one.
func (s *smtpSender) SendReply(to, subject, body, inReplyTo string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", replySubject(subject))
	if inReplyTo != "" {
		m.SetHeader("In-Reply-To", ensureAngleBrackets(inReplyTo))
		m.SetHeader("References", ensureAngleBrackets(inReplyTo))
	}
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reply to %s: %w", to, err)
	}

	s.logger.Infow("reply sent", "to", to, "subject", replySubject(subject))
	return nil
}

func replySubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		return subject
	}
	return "Re: " + subject
}

func ensureAngleBrackets(messageID string) string {
	if strings.HasPrefix(messageID, "<") {
		return messageID
	}
	return "<" + messageID + ">"
}
