package mailbox

import (
	"bytes"
	"io"
	"strings"

	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"
)

const (
	fallbackSubject   = "No Subject"
	fallbackFromEmail = "unknown@email.com"
)

// ParseMessage decodes a raw RFC 5322 message into a ParsedMessage. Missing
// headers get stable placeholders so every fetched message yields a usable
// result; an undecodable message returns a ParseError and nothing else.
func ParseMessage(raw []byte) (*ParsedMessage, error) {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer mr.Close()

	parsed := &ParsedMessage{}

	header := mr.Header
	if msgID, err := header.MessageID(); err == nil {
		parsed.MessageID = msgID
	}
	if parsed.MessageID == "" {
		parsed.MessageID = "no-id-" + uuid.NewString()
	}

	if subject, err := header.Subject(); err == nil {
		parsed.Subject = subject
	}
	if parsed.Subject == "" {
		parsed.Subject = fallbackSubject
	}

	if addrs, err := header.AddressList("From"); err == nil && len(addrs) > 0 {
		parsed.From = addrs[0].Address
	}
	if parsed.From == "" {
		parsed.From = fallbackFromEmail
	}

	if date, err := header.Date(); err == nil {
		parsed.Date = date
	}

	parsed.Headers = make(map[string]string)
	for fields := header.Fields(); fields.Next(); {
		key := fields.Key()
		if _, ok := parsed.Headers[key]; ok {
			continue
		}
		if text, err := fields.Text(); err == nil {
			parsed.Headers[key] = text
		} else {
			parsed.Headers[key] = fields.Value()
		}
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Header and earlier parts are already decoded; keep them.
			break
		}

		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			contentType, _, _ := h.ContentType()
			body, readErr := io.ReadAll(part.Body)
			if readErr != nil {
				continue
			}

			switch {
			case strings.HasPrefix(contentType, "text/plain"):
				if parsed.TextBody == "" {
					parsed.TextBody = string(body)
				}
			case strings.HasPrefix(contentType, "text/html"):
				if parsed.HTMLBody == "" {
					parsed.HTMLBody = string(body)
				}
			}

		case *mail.AttachmentHeader:
			filename, _ := h.Filename()
			contentType, _, _ := h.ContentType()

			body, readErr := io.ReadAll(part.Body)
			if readErr != nil {
				continue
			}

			parsed.Attachments = append(parsed.Attachments, Attachment{
				Filename: filename,
				Size:     int64(len(body)),
				MIMEType: contentType,
			})
		}
	}

	return parsed, nil
}
