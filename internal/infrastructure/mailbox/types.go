// Package mailbox handles the IMAP side of email ingestion: connection
// lifecycle, searching for new messages, fetching raw bodies, and MIME
// parsing.
package mailbox

import "time"

// FetchedMessage is a raw message pulled from the mailbox.
type FetchedMessage struct {
	UID uint32
	Raw []byte
}

// Attachment describes an attachment without carrying its content.
type Attachment struct {
	Filename string
	Size     int64
	MIMEType string
}

// ParsedMessage is the decoded form of a fetched message. Headers holds the
// decoded header fields; for repeated fields the first occurrence wins.
type ParsedMessage struct {
	MessageID   string
	Subject     string
	From        string
	Date        time.Time
	Headers     map[string]string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}
