package ticket

import (
	"fmt"
	"time"

	vo "stayops/internal/domain/ticket/valueobjects"
)

const (
	// DefaultCategory is applied when analysis yields no category.
	DefaultCategory = "uncategorized"
	// DefaultSentiment is the neutral sentiment score applied when
	// analysis fails or returns nothing.
	DefaultSentiment = 0.5

	defaultSubject   = "No Subject"
	defaultFromEmail = "unknown@email.com"
)

// Ticket is a support request, usually created from an inbound email.
type Ticket struct {
	id          uint
	messageID   string
	uid         uint32
	subject     string
	message     string
	htmlBody    string
	fromEmail   string
	status      vo.TicketStatus
	category    string
	priority    vo.Priority
	sentiment   float64
	bookingInfo *BookingInfo
	processed   bool
	hotelID     *uint
	contactID   *uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicketFromEmail creates an unanalyzed ticket from a fetched mailbox
// message. Missing header values get the same placeholders the mailbox
// pipeline has always used, so every fetched message produces a storable
// ticket even when headers are broken.
func NewTicketFromEmail(messageID string, uid uint32, subject, message, htmlBody, fromEmail string) *Ticket {
	if messageID == "" {
		messageID = fmt.Sprintf("no-id-%d", time.Now().UnixMilli())
	}
	if subject == "" {
		subject = defaultSubject
	}
	if fromEmail == "" {
		fromEmail = defaultFromEmail
	}

	now := time.Now()
	return &Ticket{
		messageID: messageID,
		uid:       uid,
		subject:   subject,
		message:   message,
		htmlBody:  htmlBody,
		fromEmail: fromEmail,
		status:    vo.StatusOpen,
		category:  DefaultCategory,
		priority:  vo.PriorityNormal,
		sentiment: DefaultSentiment,
		createdAt: now,
		updatedAt: now,
	}
}

// NewTicket creates a ticket entered manually through the API.
func NewTicket(subject, message, fromEmail string) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 500 {
		return nil, fmt.Errorf("subject exceeds maximum length of 500 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if fromEmail == "" {
		fromEmail = defaultFromEmail
	}

	now := time.Now()
	return &Ticket{
		subject:   subject,
		message:   message,
		fromEmail: fromEmail,
		status:    vo.StatusOpen,
		category:  DefaultCategory,
		priority:  vo.PriorityNormal,
		sentiment: DefaultSentiment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence without validation
// side effects.
func ReconstructTicket(
	id uint,
	messageID string,
	uid uint32,
	subject string,
	message string,
	htmlBody string,
	fromEmail string,
	status vo.TicketStatus,
	category string,
	priority vo.Priority,
	sentiment float64,
	bookingInfo *BookingInfo,
	processed bool,
	hotelID *uint,
	contactID *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		id:          id,
		messageID:   messageID,
		uid:         uid,
		subject:     subject,
		message:     message,
		htmlBody:    htmlBody,
		fromEmail:   fromEmail,
		status:      status,
		category:    category,
		priority:    priority,
		sentiment:   sentiment,
		bookingInfo: bookingInfo,
		processed:   processed,
		hotelID:     hotelID,
		contactID:   contactID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) MessageID() string {
	return t.messageID
}

func (t *Ticket) UID() uint32 {
	return t.uid
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Message() string {
	return t.message
}

func (t *Ticket) HTMLBody() string {
	return t.htmlBody
}

func (t *Ticket) FromEmail() string {
	return t.fromEmail
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Sentiment() float64 {
	return t.sentiment
}

func (t *Ticket) BookingInfo() *BookingInfo {
	return t.bookingInfo
}

func (t *Ticket) Processed() bool {
	return t.processed
}

func (t *Ticket) HotelID() *uint {
	return t.hotelID
}

func (t *Ticket) ContactID() *uint {
	return t.contactID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ApplyAnalysis records the classification result. The priority is always
// derived from the category, never taken from the caller.
func (t *Ticket) ApplyAnalysis(category string, sentiment float64, info *BookingInfo) {
	if category == "" {
		category = DefaultCategory
	}
	t.category = category
	t.priority = vo.PriorityFromCategory(category)
	t.sentiment = sentiment
	t.bookingInfo = info
	t.processed = true
	t.updatedAt = time.Now()
}

// ApplyDefaultAnalysis is used when the analysis service is unavailable:
// the ticket still gets stored, with neutral classification and
// processed left false so it can be re-analyzed later.
func (t *Ticket) ApplyDefaultAnalysis() {
	t.category = DefaultCategory
	t.priority = vo.PriorityNormal
	t.sentiment = DefaultSentiment
	t.bookingInfo = nil
	t.processed = false
	t.updatedAt = time.Now()
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) AssignHotel(hotelID uint) error {
	if hotelID == 0 {
		return fmt.Errorf("hotel ID cannot be zero")
	}
	t.hotelID = &hotelID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) AssignContact(contactID uint) error {
	if contactID == 0 {
		return fmt.Errorf("contact ID cannot be zero")
	}
	t.contactID = &contactID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Validate() error {
	if len(t.subject) == 0 {
		return fmt.Errorf("subject is required")
	}
	if len(t.fromEmail) == 0 {
		return fmt.Errorf("from email is required")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	return nil
}
