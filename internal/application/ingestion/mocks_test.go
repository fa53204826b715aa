package ingestion

import (
	"context"
	"fmt"
	"sync"

	"stayops/internal/domain/ticket"
	"stayops/internal/infrastructure/analysis"
	"stayops/internal/infrastructure/mailbox"
	apperrors "stayops/internal/shared/errors"
)

// fakeTicketRepository is an in-memory ticket.Repository for pipeline and
// cycle tests.
type fakeTicketRepository struct {
	mu      sync.Mutex
	nextID  uint
	tickets []*ticket.Ticket

	createErr error
	existsErr error
	maxUIDErr error
}

func newFakeTicketRepository() *fakeTicketRepository {
	return &fakeTicketRepository{nextID: 1}
}

func (f *fakeTicketRepository) Create(_ context.Context, t *ticket.Ticket) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.tickets {
		if existing.MessageID() != "" && existing.MessageID() == t.MessageID() {
			return apperrors.NewConflictError("ticket with this message ID already exists")
		}
	}
	if err := t.SetID(f.nextID); err != nil {
		return err
	}
	f.nextID++
	f.tickets = append(f.tickets, t)
	return nil
}

func (f *fakeTicketRepository) GetByID(_ context.Context, id uint) (*ticket.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tickets {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, apperrors.NewNotFoundError("ticket not found")
}

func (f *fakeTicketRepository) GetByMessageID(_ context.Context, messageID string) (*ticket.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tickets {
		if t.MessageID() == messageID {
			return t, nil
		}
	}
	return nil, apperrors.NewNotFoundError("ticket not found")
}

func (f *fakeTicketRepository) ExistsByMessageID(_ context.Context, messageID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, t := range f.tickets {
		if t.MessageID() == messageID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTicketRepository) MaxUID(_ context.Context) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.maxUIDErr != nil {
		return 0, f.maxUIDErr
	}
	var max uint32
	for _, t := range f.tickets {
		if t.UID() > max {
			max = t.UID()
		}
	}
	return max, nil
}

func (f *fakeTicketRepository) List(_ context.Context, _ ticket.ListFilter, _, _ int) ([]*ticket.Ticket, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickets, int64(len(f.tickets)), nil
}

func (f *fakeTicketRepository) Update(_ context.Context, _ *ticket.Ticket) error {
	return nil
}

func (f *fakeTicketRepository) Delete(_ context.Context, _ uint) error {
	return nil
}

func (f *fakeTicketRepository) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickets)
}

type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, subject, body, fromEmail string) (*analysis.Result, error)
	calls       int
}

func (m *mockAnalyzer) Analyze(ctx context.Context, subject, body, fromEmail string) (*analysis.Result, error) {
	m.calls++
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, subject, body, fromEmail)
	}
	return &analysis.Result{Category: "general_inquiry", Sentiment: 0.5}, nil
}

type mockSource struct {
	fetchNewFunc func(ctx context.Context, above uint32) ([]mailbox.FetchedMessage, error)
	closed       bool
}

func (m *mockSource) FetchNew(ctx context.Context, above uint32) ([]mailbox.FetchedMessage, error) {
	if m.fetchNewFunc != nil {
		return m.fetchNewFunc(ctx, above)
	}
	return nil, nil
}

func (m *mockSource) Close() {
	m.closed = true
}

type passthroughSanitizer struct{}

func (passthroughSanitizer) Sanitize(html string) string {
	return html
}

// fakeParse treats the raw payload "bad" as undecodable and derives headers
// from the payload otherwise.
func fakeParse(raw []byte) (*mailbox.ParsedMessage, error) {
	content := string(raw)
	if content == "bad" {
		return nil, &mailbox.ParseError{Err: fmt.Errorf("broken MIME")}
	}
	return &mailbox.ParsedMessage{
		MessageID: "<" + content + "@test>",
		Subject:   "Subject " + content,
		From:      "sender@example.com",
		TextBody:  "Body " + content,
	}, nil
}
