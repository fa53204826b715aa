package usecases

import (
	"context"

	"stayops/internal/domain/ticket"
	"stayops/internal/infrastructure/analysis"
)

type mockTicketRepository struct {
	createFunc            func(ctx context.Context, t *ticket.Ticket) error
	getByIDFunc           func(ctx context.Context, id uint) (*ticket.Ticket, error)
	getByMessageIDFunc    func(ctx context.Context, messageID string) (*ticket.Ticket, error)
	existsByMessageIDFunc func(ctx context.Context, messageID string) (bool, error)
	maxUIDFunc            func(ctx context.Context) (uint32, error)
	listFunc              func(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error)
	updateFunc            func(ctx context.Context, t *ticket.Ticket) error
	deleteFunc            func(ctx context.Context, id uint) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByMessageID(ctx context.Context, messageID string) (*ticket.Ticket, error) {
	if m.getByMessageIDFunc != nil {
		return m.getByMessageIDFunc(ctx, messageID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ExistsByMessageID(ctx context.Context, messageID string) (bool, error) {
	if m.existsByMessageIDFunc != nil {
		return m.existsByMessageIDFunc(ctx, messageID)
	}
	return false, nil
}

func (m *mockTicketRepository) MaxUID(ctx context.Context) (uint32, error) {
	if m.maxUIDFunc != nil {
		return m.maxUIDFunc(ctx)
	}
	return 0, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, subject, body, fromEmail string) (*analysis.Result, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, subject, body, fromEmail string) (*analysis.Result, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, subject, body, fromEmail)
	}
	return &analysis.Result{Category: "general_inquiry", Sentiment: 0.5}, nil
}

type mockReplySender struct {
	sendReplyFunc func(to, subject, body, inReplyTo string) error
	sent          []sentReply
}

type sentReply struct {
	to        string
	subject   string
	body      string
	inReplyTo string
}

func (m *mockReplySender) SendReply(to, subject, body, inReplyTo string) error {
	m.sent = append(m.sent, sentReply{to: to, subject: subject, body: body, inReplyTo: inReplyTo})
	if m.sendReplyFunc != nil {
		return m.sendReplyFunc(to, subject, body, inReplyTo)
	}
	return nil
}

type mockInboxTrigger struct {
	result bool
	calls  int
}

func (m *mockInboxTrigger) TriggerCheck() bool {
	m.calls++
	return m.result
}
