package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "stayops/internal/domain/ticket/valueobjects"
)

func TestNewTicketFromEmail(t *testing.T) {
	tk := NewTicketFromEmail("<abc@mail>", 42, "Late checkout request", "Can we check out at 2pm?", "<p>Can we check out at 2pm?</p>", "guest@example.com")

	assert.Equal(t, "<abc@mail>", tk.MessageID())
	assert.Equal(t, uint32(42), tk.UID())
	assert.Equal(t, "Late checkout request", tk.Subject())
	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Equal(t, DefaultCategory, tk.Category())
	assert.Equal(t, vo.PriorityNormal, tk.Priority())
	assert.Equal(t, DefaultSentiment, tk.Sentiment())
	assert.False(t, tk.Processed())
}

func TestNewTicketFromEmail_Defaults(t *testing.T) {
	tk := NewTicketFromEmail("", 7, "", "body", "", "")

	assert.True(t, strings.HasPrefix(tk.MessageID(), "no-id-"))
	assert.Equal(t, "No Subject", tk.Subject())
	assert.Equal(t, "unknown@email.com", tk.FromEmail())
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		message string
		wantErr bool
	}{
		{name: "valid", subject: "Billing question", message: "Invoice 1234 looks wrong"},
		{name: "missing subject", subject: "", message: "body", wantErr: true},
		{name: "missing message", subject: "subject", message: "", wantErr: true},
		{name: "subject too long", subject: strings.Repeat("a", 501), message: "body", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.subject, tt.message, "ops@example.com")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusOpen, tk.Status())
		})
	}
}

func TestTicket_ApplyAnalysis(t *testing.T) {
	tk := NewTicketFromEmail("<m1>", 1, "s", "m", "", "a@b.c")
	name := "Jane Doe"
	info := &BookingInfo{GuestName: &name}

	tk.ApplyAnalysis("booking_inquiry", 0.82, info)

	assert.Equal(t, "booking_inquiry", tk.Category())
	assert.Equal(t, vo.PriorityMedium, tk.Priority())
	assert.Equal(t, 0.82, tk.Sentiment())
	assert.Equal(t, info, tk.BookingInfo())
	assert.True(t, tk.Processed())
}

func TestTicket_ApplyAnalysis_EmptyCategory(t *testing.T) {
	tk := NewTicketFromEmail("<m2>", 2, "s", "m", "", "a@b.c")

	tk.ApplyAnalysis("", 0.9, nil)

	assert.Equal(t, DefaultCategory, tk.Category())
	assert.Equal(t, vo.PriorityNormal, tk.Priority())
}

func TestTicket_ApplyDefaultAnalysis(t *testing.T) {
	tk := NewTicketFromEmail("<m3>", 3, "s", "m", "", "a@b.c")

	tk.ApplyDefaultAnalysis()

	assert.Equal(t, DefaultCategory, tk.Category())
	assert.Equal(t, vo.PriorityNormal, tk.Priority())
	assert.Equal(t, DefaultSentiment, tk.Sentiment())
	assert.Nil(t, tk.BookingInfo())
	assert.False(t, tk.Processed())
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk := NewTicketFromEmail("<m4>", 4, "s", "m", "", "a@b.c")

	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
	assert.Equal(t, vo.StatusInProgress, tk.Status())

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	assert.Equal(t, vo.StatusResolved, tk.Status())

	err := tk.ChangeStatus(vo.StatusInProgress)
	assert.Error(t, err)
	assert.Equal(t, vo.StatusResolved, tk.Status())
}

func TestTicket_ChangeStatus_SameStatusIsNoop(t *testing.T) {
	tk := NewTicketFromEmail("<m5>", 5, "s", "m", "", "a@b.c")
	before := tk.UpdatedAt()

	time.Sleep(time.Millisecond)
	require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
	assert.Equal(t, before, tk.UpdatedAt())
}

func TestReconstructTicket(t *testing.T) {
	now := time.Now()
	tk, err := ReconstructTicket(
		10, "<m>", 99, "subj", "msg", "<p>msg</p>", "a@b.c",
		vo.StatusInProgress, "booking_inquiry", vo.PriorityMedium, 0.7,
		nil, true, nil, nil, now, now,
	)
	require.NoError(t, err)
	assert.Equal(t, uint(10), tk.ID())
	assert.Equal(t, uint32(99), tk.UID())
	assert.True(t, tk.Processed())

	_, err = ReconstructTicket(
		0, "<m>", 99, "subj", "msg", "", "a@b.c",
		vo.StatusOpen, "c", vo.PriorityNormal, 0.5,
		nil, false, nil, nil, now, now,
	)
	assert.Error(t, err)
}

func TestTicket_SetID(t *testing.T) {
	tk := NewTicketFromEmail("<m6>", 6, "s", "m", "", "a@b.c")

	require.NoError(t, tk.SetID(3))
	assert.Error(t, tk.SetID(4))
	assert.Equal(t, uint(3), tk.ID())
}
