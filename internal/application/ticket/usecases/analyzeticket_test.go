package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/ticket"
	"stayops/internal/infrastructure/analysis"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

func TestAnalyzeTicketUseCase_Execute(t *testing.T) {
	var updated *ticket.Ticket
	repo := &mockTicketRepository{
		getByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
			return storedTicket(t, id), nil
		},
		updateFunc: func(_ context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}
	analyzer := &mockAnalyzer{
		analyzeFunc: func(_ context.Context, subject, body, fromEmail string) (*analysis.Result, error) {
			assert.Equal(t, "subject", subject)
			assert.Equal(t, "message", body)
			assert.Equal(t, "guest@example.com", fromEmail)
			return &analysis.Result{Category: "urgent_issue", Sentiment: 0.2}, nil
		},
	}
	uc := NewAnalyzeTicketUseCase(repo, analyzer, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "urgent_issue", resp.Category)
	assert.Equal(t, "high", resp.Priority)
	assert.Equal(t, 0.2, resp.Sentiment)
	assert.True(t, resp.Processed)
	require.NotNil(t, updated)
	assert.Equal(t, "urgent_issue", updated.Category())
}

func TestAnalyzeTicketUseCase_Execute_AnalyzerDown(t *testing.T) {
	repo := &mockTicketRepository{
		getByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
			return storedTicket(t, id), nil
		},
	}
	analyzer := &mockAnalyzer{
		analyzeFunc: func(_ context.Context, _, _, _ string) (*analysis.Result, error) {
			return nil, &analysis.Error{Err: fmt.Errorf("connection refused")}
		},
	}
	uc := NewAnalyzeTicketUseCase(repo, analyzer, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 3)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
