package ingestion

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/ticket"
	vo "stayops/internal/domain/ticket/valueobjects"
	"stayops/internal/infrastructure/analysis"
	"stayops/internal/shared/logger"
)

func newTestPipeline(repo *fakeTicketRepository, analyzer *mockAnalyzer) *Pipeline {
	return NewPipeline(repo, analyzer, passthroughSanitizer{}, fakeParse, logger.NewLogger())
}

func TestPipeline_ProcessMessage_CreatesTicket(t *testing.T) {
	repo := newFakeTicketRepository()
	analyzer := &mockAnalyzer{
		analyzeFunc: func(_ context.Context, subject, body, fromEmail string) (*analysis.Result, error) {
			assert.Equal(t, "Subject m1", subject)
			assert.Equal(t, "Body m1", body)
			assert.Equal(t, "sender@example.com", fromEmail)
			name := "Jane Doe"
			return &analysis.Result{
				Category:    "booking_inquiry",
				Sentiment:   0.8,
				BookingInfo: &ticket.BookingInfo{GuestName: &name},
			}, nil
		},
	}
	pipeline := newTestPipeline(repo, analyzer)

	err := pipeline.ProcessMessage(context.Background(), 101, []byte("m1"))
	require.NoError(t, err)
	require.Equal(t, 1, repo.count())

	stored, err := repo.GetByMessageID(context.Background(), "<m1@test>")
	require.NoError(t, err)
	assert.Equal(t, uint32(101), stored.UID())
	assert.Equal(t, "booking_inquiry", stored.Category())
	assert.Equal(t, vo.PriorityMedium, stored.Priority())
	assert.Equal(t, 0.8, stored.Sentiment())
	assert.True(t, stored.Processed())
	require.NotNil(t, stored.BookingInfo())
	assert.Equal(t, "Jane Doe", *stored.BookingInfo().GuestName)
}

func TestPipeline_ProcessMessage_DedupIsIdempotent(t *testing.T) {
	repo := newFakeTicketRepository()
	analyzer := &mockAnalyzer{}
	pipeline := newTestPipeline(repo, analyzer)

	require.NoError(t, pipeline.ProcessMessage(context.Background(), 101, []byte("m1")))
	require.NoError(t, pipeline.ProcessMessage(context.Background(), 101, []byte("m1")))

	assert.Equal(t, 1, repo.count())
	assert.Equal(t, 1, analyzer.calls, "duplicates must not be re-analyzed")
}

func TestPipeline_ProcessMessage_AnalysisFailureStoresDefaults(t *testing.T) {
	repo := newFakeTicketRepository()
	analyzer := &mockAnalyzer{
		analyzeFunc: func(_ context.Context, _, _, _ string) (*analysis.Result, error) {
			return nil, &analysis.Error{Err: fmt.Errorf("service down")}
		},
	}
	pipeline := newTestPipeline(repo, analyzer)

	err := pipeline.ProcessMessage(context.Background(), 102, []byte("m2"))
	require.NoError(t, err, "analysis failure must not fail the message")

	stored, err := repo.GetByMessageID(context.Background(), "<m2@test>")
	require.NoError(t, err)
	assert.Equal(t, ticket.DefaultCategory, stored.Category())
	assert.Equal(t, vo.PriorityNormal, stored.Priority())
	assert.Equal(t, ticket.DefaultSentiment, stored.Sentiment())
	assert.Nil(t, stored.BookingInfo())
	assert.False(t, stored.Processed())
}

func TestPipeline_ProcessMessage_ParseFailureIsAnError(t *testing.T) {
	repo := newFakeTicketRepository()
	pipeline := newTestPipeline(repo, &mockAnalyzer{})

	err := pipeline.ProcessMessage(context.Background(), 103, []byte("bad"))
	require.Error(t, err)
	assert.Equal(t, 0, repo.count())
}

func TestPipeline_ProcessMessage_InsertRaceTreatedAsDuplicate(t *testing.T) {
	repo := newFakeTicketRepository()
	pipeline := newTestPipeline(repo, &mockAnalyzer{})

	// Simulate losing the insert race: the dedup check misses but Create
	// reports a conflict.
	require.NoError(t, pipeline.ProcessMessage(context.Background(), 104, []byte("m4")))

	other := newTestPipeline(repo, &mockAnalyzer{})
	err := other.ProcessMessage(context.Background(), 104, []byte("m4"))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.count())
}
