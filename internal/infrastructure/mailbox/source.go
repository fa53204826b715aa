package mailbox

import (
	"context"
)

// Source combines the connector and fetcher into the single operation the
// ingestion service needs: give me everything above the high-water mark.
type Source struct {
	connector *Connector
	fetcher   *Fetcher
}

func NewSource(connector *Connector, fetcher *Fetcher) *Source {
	return &Source{
		connector: connector,
		fetcher:   fetcher,
	}
}

// FetchNew returns the raw messages with UID above the mark in ascending
// order. On an operation error the connection is marked broken and whatever
// was fetched so far is returned alongside the error, so callers can still
// process the partial batch.
func (s *Source) FetchNew(ctx context.Context, above uint32) ([]FetchedMessage, error) {
	client, err := s.connector.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	uids, err := s.fetcher.SearchNew(client, above)
	if err != nil {
		s.connector.MarkBroken(err)
		return nil, err
	}
	if len(uids) == 0 {
		return nil, nil
	}

	messages, err := s.fetcher.FetchBatch(client, uids)
	if err != nil {
		s.connector.MarkBroken(err)
		return messages, err
	}

	return messages, nil
}

// Close logs out of the mailbox.
func (s *Source) Close() {
	s.connector.Logout()
}
