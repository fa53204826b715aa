package mailbox

import (
	"sort"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"stayops/internal/shared/logger"
)

// Fetcher searches for and retrieves messages over an established IMAP
// connection.
type Fetcher struct {
	batchSize int
	logger    logger.Interface
}

func NewFetcher(batchSize int, log logger.Interface) *Fetcher {
	if batchSize <= 0 {
		batchSize = 10
	}
	return &Fetcher{
		batchSize: batchSize,
		logger:    log.Named("mailbox.fetcher"),
	}
}

// SearchNew returns the UIDs of messages above the given high-water mark in
// ascending order. A mark of zero searches the whole mailbox.
func (f *Fetcher) SearchNew(client *imapclient.Client, above uint32) ([]uint32, error) {
	// Search UIDs from above+1 upward; Stop 0 renders as "*".
	criteria := &imap.SearchCriteria{
		UID: []imap.UIDSet{
			{imap.UIDRange{Start: imap.UID(above + 1), Stop: 0}},
		},
	}

	searchData, err := client.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, &SearchError{Err: err}
	}

	raw := searchData.AllUIDs()
	uids := make([]uint32, 0, len(raw))
	for _, uid := range raw {
		// Servers answer "N:*" with the last message even when its UID is
		// below N; drop anything at or under the mark.
		if uint32(uid) > above {
			uids = append(uids, uint32(uid))
		}
	}
	sort.Slice(uids, func(i, j int) bool { return uids[i] < uids[j] })

	return uids, nil
}

// FetchBatch retrieves the full raw bodies for the given UIDs, chunked by
// the configured batch size. Messages the server does not return are logged
// and skipped. Results come back in ascending UID order.
func (f *Fetcher) FetchBatch(client *imapclient.Client, uids []uint32) ([]FetchedMessage, error) {
	var fetched []FetchedMessage

	for _, chunk := range chunkUIDs(uids, f.batchSize) {
		messages, err := f.fetchChunk(client, chunk)
		if err != nil {
			return fetched, err
		}
		fetched = append(fetched, messages...)
	}

	sort.Slice(fetched, func(i, j int) bool { return fetched[i].UID < fetched[j].UID })
	return fetched, nil
}

func (f *Fetcher) fetchChunk(client *imapclient.Client, uids []uint32) ([]FetchedMessage, error) {
	imapUIDs := make([]imap.UID, len(uids))
	for i, uid := range uids {
		imapUIDs[i] = imap.UID(uid)
	}
	uidSet := imap.UIDSetNum(imapUIDs...)

	bodySection := &imap.FetchItemBodySection{
		Peek: true,
	}
	fetchOpts := &imap.FetchOptions{
		UID:         true,
		BodySection: []*imap.FetchItemBodySection{bodySection},
	}

	fetchCmd := client.Fetch(uidSet, fetchOpts)
	defer fetchCmd.Close()

	seen := make(map[uint32]bool, len(uids))
	var messages []FetchedMessage
	for {
		msg := fetchCmd.Next()
		if msg == nil {
			break
		}

		buf, err := msg.Collect()
		if err != nil {
			f.logger.Warnw("failed to collect message data", "error", err)
			continue
		}

		raw := buf.FindBodySection(bodySection)
		if raw == nil {
			f.logger.Warnw("message returned without body section", "uid", uint32(buf.UID))
			continue
		}

		seen[uint32(buf.UID)] = true
		messages = append(messages, FetchedMessage{
			UID: uint32(buf.UID),
			Raw: raw,
		})
	}

	if err := fetchCmd.Close(); err != nil {
		return messages, &FetchError{Err: err}
	}

	for _, uid := range uids {
		if !seen[uid] {
			f.logger.Warnw("message not returned by server, skipping", "uid", uid)
		}
	}

	return messages, nil
}

// chunkUIDs splits uids into slices of at most size elements.
func chunkUIDs(uids []uint32, size int) [][]uint32 {
	if size <= 0 {
		size = len(uids)
	}
	var chunks [][]uint32
	for start := 0; start < len(uids); start += size {
		end := start + size
		if end > len(uids) {
			end = len(uids)
		}
		chunks = append(chunks, uids[start:end])
	}
	return chunks
}
