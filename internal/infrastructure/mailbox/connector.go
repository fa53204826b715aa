package mailbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/emersion/go-imap/v2/imapclient"

	"stayops/internal/shared/config"
	"stayops/internal/shared/logger"
)

type connState int

const (
	stateDisconnected connState = iota
	stateConnecting
	stateAuthenticated
	stateMailboxOpen
)

func (s connState) String() string {
	switch s {
	case stateDisconnected:
		return "disconnected"
	case stateConnecting:
		return "connecting"
	case stateAuthenticated:
		return "authenticated"
	case stateMailboxOpen:
		return "mailbox_open"
	default:
		return "unknown"
	}
}

// Connector owns a single IMAP connection and keeps it usable across poll
// cycles. Failed connects push the next attempt out with exponential
// backoff; the connector never gives up.
type Connector struct {
	cfg    *config.MailboxConfig
	logger logger.Interface

	mu        sync.Mutex
	client    *imapclient.Client
	state     connState
	attempts  int
	nextRetry time.Time
}

func NewConnector(cfg *config.MailboxConfig, log logger.Interface) *Connector {
	return &Connector{
		cfg:    cfg,
		logger: log.Named("mailbox.connector"),
		state:  stateDisconnected,
	}
}

// Ensure returns a client with the configured folder selected, dialing and
// authenticating first if needed. It returns ErrBackoff when called before
// the backoff deadline set by a previous failure.
func (c *Connector) Ensure(ctx context.Context) (*imapclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateMailboxOpen && c.client != nil {
		return c.client, nil
	}

	if now := time.Now(); now.Before(c.nextRetry) {
		return nil, ErrBackoff
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.transition(stateConnecting)

	addr := c.cfg.GetAddr()
	var client *imapclient.Client
	var err error
	if c.cfg.TLS {
		client, err = imapclient.DialTLS(addr, nil)
	} else {
		client, err = imapclient.DialStartTLS(addr, nil)
	}
	if err != nil {
		return nil, c.fail(&ConnectionError{Op: "dial", Err: fmt.Errorf("%s: %w", addr, err)})
	}

	if err := client.Login(c.cfg.Username, c.cfg.Password).Wait(); err != nil {
		_ = client.Logout().Wait()
		return nil, c.fail(&ConnectionError{Op: "login", Err: fmt.Errorf("%s: %w", c.cfg.Username, err)})
	}
	c.transition(stateAuthenticated)

	if _, err := client.Select(c.cfg.Folder, nil).Wait(); err != nil {
		_ = client.Logout().Wait()
		return nil, c.fail(&ConnectionError{Op: "select", Err: fmt.Errorf("%s: %w", c.cfg.Folder, err)})
	}

	c.client = client
	c.attempts = 0
	c.nextRetry = time.Time{}
	c.transition(stateMailboxOpen)
	c.logger.Infow("mailbox connection established",
		"host", c.cfg.Host,
		"folder", c.cfg.Folder)

	return client, nil
}

// MarkBroken drops the current connection after an operation error. The
// next Ensure call reconnects, subject to backoff.
func (c *Connector) MarkBroken(opErr error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		_ = c.client.Close()
		c.client = nil
	}
	c.registerFailure(opErr)
}

// Logout closes the connection gracefully.
func (c *Connector) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		if err := c.client.Logout().Wait(); err != nil {
			c.logger.Warnw("mailbox logout failed", "error", err)
		}
		c.client = nil
	}
	c.transition(stateDisconnected)
}

// fail records a connect failure and returns the error. Caller holds the lock.
func (c *Connector) fail(err error) error {
	c.registerFailure(err)
	return err
}

// registerFailure moves to disconnected and arms the backoff. Caller holds
// the lock.
func (c *Connector) registerFailure(err error) {
	delay := backoffDelay(c.attempts,
		time.Duration(c.cfg.BackoffBaseMS)*time.Millisecond,
		time.Duration(c.cfg.BackoffCapMS)*time.Millisecond)
	c.attempts++
	c.nextRetry = time.Now().Add(delay)
	c.transition(stateDisconnected)
	c.logger.Errorw("mailbox connection lost",
		"error", err,
		"attempt", c.attempts,
		"retry_in", delay)
}

func (c *Connector) transition(next connState) {
	if c.state == next {
		return
	}
	c.logger.Debugw("mailbox connection state changed",
		"from", c.state.String(),
		"to", next.String())
	c.state = next
}

// backoffDelay computes the exponential backoff delay for the given zero-based
// attempt: base*2^attempt, capped at max.
func backoffDelay(attempt int, base, max time.Duration) time.Duration {
	if base <= 0 {
		base = 5 * time.Second
	}
	if max <= 0 {
		max = 30 * time.Second
	}

	delay := base
	for i := 0; i < attempt; i++ {
		delay *= 2
		if delay >= max {
			return max
		}
	}
	if delay > max {
		return max
	}
	return delay
}
