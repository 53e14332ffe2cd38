// Package analytics gates product analytics on the visitor's consent.
//
// A Client starts uninitialized; Track is ignored until Init. After Init the
// consent state decides what happens to events:
//
//	unknown  -> queued (bounded, oldest dropped first)
//	granted  -> published, queue flushed on the transition
//	denied   -> discarded, queue cleared on the transition
//
// Consent can be decided again at any time.
package analytics

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Consent int

const (
	ConsentUnknown Consent = iota
	ConsentGranted
	ConsentDenied
)

const CookieName = "analytics_consent"

func (c Consent) String() string {
	switch c {
	case ConsentGranted:
		return "granted"
	case ConsentDenied:
		return "denied"
	default:
		return "unknown"
	}
}

func ParseConsent(raw string) Consent {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "granted", "true", "1", "yes":
		return ConsentGranted
	case "denied", "false", "0", "no":
		return ConsentDenied
	default:
		return ConsentUnknown
	}
}

type Event struct {
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties,omitempty"`
	DistinctID string         `json:"distinctId,omitempty"`
	At         time.Time      `json:"at"`
}

type Sink interface {
	Publish(ctx context.Context, events []Event) error
}

type Options struct {
	QueueSize  int
	DistinctID string
	Logger     logrus.FieldLogger
	Now        func() time.Time
}

type Client struct {
	sink Sink
	opts Options

	mu          sync.Mutex
	initialized bool
	consent     Consent
	queue       []Event
}

func NewClient(sink Sink, opts Options) *Client {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 50
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Client{sink: sink, opts: opts}
}

// Init starts the client with the consent known at construction time.
// Calling it again is a no-op.
func (c *Client) Init(consent Consent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return
	}
	c.initialized = true
	c.consent = consent
}

func (c *Client) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

func (c *Client) Consent() Consent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.consent
}

func (c *Client) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// SetConsent records a decision. Granting flushes queued events. Before Init
// it is ignored, like Track.
func (c *Client) SetConsent(ctx context.Context, consent Consent) error {
	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return nil
	}
	c.consent = consent

	var flush []Event
	switch consent {
	case ConsentGranted:
		flush = c.queue
		c.queue = nil
	case ConsentDenied:
		c.queue = nil
	}
	c.mu.Unlock()

	if len(flush) == 0 {
		return nil
	}
	return c.publish(ctx, flush)
}

func (c *Client) Track(ctx context.Context, name string, props map[string]any) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return nil
	}
	evt := Event{Name: name, Properties: props, DistinctID: c.opts.DistinctID, At: c.opts.Now().UTC()}

	switch c.consent {
	case ConsentDenied:
		c.mu.Unlock()
		return nil
	case ConsentUnknown:
		if len(c.queue) >= c.opts.QueueSize {
			c.queue = c.queue[1:]
		}
		c.queue = append(c.queue, evt)
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	return c.publish(ctx, []Event{evt})
}

// Reset returns the client to its uninitialized state.
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialized = false
	c.consent = ConsentUnknown
	c.queue = nil
}

func (c *Client) publish(ctx context.Context, events []Event) error {
	if c.sink == nil {
		return nil
	}
	if err := c.sink.Publish(ctx, events); err != nil {
		if c.opts.Logger != nil {
			c.opts.Logger.WithError(err).WithField("events", len(events)).Warn("[Analytics] publish failed")
		}
		return err
	}
	return nil
}
