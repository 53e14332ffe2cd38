package analytics

import (
	"github.com/sirupsen/logrus"
)

// Factory builds one Client per request. With analytics disabled every client
// stays uninitialized, so Track is a no-op.
type Factory struct {
	sink      Sink
	enabled   bool
	queueSize int
	logger    logrus.FieldLogger
}

func NewFactory(sink Sink, enabled bool, queueSize int, logger logrus.FieldLogger) *Factory {
	return &Factory{sink: sink, enabled: enabled, queueSize: queueSize, logger: logger}
}

// ForRequest initializes a client from the consent cookie value.
func (f *Factory) ForRequest(consentCookie, distinctID string) *Client {
	c := NewClient(f.sink, Options{QueueSize: f.queueSize, DistinctID: distinctID, Logger: f.logger})
	if f.enabled {
		c.Init(ParseConsent(consentCookie))
	}
	return c
}
