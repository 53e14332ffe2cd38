package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const rateLimitIdle = 10 * time.Minute

// NewScheduler registers the periodic maintenance jobs. The caller starts and
// stops it.
func NewScheduler(c *Container) (*cron.Cron, error) {
	s := cron.New(cron.WithChain(cron.Recover(cronLogger{c.Logger})))

	if _, err := s.AddFunc(c.Config.RateLimit.CleanupSpec, func() {
		removed := c.RateLimiter.Cleanup(rateLimitIdle)
		if removed > 0 && c.Logger != nil {
			c.Logger.WithField("removed", removed).Debug("[Scheduler] rate limiter cleanup")
		}
	}); err != nil {
		return nil, err
	}

	if _, err := s.AddFunc("@every 1m", func() {
		if c.Logger != nil {
			c.Logger.WithField("ws_subscribers", c.Hub.SubscriberCount()).Debug("[Scheduler] websocket subscribers")
		}
	}); err != nil {
		return nil, err
	}

	return s, nil
}

type cronLogger struct {
	logger logrus.FieldLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.WithField("kv", keysAndValues).Debug("[Scheduler] " + msg)
	}
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.WithError(err).WithField("kv", keysAndValues).Error("[Scheduler] " + msg)
	}
}
