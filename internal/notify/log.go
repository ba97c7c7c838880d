package notify

import (
	"context"
	"log/slog"
)

// LogChannel writes notifications to the structured log. It stands in for
// real channels in development and when email and WhatsApp are disabled.
type LogChannel struct {
	logger *slog.Logger
}

// NewLogChannel creates a log-backed channel.
func NewLogChannel(logger *slog.Logger) *LogChannel {
	return &LogChannel{logger: logger}
}

func (c *LogChannel) Name() string { return "log" }

func (c *LogChannel) Send(ctx context.Context, msg Message) error {
	c.logger.InfoContext(ctx, "notification",
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
