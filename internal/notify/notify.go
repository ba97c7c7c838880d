// Package notify delivers admin notifications about new tuition inquiries.
//
// Delivery is fire-and-forget: a failed channel is logged and never
// surfaces to the caller, so a notification outage cannot fail an
// inquiry submission.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

// Message is a rendered notification ready for delivery on any channel.
type Message struct {
	Subject string
	Body    string
}

// Channel delivers a rendered message over one transport (email, WhatsApp, log).
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

const sendTimeout = 15 * time.Second

// Gateway fans a notification out to all configured channels.
type Gateway struct {
	channels []Channel
	logger   *slog.Logger

	wg sync.WaitGroup
}

// NewGateway creates a gateway over the given channels. An empty channel
// list is valid; notifications are then dropped silently.
func NewGateway(logger *slog.Logger, channels ...Channel) *Gateway {
	return &Gateway{
		channels: channels,
		logger:   logger.With("component", "notify"),
	}
}

// InquiryCreated notifies every channel about a freshly submitted inquiry.
// It returns immediately; delivery happens in the background with its own
// timeout, detached from the request context.
func (g *Gateway) InquiryCreated(inq domain.Inquiry, parentName string) {
	msg := renderInquiryCreated(inq, parentName)

	for _, ch := range g.channels {
		g.wg.Add(1)
		go func(ch Channel) {
			defer g.wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
			defer cancel()

			if err := ch.Send(ctx, msg); err != nil {
				g.logger.ErrorContext(ctx, "notification delivery failed",
					"channel", ch.Name(),
					"inquiry_id", inq.ID,
					"error", err,
				)
				return
			}
			g.logger.InfoContext(ctx, "notification delivered",
				"channel", ch.Name(),
				"inquiry_id", inq.ID,
			)
		}(ch)
	}
}

// Wait blocks until all in-flight deliveries finish. Used on shutdown
// and in tests.
func (g *Gateway) Wait() {
	g.wg.Wait()
}

func renderInquiryCreated(inq domain.Inquiry, parentName string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "New tuition inquiry from %s.\n\n", parentName)
	fmt.Fprintf(&b, "Student: %s (%s)\n", inq.StudentName, inq.ClassLevel)
	fmt.Fprintf(&b, "Subjects: %s\n", strings.Join(inq.Subjects, ", "))
	fmt.Fprintf(&b, "Location: %s\n", inq.Location)
	fmt.Fprintf(&b, "Contact: %s\n", inq.Contact)
	fmt.Fprintf(&b, "Inquiry ID: %s\n", inq.ID)

	return Message{
		Subject: fmt.Sprintf("New inquiry: %s (%s)", inq.StudentName, inq.ClassLevel),
		Body:    b.String(),
	}
}
