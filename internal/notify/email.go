package notify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// EmailChannel delivers notifications to the admin inbox via SendGrid.
type EmailChannel struct {
	apiKey     string
	from       *sgmail.Email
	adminEmail string
}

// NewEmailChannel creates a SendGrid-backed email channel.
func NewEmailChannel(apiKey, fromName, fromEmail, adminEmail string) *EmailChannel {
	return &EmailChannel{
		apiKey:     apiKey,
		from:       sgmail.NewEmail(fromName, fromEmail),
		adminEmail: adminEmail,
	}
}

func (c *EmailChannel) Name() string { return "email" }

// Send delivers the message to the admin address.
func (c *EmailChannel) Send(ctx context.Context, msg Message) error {
	m := sgmail.NewV3Mail()
	m.SetFrom(c.from)

	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail("", c.adminEmail))
	m.AddPersonalizations(p)

	m.AddContent(sgmail.NewContent("text/plain", msg.Body))

	req := sendgrid.GetRequest(c.apiKey, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("notify.EmailChannel.Send: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notify.EmailChannel.Send: sendgrid status %d: %s", res.StatusCode, res.Body)
	}

	return nil
}
