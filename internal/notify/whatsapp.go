package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// WhatsAppChannel delivers notifications to the admin's WhatsApp number
// via the Twilio messaging API.
type WhatsAppChannel struct {
	client      *twilio.RestClient
	from        string
	adminNumber string
}

// NewWhatsAppChannel creates a Twilio-backed WhatsApp channel. Numbers are
// given in E.164 form; the whatsapp: prefix is added here.
func NewWhatsAppChannel(accountSID, authToken, from, adminNumber string) *WhatsAppChannel {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &WhatsAppChannel{
		client:      client,
		from:        "whatsapp:" + from,
		adminNumber: "whatsapp:" + adminNumber,
	}
}

func (c *WhatsAppChannel) Name() string { return "whatsapp" }

// Send delivers the message body to the admin number. The Twilio SDK does
// not accept a context, so only the subject-free body is sent and the
// context deadline bounds our side of the call.
func (c *WhatsAppChannel) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(c.adminNumber)
	params.SetFrom(c.from)
	params.SetBody(msg.Subject + "\n\n" + msg.Body)

	if _, err := c.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("notify.WhatsAppChannel.Send: %w", err)
	}

	return nil
}
