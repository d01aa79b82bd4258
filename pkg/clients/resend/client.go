package resend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	resendgo "github.com/resend/resend-go/v2"
)

// Client defines the interface for the transactional-email sink
type Client interface {
	SendEmail(ctx context.Context, from string, to []string, subject, html string) (string, error)
}

type clientImpl struct {
	client *resendgo.Client
}

// NewClient creates a new Resend client. The sink is an uncontrolled external
// dependency, so the underlying HTTP client carries a hard timeout.
func NewClient(apiKey string) Client {
	httpClient := &http.Client{Timeout: 15 * time.Second}
	return &clientImpl{
		client: resendgo.NewCustomClient(httpClient, apiKey),
	}
}

// SendEmail delivers one notification and returns the provider's message ID.
// Both failure modes of the SDK (error return and transport fault) come back
// as a single error value.
func (c *clientImpl) SendEmail(ctx context.Context, from string, to []string, subject, html string) (string, error) {
	params := &resendgo.SendEmailRequest{
		From:    from,
		To:      to,
		Subject: subject,
		Html:    html,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("error sending email: %w", err)
	}

	return sent.Id, nil
}
