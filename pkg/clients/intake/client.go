package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fitngo-leads/pkg/models"
)

// Client defines the interface the form controller uses to reach the lead
// intake endpoint. One attempt per call, no retries.
type Client interface {
	SubmitLead(ctx context.Context, payload models.LeadPayload) (models.ResponseEnvelope, error)
}

type clientImpl struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new intake client for the given endpoint URL
func NewClient(endpoint string) Client {
	return &clientImpl{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SubmitLead posts the payload and decodes the response envelope. The error
// return covers transport failures only; a reachable server always yields an
// envelope, even when its body cannot be decoded (that counts as ok=false
// with no message, so the controller falls back to a generic error).
func (c *clientImpl) SubmitLead(ctx context.Context, payload models.LeadPayload) (models.ResponseEnvelope, error) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return models.ResponseEnvelope{}, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return models.ResponseEnvelope{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ResponseEnvelope{}, fmt.Errorf("error submitting lead: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ResponseEnvelope{}, fmt.Errorf("error reading response: %w", err)
	}

	var envelope models.ResponseEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		// Decode failures on a received response are not transport errors
		envelope = models.ResponseEnvelope{}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		envelope.OK = false
	}

	return envelope, nil
}
