package leadform

import (
	"context"

	"fitngo-leads/pkg/clients/intake"
)

// Controller drives the form and quiz state machines through a single
// submission attempt per user action
type Controller struct {
	client intake.Client
}

// NewController creates a controller over the given intake client
func NewController(client intake.Client) *Controller {
	return &Controller{client: client}
}

// SubmitForm performs one submission attempt for the simple form and returns
// the resulting state. A refused guard (already sending, already ok) returns
// the state untouched.
func (c *Controller) SubmitForm(ctx context.Context, state FormState) FormState {
	state, ok := state.BeginSubmit()
	if !ok {
		return state
	}

	envelope, err := c.client.SubmitLead(ctx, state.Payload())
	return state.ApplyResult(envelope, err)
}

// SubmitQuiz performs one submission attempt for the quiz flow
func (c *Controller) SubmitQuiz(ctx context.Context, state QuizState) QuizState {
	state, ok := state.BeginSubmit()
	if !ok {
		return state
	}

	envelope, err := c.client.SubmitLead(ctx, state.Payload())
	return state.ApplyResult(envelope, err)
}
