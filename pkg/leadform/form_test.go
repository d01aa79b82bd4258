package leadform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitngo-leads/pkg/models"
)

type fakeIntakeClient struct {
	calls    int
	last     models.LeadPayload
	envelope models.ResponseEnvelope
	err      error
}

func (f *fakeIntakeClient) SubmitLead(ctx context.Context, payload models.LeadPayload) (models.ResponseEnvelope, error) {
	f.calls++
	f.last = payload
	return f.envelope, f.err
}

func okEnvelope(id string) models.ResponseEnvelope {
	return models.ResponseEnvelope{OK: true, ID: &id}
}

func filledForm() FormState {
	return NewFormState().
		SetName("Анна").
		SetPhone("+7 977 778 08 25").
		SetMessage("хочу похудеть")
}

func TestFormSubmitSuccessClearsFields(t *testing.T) {
	client := &fakeIntakeClient{envelope: okEnvelope("msg-1")}
	controller := NewController(client)

	state := controller.SubmitForm(context.Background(), filledForm())

	assert.Equal(t, StatusOK, state.Status)
	assert.Empty(t, state.Error)
	assert.Empty(t, state.Name)
	assert.Empty(t, state.Phone)
	assert.Empty(t, state.Message)

	require.Equal(t, 1, client.calls)
	assert.Equal(t, "+7 977 778 08 25", client.last.Phone)
	assert.Equal(t, "Анна", client.last.Name)
}

func TestFormSubmitServerErrorShownVerbatim(t *testing.T) {
	client := &fakeIntakeClient{envelope: models.ResponseEnvelope{OK: false, Error: "Введите корректный телефон"}}
	controller := NewController(client)

	state := controller.SubmitForm(context.Background(), filledForm())

	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, "Введите корректный телефон", state.Error)
	// inputs survive a failed attempt
	assert.Equal(t, "Анна", state.Name)
}

func TestFormSubmitEmptyServerErrorFallsBack(t *testing.T) {
	client := &fakeIntakeClient{envelope: models.ResponseEnvelope{OK: false}}
	controller := NewController(client)

	state := controller.SubmitForm(context.Background(), filledForm())

	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, ErrSubmitFailed, state.Error)
}

func TestFormSubmitTransportFailure(t *testing.T) {
	client := &fakeIntakeClient{err: errors.New("connection refused")}
	controller := NewController(client)

	state := controller.SubmitForm(context.Background(), filledForm())

	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, ErrNetwork, state.Error)
}

func TestFormDoubleSubmitGuard(t *testing.T) {
	client := &fakeIntakeClient{envelope: okEnvelope("msg-1")}
	controller := NewController(client)

	state, ok := filledForm().BeginSubmit()
	require.True(t, ok)
	assert.Equal(t, StatusSending, state.Status)

	// a second submit while sending must not fire
	state = controller.SubmitForm(context.Background(), state)
	assert.Equal(t, StatusSending, state.Status)
	assert.Zero(t, client.calls)
}

func TestFormOKIsTerminalUntilReset(t *testing.T) {
	client := &fakeIntakeClient{envelope: okEnvelope("msg-1")}
	controller := NewController(client)

	state := controller.SubmitForm(context.Background(), filledForm())
	require.Equal(t, StatusOK, state.Status)

	state = state.SetPhone("+79990001122")
	state = controller.SubmitForm(context.Background(), state)
	assert.Equal(t, StatusOK, state.Status)
	assert.Equal(t, 1, client.calls)

	state = state.Reset()
	assert.Equal(t, StatusIdle, state.Status)
}

func TestFormErrorAllowsRetry(t *testing.T) {
	client := &fakeIntakeClient{envelope: models.ResponseEnvelope{OK: false, Error: "boom"}}
	controller := NewController(client)

	state := controller.SubmitForm(context.Background(), filledForm())
	require.Equal(t, StatusError, state.Status)

	client.envelope = okEnvelope("msg-2")
	state = controller.SubmitForm(context.Background(), state)
	assert.Equal(t, StatusOK, state.Status)
	assert.Equal(t, 2, client.calls)
}

func TestFormRequiresPhone(t *testing.T) {
	client := &fakeIntakeClient{envelope: okEnvelope("msg-1")}
	controller := NewController(client)

	state := controller.SubmitForm(context.Background(), NewFormState().SetName("Анна"))

	assert.Equal(t, StatusIdle, state.Status)
	assert.Zero(t, client.calls)
}
