package leadform

import "fitngo-leads/pkg/models"

// Status is the submission state of a form instance
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusOK
	StatusError
)

const (
	// ErrSubmitFailed is shown when the server answered ok=false without a
	// usable message
	ErrSubmitFailed = "Не удалось отправить. Попробуйте ещё раз или позвоните."
	// ErrNetwork is shown when no response reached the client at all
	ErrNetwork = "Сеть недоступна. Попробуйте ещё раз или позвоните."
)

// FormState holds the simple contact form. All transitions are value
// receivers returning a new state; nothing here touches a rendering layer.
type FormState struct {
	Name    string
	Phone   string
	Message string
	Company string // honeypot, stays empty for human submissions

	Status Status
	Error  string
}

// NewFormState returns an idle, empty form
func NewFormState() FormState {
	return FormState{Status: StatusIdle}
}

func (s FormState) SetName(v string) FormState    { s.Name = v; return s }
func (s FormState) SetPhone(v string) FormState   { s.Phone = v; return s }
func (s FormState) SetMessage(v string) FormState { s.Message = v; return s }

// CanSubmit reports whether a submit action may fire. Sending blocks the
// double-submit; ok is terminal until Reset.
func (s FormState) CanSubmit() bool {
	return (s.Status == StatusIdle || s.Status == StatusError) && s.Phone != ""
}

// BeginSubmit transitions into sending. Returns the state unchanged with
// ok=false when the guard refuses (already sending, already ok, no phone).
func (s FormState) BeginSubmit() (FormState, bool) {
	if !s.CanSubmit() {
		return s, false
	}
	s.Status = StatusSending
	s.Error = ""
	return s, true
}

// ApplyResult maps the submission outcome onto the state machine. A transport
// error (err != nil) shows the generic connectivity message; ok=false shows
// the server message verbatim, falling back when it is empty. Success clears
// the input fields.
func (s FormState) ApplyResult(envelope models.ResponseEnvelope, err error) FormState {
	if err != nil {
		s.Status = StatusError
		s.Error = ErrNetwork
		return s
	}

	if !envelope.OK {
		s.Status = StatusError
		s.Error = envelope.Error
		if s.Error == "" {
			s.Error = ErrSubmitFailed
		}
		return s
	}

	s.Status = StatusOK
	s.Error = ""
	s.Name = ""
	s.Phone = ""
	s.Message = ""
	s.Company = ""
	return s
}

// Reset returns the form to its initial state
func (s FormState) Reset() FormState {
	return NewFormState()
}

// Payload builds the submission body for the simple form
func (s FormState) Payload() models.LeadPayload {
	return models.LeadPayload{
		Name:    s.Name,
		Phone:   s.Phone,
		Message: s.Message,
		Company: s.Company,
	}
}
