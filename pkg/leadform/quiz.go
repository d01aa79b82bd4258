package leadform

import (
	"strings"

	"fitngo-leads/pkg/models"
)

const (
	quizFirstStep = 1
	quizLastStep  = 4

	quizHeader = "КВИЗ (Коммунарка):"
)

// Fixed answer lists for the three selection steps
var (
	GoalOptions = []string{
		"Похудеть и убрать объёмы",
		"Подтянуть тело и тонус",
		"Спина/осанка, укрепить кор",
		"Восстановление после родов — быстро прийти в форму",
	}
	ScheduleOptions = []string{
		"Утро (до 12:00)",
		"День (12:00–17:00)",
		"Вечер (после 17:00)",
		"Любое время",
	}
	LevelOptions = []string{
		"Новичок",
		"Тренировалась раньше, был перерыв",
		"Занимаюсь регулярно",
		"Есть ограничения/травмы",
	}
)

// QuizState holds the 4-step quiz. Steps 1-3 each require exactly one
// selection from their fixed list; step 4 collects the phone and submits.
// Unlike the simple form, answers survive a successful submit so the visitor
// can still see them.
type QuizState struct {
	Step int

	Goal     string
	Schedule string
	Level    string
	Phone    string
	Note     string
	Company  string // honeypot

	Status Status
	Error  string
}

// NewQuizState returns an idle quiz at step 1
func NewQuizState() QuizState {
	return QuizState{Step: quizFirstStep, Status: StatusIdle}
}

// SelectGoal records the step-1 answer; values outside the fixed list are
// ignored
func (s QuizState) SelectGoal(v string) QuizState {
	if isOption(GoalOptions, v) {
		s.Goal = v
	}
	return s
}

// SelectSchedule records the step-2 answer
func (s QuizState) SelectSchedule(v string) QuizState {
	if isOption(ScheduleOptions, v) {
		s.Schedule = v
	}
	return s
}

// SelectLevel records the step-3 answer
func (s QuizState) SelectLevel(v string) QuizState {
	if isOption(LevelOptions, v) {
		s.Level = v
	}
	return s
}

func (s QuizState) SetPhone(v string) QuizState { s.Phone = v; return s }
func (s QuizState) SetNote(v string) QuizState  { s.Note = v; return s }

// CanNext reports whether the current step's required selection is made
func (s QuizState) CanNext() bool {
	if s.Status == StatusSending || s.Step >= quizLastStep {
		return false
	}
	switch s.Step {
	case 1:
		return s.Goal != ""
	case 2:
		return s.Schedule != ""
	case 3:
		return s.Level != ""
	}
	return false
}

// Next advances one step when the guard allows it
func (s QuizState) Next() QuizState {
	if s.CanNext() {
		s.Step++
	}
	return s
}

// CanBack reports whether stepping back is possible
func (s QuizState) CanBack() bool {
	return s.Step > quizFirstStep && s.Status != StatusSending
}

// Back retreats one step when the guard allows it
func (s QuizState) Back() QuizState {
	if s.CanBack() {
		s.Step--
	}
	return s
}

// CanSubmit reports whether the quiz may be submitted: only at the last step,
// with a phone, and not already sending or done
func (s QuizState) CanSubmit() bool {
	return s.Step == quizLastStep &&
		(s.Status == StatusIdle || s.Status == StatusError) &&
		s.Phone != ""
}

// BeginSubmit transitions into sending, refusing anywhere CanSubmit does
func (s QuizState) BeginSubmit() (QuizState, bool) {
	if !s.CanSubmit() {
		return s, false
	}
	s.Status = StatusSending
	s.Error = ""
	return s, true
}

// ApplyResult mirrors FormState.ApplyResult but keeps the answers on success
func (s QuizState) ApplyResult(envelope models.ResponseEnvelope, err error) QuizState {
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
	return s
}

// Reset returns the quiz to its initial state
func (s QuizState) Reset() QuizState {
	return NewQuizState()
}

// ComposeMessage joins the selected answers into the notification comment.
// Label order is fixed: goal, schedule, experience level, then the optional
// note only when non-empty.
func (s QuizState) ComposeMessage() string {
	lines := []string{
		quizHeader,
		"Цель: " + orDash(s.Goal),
		"График: " + orDash(s.Schedule),
		"Опыт: " + orDash(s.Level),
	}
	if s.Note != "" {
		lines = append(lines, "Комментарий: "+s.Note)
	}
	return strings.Join(lines, "\n")
}

// Payload builds the submission body for the quiz flow
func (s QuizState) Payload() models.LeadPayload {
	return models.LeadPayload{
		Name:    "",
		Phone:   s.Phone,
		Message: s.ComposeMessage(),
		Company: s.Company,
	}
}

func isOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
