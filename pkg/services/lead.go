package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fitngo-leads/pkg/clients/resend"
	"fitngo-leads/pkg/config"
	"fitngo-leads/pkg/models"
	"fitngo-leads/pkg/utils"
)

const (
	studioLocation = "Коммунарка, бульвар Веласкеса, 4"
	subjectFormat  = "Заявка Fit N Go — %s"

	// ru-RU style timestamp for the notification body
	timestampLayout = "02.01.2006, 15:04:05"

	sendTimeout = 15 * time.Second
)

// LeadService defines the interface for the lead submission pipeline
type LeadService interface {
	Submit(ctx context.Context, payload models.LeadPayload) (models.LeadResult, error)
}

type leadServiceImpl struct {
	mailClient resend.Client
	config     *config.Config
}

// NewLeadService creates a new lead service
func NewLeadService(mailClient resend.Client, config *config.Config) LeadService {
	return &leadServiceImpl{
		mailClient: mailClient,
		config:     config,
	}
}

// Submit runs the whole intake pipeline: honeypot filtering, phone
// validation, configuration check and the single outbound notification.
func (s *leadServiceImpl) Submit(ctx context.Context, payload models.LeadPayload) (models.LeadResult, error) {
	name := strings.TrimSpace(payload.Name)
	message := strings.TrimSpace(payload.Message)
	honeypot := strings.TrimSpace(payload.Company)

	// Bots fill the hidden field. Drop silently: the response must be
	// indistinguishable from success so automated clients get no signal.
	if honeypot != "" {
		log.Printf("Discarding automated submission (honeypot filled)")
		return models.LeadResult{Discarded: true}, nil
	}

	phone := models.NormalizePhone(payload.Phone)
	if phone.Display == "" {
		return models.LeadResult{}, &models.ValidationError{Message: "Введите телефон"}
	}

	// 10+ digits admits most country formats while catching obvious junk.
	// For RF numbers the usual count is 11.
	if len(phone.Digits) < s.config.MinPhoneDigits {
		return models.LeadResult{}, &models.ValidationError{Message: "Введите корректный телефон"}
	}

	if s.config.ResendAPIKey == "" || s.config.LeadsToEmail == "" || s.config.LeadsFromEmail == "" {
		return models.LeadResult{}, &models.ConfigurationError{
			Message: "Не настроены переменные окружения: RESEND_API_KEY / LEADS_TO_EMAIL / LEADS_FROM_EMAIL",
		}
	}

	phoneHash := utils.HashString(phone.Display)
	log.Printf("Processing lead submission (%s)", phoneHash)

	html := buildLeadEmail(name, phone.Display, message, time.Now())
	subject := fmt.Sprintf(subjectFormat, phone.Display)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	id, err := s.mailClient.SendEmail(ctx, s.config.LeadsFromEmail, []string{s.config.LeadsToEmail}, subject, html)
	if err != nil {
		log.Printf("Error delivering lead notification (%s): %v", phoneHash, err)
		return models.LeadResult{}, &models.DeliveryError{Message: err.Error()}
	}

	log.Printf("Lead notification delivered (%s), id=%s", phoneHash, id)
	return models.LeadResult{ID: id}, nil
}

// buildLeadEmail composes the notification markup. Every submitted value is
// escaped exactly once before embedding; message newlines become <br/> after
// escaping.
func buildLeadEmail(name, phone, message string, now time.Time) string {
	comment := utils.EscapeHTML(orDash(message))
	comment = strings.ReplaceAll(comment, "\n", "<br/>")

	var b strings.Builder
	b.WriteString("<h2>Новая заявка на пробную EMS-тренировку (Fit N Go)</h2>")
	b.WriteString(fmt.Sprintf("<p><b>Имя:</b> %s</p>", utils.EscapeHTML(orDash(name))))
	b.WriteString(fmt.Sprintf("<p><b>Телефон:</b> %s</p>", utils.EscapeHTML(phone)))
	b.WriteString(fmt.Sprintf("<p><b>Комментарий:</b><br/>%s</p>", comment))
	b.WriteString("<hr/>")
	b.WriteString(fmt.Sprintf("<p><b>Локация:</b> %s</p>", studioLocation))
	b.WriteString(fmt.Sprintf("<p><b>Дата:</b> %s</p>", now.Format(timestampLayout)))
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
