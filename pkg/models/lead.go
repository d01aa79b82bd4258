package models

import "strings"

// LeadPayload is the data structure coming from the landing page form or quiz
type LeadPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	// Company is a honeypot field hidden from human visitors; bots fill it in
	Company string `json:"company"`
}

// NormalizedPhone keeps the trimmed display form alongside the digits used
// for validation
type NormalizedPhone struct {
	Display string
	Digits  string
}

// NormalizePhone trims the raw phone and strips every non-digit character
func NormalizePhone(raw string) NormalizedPhone {
	trimmed := strings.TrimSpace(raw)

	digits := make([]byte, 0, len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] >= '0' && trimmed[i] <= '9' {
			digits = append(digits, trimmed[i])
		}
	}

	return NormalizedPhone{
		Display: trimmed,
		Digits:  string(digits),
	}
}

// ResponseEnvelope is the uniform JSON body returned by the intake endpoint
type ResponseEnvelope struct {
	OK    bool    `json:"ok"`
	Error string  `json:"error,omitempty"`
	ID    *string `json:"id,omitempty"`
}

// LeadResult is the outcome of a processed submission. Discarded marks a
// honeypot hit that was silently dropped without a notification.
type LeadResult struct {
	ID        string
	Discarded bool
}
