package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitngo-leads/pkg/models"
	"fitngo-leads/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	leadService services.LeadService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(leadService services.LeadService) *Handlers {
	return &Handlers{
		leadService: leadService,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleLead processes a lead submission from the landing page form or quiz
func (h *Handlers) HandleLead(c *gin.Context) {
	var payload models.LeadPayload

	body, err := io.ReadAll(c.Request.Body)
	if err == nil {
		// Parse and type errors are absorbed: validation downstream is the
		// single source of truth for missing-field errors.
		if err := json.Unmarshal(body, &payload); err != nil {
			log.Printf("Ignoring malformed lead body: %v", err)
		}
	}

	result, err := h.leadService.Submit(c.Request.Context(), payload)
	if err != nil {
		status, message := classifyError(err)
		c.JSON(status, models.ResponseEnvelope{OK: false, Error: message})
		return
	}

	if result.Discarded {
		c.JSON(http.StatusOK, models.ResponseEnvelope{OK: true})
		return
	}

	id := result.ID
	c.JSON(http.StatusOK, models.ResponseEnvelope{OK: true, ID: &id})
}

// classifyError maps the pipeline's error kinds onto HTTP statuses. Anything
// unrecognized is an unexpected fault and answers 500 with its message, or a
// generic fallback when there is none.
func classifyError(err error) (int, string) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	var configErr *models.ConfigurationError
	if errors.As(err, &configErr) {
		return http.StatusInternalServerError, configErr.Message
	}

	var deliveryErr *models.DeliveryError
	if errors.As(err, &deliveryErr) {
		return http.StatusInternalServerError, deliveryErr.Message
	}

	message := err.Error()
	if message == "" {
		message = "Server error"
	}
	return http.StatusInternalServerError, message
}
