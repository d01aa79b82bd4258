package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitngo-leads/pkg/middleware"
	"fitngo-leads/pkg/models"
)

// NewRouter builds the gin engine with all routes and middleware. Every
// outcome, including wrong methods and recovered panics, answers with the
// uniform response envelope.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(recoverToEnvelope))
	router.Use(middleware.CORS())

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ResponseEnvelope{
			OK:    false,
			Error: "Method not allowed",
		})
	})

	router.POST("/api/lead", h.HandleLead)
	router.GET("/health", h.HealthCheck)

	return router
}

// recoverToEnvelope keeps uncaught faults from reaching the transport layer
// as raw 500s without a body.
func recoverToEnvelope(c *gin.Context, recovered any) {
	log.Printf("Recovered from panic in handler: %v", recovered)

	message := fmt.Sprint(recovered)
	if message == "" {
		message = "Server error"
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, models.ResponseEnvelope{
		OK:    false,
		Error: message,
	})
}
