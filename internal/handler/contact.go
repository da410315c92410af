package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cargonova/logistics-api/internal/model"
	"github.com/cargonova/logistics-api/internal/repository"
)

// ContactHandler accepts contact form submissions.  Validation is
// intentionally light: every field must be non-blank and the email
// must look like an address.  Anything deeper belongs to the support
// workflow, not the intake endpoint.
type ContactHandler struct {
	Messages *repository.ContactRepo
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(messages *repository.ContactRepo) *ContactHandler {
	if messages == nil {
		panic("nil repository passed to NewContactHandler")
	}
	return &ContactHandler{Messages: messages}
}

// Submit handles POST /v1/contact.
func (h *ContactHandler) Submit(c echo.Context) error {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	body.Subject = strings.TrimSpace(body.Subject)
	body.Message = strings.TrimSpace(body.Message)
	if body.Name == "" || body.Email == "" || body.Subject == "" || body.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	if !strings.Contains(body.Email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email address"})
	}
	msg := &model.ContactMessage{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
	}
	if err := h.Messages.Insert(c.Request().Context(), msg); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store message"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": msg.ID})
}
