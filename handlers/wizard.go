package handlers

import (
	"context"
	"errors"
	"net/http"

	"seven18/models"
	"seven18/services/quote"
	"seven18/services/wizard"
	"seven18/utils"

	"github.com/gin-gonic/gin"
)

// WizardHandler exposes the booking wizard over HTTP.
type WizardHandler struct {
	service *wizard.Service
}

func NewWizardHandler(service *wizard.Service) *WizardHandler {
	return &WizardHandler{service: service}
}

// StartSession handles POST /api/wizard/session.
func (h *WizardHandler) StartSession(c *gin.Context) {
	session, err := h.service.StartSession(c.Request.Context())
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession handles GET /api/wizard/session/:id.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession handles DELETE /api/wizard/session/:id.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.service.CancelSession(c.Request.Context(), c.Param("id")); err != nil {
		respondWizardError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateForm handles PUT /api/wizard/session/:id.
func (h *WizardHandler) UpdateForm(c *gin.Context) {
	var patch wizard.FormPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	session, err := h.service.UpdateForm(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Next handles POST /api/wizard/session/:id/next.
func (h *WizardHandler) Next(c *gin.Context) {
	h.transition(c, h.service.Next)
}

// Back handles POST /api/wizard/session/:id/back.
func (h *WizardHandler) Back(c *gin.Context) {
	h.transition(c, h.service.Back)
}

// SubmitQuote handles POST /api/wizard/session/:id/quote. A failed
// quote still returns the session so the client can show the retryable
// error in place.
func (h *WizardHandler) SubmitQuote(c *gin.Context) {
	session, err := h.service.SubmitQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardErrorWithSession(c, err, session)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetInspiration handles POST /api/wizard/session/:id/inspiration.
func (h *WizardHandler) GetInspiration(c *gin.Context) {
	session, err := h.service.GetInspiration(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SendInquiry handles POST /api/wizard/session/:id/inquiry.
func (h *WizardHandler) SendInquiry(c *gin.Context) {
	h.transition(c, h.service.SendInquiry)
}

// Reopen handles POST /api/wizard/session/:id/reopen.
func (h *WizardHandler) Reopen(c *gin.Context) {
	h.transition(c, h.service.Reopen)
}

// Deposit handles POST /api/wizard/session/:id/deposit.
func (h *WizardHandler) Deposit(c *gin.Context) {
	h.transition(c, h.service.Deposit)
}

// ConfirmDeposit handles POST /api/wizard/session/:id/deposit/confirm.
func (h *WizardHandler) ConfirmDeposit(c *gin.Context) {
	h.transition(c, h.service.ConfirmDeposit)
}

func (h *WizardHandler) transition(c *gin.Context, op func(context.Context, string) (*models.WizardSession, error)) {
	session, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func respondWizardError(c *gin.Context, err error) {
	respondWizardErrorWithSession(c, err, nil)
}

// respondWizardErrorWithSession maps service errors to HTTP statuses.
// When a session snapshot accompanies the error it is included so the
// client keeps its state in sync.
func respondWizardErrorWithSession(c *gin.Context, err error, session *models.WizardSession) {
	var ve *wizard.ValidationError
	var se *wizard.StateError

	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Session not found", "The booking session does not exist or has expired.")
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{
			"message":     "Validation failed",
			"fieldErrors": ve.Fields,
			"session":     session,
		})
	case errors.As(err, &se):
		utils.JSONError(c, http.StatusConflict, "Invalid operation", se.Message)
	case errors.Is(err, wizard.ErrMailUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "Email unavailable", "Email dispatch is not configured. Please contact us directly.")
	case quote.IsServiceUnavailable(err):
		respondQuoteError(c, http.StatusServiceUnavailable, err, session)
	case quote.IsRetryable(err):
		respondQuoteError(c, http.StatusBadGateway, err, session)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred. Please try again later.")
	}
}

func respondQuoteError(c *gin.Context, status int, err error, session *models.WizardSession) {
	var qe *quote.Error
	message := "Something went wrong. Please try again."
	code := ""
	if errors.As(err, &qe) {
		message = qe.Message
		code = qe.Code
	}
	c.JSON(status, gin.H{
		"message": message,
		"code":    code,
		"session": session,
	})
}
