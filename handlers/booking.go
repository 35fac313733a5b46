package handlers

import (
	"net/http"
	"time"

	"seven18/models"
	"seven18/services/wizard"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingHandler serves the package catalog and the stateless inquiry
// endpoint used by clients that manage wizard state themselves.
type BookingHandler struct {
	mail   wizard.InquirySender
	leads  wizard.LeadRecorder
	logger *zap.Logger
}

func NewBookingHandler(mail wizard.InquirySender, leads wizard.LeadRecorder, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{mail: mail, leads: leads, logger: logger}
}

// ListPackages handles GET /api/booking/packages.
func (h *BookingHandler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"packages":  models.VenuePackages,
		"timeSlots": models.TimeSlots,
	})
}

type inquiryRequest struct {
	FormData  models.BookingFormData `json:"formData"`
	QuoteData models.BookingQuote    `json:"quoteData"`
}

// SendInquiry handles POST /api/booking/inquiry. It validates the
// contact fields, dispatches the inquiry email pair, and records the
// lead.
func (h *BookingHandler) SendInquiry(c *gin.Context) {
	var req inquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body.",
		})
		return
	}

	if fieldErrs := wizard.ValidateContact(req.FormData.Name, req.FormData.Email, req.FormData.Phone); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":     false,
			"error":       "Validation failed.",
			"fieldErrors": fieldErrs,
		})
		return
	}

	if !h.mail.Available() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Email dispatch is not configured. Please contact us directly.",
		})
		return
	}

	result, err := h.mail.SendBookingInquiry(c.Request.Context(), req.FormData, req.QuoteData)
	if err != nil {
		h.logger.Error("stateless inquiry dispatch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "We could not send your inquiry. Please try again later.",
		})
		return
	}

	if h.leads != nil {
		record := models.InquiryRecord{
			ID:                    uuid.New().String(),
			FormData:              req.FormData,
			Quote:                 req.QuoteData,
			InquiryMessageID:      result.InquiryMessageID,
			ConfirmationMessageID: result.ConfirmationMessageID,
			SentAt:                result.Timestamp,
			CreatedAt:             time.Now().UTC(),
		}
		if err := h.leads.Insert(c.Request.Context(), record); err != nil {
			h.logger.Error("failed to persist inquiry lead", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"inquiryMessageId":      result.InquiryMessageID,
			"confirmationMessageId": result.ConfirmationMessageID,
			"timestamp":             result.Timestamp,
		},
	})
}
