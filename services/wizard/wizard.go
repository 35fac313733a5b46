package wizard

import (
	"context"
	"errors"
	"time"

	"seven18/models"
	"seven18/services/mailer"
	"seven18/services/quote"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMailUnavailable is returned when an inquiry is requested but no
// mail dispatcher is configured.
var ErrMailUnavailable = errors.New("email dispatch is not configured")

// InquirySender dispatches the inquiry email pair.
type InquirySender interface {
	SendBookingInquiry(ctx context.Context, form models.BookingFormData, quote models.BookingQuote) (*mailer.DispatchResult, error)
	Available() bool
}

// LeadRecorder persists inquiry leads. May be absent; persistence is
// best-effort and never blocks the customer flow.
type LeadRecorder interface {
	Insert(ctx context.Context, record models.InquiryRecord) error
}

// Service drives a customer through the booking wizard. All methods
// load the session, apply one transition, and persist the result.
type Service struct {
	store    SessionStore
	pricer   quote.Pricer
	stylist  quote.Stylist
	mail     InquirySender
	payments PaymentHandler
	leads    LeadRecorder
	logger   *zap.Logger
}

func NewService(store SessionStore, pricer quote.Pricer, stylist quote.Stylist, mail InquirySender, payments PaymentHandler, leads LeadRecorder, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		pricer:   pricer,
		stylist:  stylist,
		mail:     mail,
		payments: payments,
		leads:    leads,
		logger:   logger,
	}
}

// StartSession creates a session at the date/time step with the default
// form selections.
func (s *Service) StartSession(ctx context.Context) (*models.WizardSession, error) {
	social, _ := models.PackageByID("social")

	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		Step:      models.StepDateTime,
		FormData: models.BookingFormData{
			EventType:       "Birthday Party",
			Guests:          25,
			SelectedPackage: social,
		},
		FieldErrors: make(map[string]string),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("wizard session started", zap.String("sessionId", session.SessionID))
	return session, nil
}

// GetSession loads an existing session.
func (s *Service) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.store.Get(ctx, sessionID)
}

// CancelSession discards a session.
func (s *Service) CancelSession(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// FormPatch updates individual form fields. Nil fields are left
// untouched.
type FormPatch struct {
	Date      *time.Time `json:"date"`
	TimeSlot  *string    `json:"timeSlot"`
	EventType *string    `json:"eventType"`
	Guests    *int       `json:"guests"`
	PackageID *string    `json:"packageId"`
	Name      *string    `json:"name"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	Details   *string    `json:"details"`
}

// UpdateForm applies a patch to the session's form. Editing a field
// clears its validation error, and any change invalidates a previous
// quote failure message.
func (s *Service) UpdateForm(ctx context.Context, sessionID string, patch FormPatch) (*models.WizardSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Decision == models.DecisionDepositPaid {
		return nil, stateErrorf("booking is already confirmed and can no longer be edited")
	}

	form := &session.FormData

	if patch.Date != nil {
		form.Date = patch.Date
	}
	if patch.TimeSlot != nil {
		if !models.ValidTimeSlot(*patch.TimeSlot) {
			return nil, &ValidationError{Fields: map[string]string{"timeSlot": "Please choose one of the available time slots."}}
		}
		form.TimeSlot = *patch.TimeSlot
	}
	if patch.EventType != nil {
		form.EventType = *patch.EventType
	}
	if patch.Guests != nil {
		if *patch.Guests < 0 {
			return nil, &ValidationError{Fields: map[string]string{"guests": "Guest count cannot be negative."}}
		}
		form.Guests = *patch.Guests
	}
	if patch.PackageID != nil {
		pkg, ok := models.PackageByID(*patch.PackageID)
		if !ok {
			return nil, &ValidationError{Fields: map[string]string{"packageId": "Unknown package."}}
		}
		form.SelectedPackage = pkg
	}
	if patch.Name != nil {
		form.Name = *patch.Name
		delete(session.FieldErrors, "name")
	}
	if patch.Email != nil {
		form.Email = *patch.Email
		delete(session.FieldErrors, "email")
	}
	if patch.Phone != nil {
		form.Phone = *patch.Phone
		delete(session.FieldErrors, "phone")
	}
	if patch.Details != nil {
		form.Details = *patch.Details
	}

	session.QuoteError = ""

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Next advances the wizard one step, enforcing the step guards. The
// contact step only advances through SubmitQuote.
func (s *Service) Next(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	form := session.FormData
	switch session.Step {
	case models.StepDateTime:
		if form.Date == nil || form.TimeSlot == "" {
			return nil, stateErrorf("select a date and time slot before continuing")
		}
		session.Step = models.StepDetails
	case models.StepDetails:
		if form.EventType == "" || form.Guests <= 0 || form.SelectedPackage == nil {
			return nil, stateErrorf("select an event type, guest count, and package before continuing")
		}
		session.Step = models.StepContact
	case models.StepContact:
		return nil, stateErrorf("submit your details to receive a quote")
	default:
		return nil, stateErrorf("cannot advance past the confirmation step")
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back returns to the previous step. Form data entered on later steps is
// preserved. The confirmation step cannot be left backwards.
func (s *Service) Back(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepDetails:
		session.Step = models.StepDateTime
	case models.StepContact:
		session.Step = models.StepDetails
	default:
		return nil, stateErrorf("cannot go back from the %s step", session.Step)
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitQuote validates the contact fields and requests a quote. On
// success the wizard moves to the confirmation step awaiting a decision;
// on failure it stays on the contact step with the form intact and a
// retryable error message.
func (s *Service) SubmitQuote(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepContact {
		return nil, stateErrorf("a quote can only be requested from the contact step")
	}
	if session.QuoteInFlight {
		return nil, stateErrorf("a quote request is already in progress")
	}

	form := session.FormData
	if fieldErrs := ValidateContact(form.Name, form.Email, form.Phone); len(fieldErrs) > 0 {
		session.FieldErrors = fieldErrs
		if err := s.store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, &ValidationError{Fields: fieldErrs}
	}

	session.FieldErrors = make(map[string]string)
	session.QuoteInFlight = true
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	result, quoteErr := s.pricer.GenerateQuote(ctx, form)

	session.QuoteInFlight = false
	if quoteErr != nil {
		session.QuoteError = customerMessage(quoteErr)
		if err := s.store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, quoteErr
	}

	session.Quote = result
	session.QuoteError = ""
	session.Step = models.StepConfirmation
	session.Decision = models.DecisionAwaiting
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("quote generated",
		zap.String("sessionId", session.SessionID),
		zap.Float64("total", result.Quote.TotalEstimate))
	return session, nil
}

// GetInspiration fetches a theming plan for the event described on the
// details step. The plan is advisory and never gates progress.
func (s *Service) GetInspiration(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.FormData.EventType == "" {
		return nil, stateErrorf("choose an event type before requesting inspiration")
	}

	plan, genErr := s.stylist.GenerateInspiration(ctx, session.FormData.EventType, session.FormData.Details)
	if genErr != nil {
		return session, genErr
	}

	session.Inspiration = plan
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SendInquiry emails the quoted inquiry to venue staff and a
// confirmation to the customer, then records the lead.
func (s *Service) SendInquiry(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmation || session.Quote == nil {
		return nil, stateErrorf("an inquiry can only be sent after a quote is generated")
	}
	if session.Decision != models.DecisionAwaiting {
		return nil, stateErrorf("an inquiry was already sent for this booking")
	}
	if session.EmailInFlight {
		return nil, stateErrorf("an inquiry is already being sent")
	}
	if !s.mail.Available() {
		return nil, ErrMailUnavailable
	}

	session.EmailInFlight = true
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	result, sendErr := s.mail.SendBookingInquiry(ctx, session.FormData, *session.Quote)

	session.EmailInFlight = false
	if sendErr != nil {
		if err := s.store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, sendErr
	}

	session.Decision = models.DecisionEmailSent
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	if s.leads != nil {
		record := models.InquiryRecord{
			ID:                    uuid.New().String(),
			FormData:              session.FormData,
			Quote:                 *session.Quote,
			InquiryMessageID:      result.InquiryMessageID,
			ConfirmationMessageID: result.ConfirmationMessageID,
			SentAt:                result.Timestamp,
			CreatedAt:             time.Now().UTC(),
		}
		if err := s.leads.Insert(ctx, record); err != nil {
			s.logger.Error("failed to persist inquiry lead", zap.String("sessionId", sessionID), zap.Error(err))
		}
	}

	return session, nil
}

// Reopen returns an email-sent confirmation to the awaiting state so
// the customer can change their mind. Paid bookings cannot reopen.
func (s *Service) Reopen(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmation || session.Decision != models.DecisionEmailSent {
		return nil, stateErrorf("only a sent inquiry can be reopened")
	}

	session.Decision = models.DecisionAwaiting
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func customerMessage(err error) string {
	var qe *quote.Error
	if errors.As(err, &qe) {
		return qe.Message
	}
	return "Something went wrong. Please try again."
}
