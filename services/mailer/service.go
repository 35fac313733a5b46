package mailer

import (
	"context"
	"fmt"
	"time"

	"seven18/models"

	"go.uber.org/zap"
)

// Service sends the inquiry email pair: the staff inquiry first, then
// the customer confirmation. The confirmation is only attempted after
// the inquiry succeeds.
type Service struct {
	dispatcher Dispatcher
	from       string
	bookingTo  string
	logger     *zap.Logger
}

func NewService(dispatcher Dispatcher, from, bookingTo string, logger *zap.Logger) *Service {
	return &Service{
		dispatcher: dispatcher,
		from:       from,
		bookingTo:  bookingTo,
		logger:     logger,
	}
}

// Available reports whether the underlying dispatcher can send.
func (s *Service) Available() bool {
	return s.dispatcher.Available()
}

// SendBookingInquiry dispatches the inquiry to venue staff and the
// acknowledgement to the customer.
func (s *Service) SendBookingInquiry(ctx context.Context, form models.BookingFormData, quote models.BookingQuote) (*DispatchResult, error) {
	inquiry, err := ComposeInquiry(s.from, s.bookingTo, form, quote)
	if err != nil {
		return nil, err
	}
	inquiryID, err := s.dispatcher.Send(ctx, inquiry)
	if err != nil {
		return nil, fmt.Errorf("send inquiry email: %w", err)
	}

	confirmation, err := ComposeConfirmation(s.from, form, quote)
	if err != nil {
		return nil, err
	}
	confirmationID, err := s.dispatcher.Send(ctx, confirmation)
	if err != nil {
		// The staff inquiry already went out, so the lead is not lost.
		s.logger.Error("confirmation email failed after inquiry was sent",
			zap.String("to", form.Email), zap.Error(err))
		return nil, fmt.Errorf("send confirmation email: %w", err)
	}

	return &DispatchResult{
		InquiryMessageID:      inquiryID,
		ConfirmationMessageID: confirmationID,
		Timestamp:             time.Now().UTC(),
	}, nil
}
