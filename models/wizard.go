package models

import "time"

// WizardStep identifies the current step of the booking wizard.
type WizardStep int

const (
	StepDateTime WizardStep = iota + 1
	StepDetails
	StepContact
	StepConfirmation
)

func (s WizardStep) String() string {
	switch s {
	case StepDateTime:
		return "dateTime"
	case StepDetails:
		return "details"
	case StepContact:
		return "contact"
	case StepConfirmation:
		return "confirmation"
	}
	return "unknown"
}

// Decision is the confirmation-step sub-state. The wizard starts a
// confirmation in DecisionAwaiting; sending the inquiry or paying the
// deposit moves it forward. Email-sent can return to awaiting, a paid
// deposit is terminal.
type Decision string

const (
	DecisionAwaiting    Decision = "awaiting"
	DecisionEmailSent   Decision = "emailSent"
	DecisionDepositPaid Decision = "depositPaid"
)

// WizardSession holds one customer's progress through the booking wizard.
// FieldErrors and QuoteError live outside FormData so a failed submission
// never corrupts the form itself.
type WizardSession struct {
	SessionID   string            `json:"sessionId"`
	Step        WizardStep        `json:"step"`
	FormData    BookingFormData   `json:"formData"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	QuoteError  string            `json:"quoteError,omitempty"`

	Quote       *BookingQuote     `json:"quote,omitempty"`
	Inspiration *EventInspiration `json:"inspiration,omitempty"`

	QuoteInFlight bool `json:"quoteInFlight"`
	EmailInFlight bool `json:"emailInFlight"`

	Decision Decision     `json:"decision,omitempty"`
	Pass     *DigitalPass `json:"pass,omitempty"`
	Invoice  *Invoice     `json:"invoice,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// DigitalPass is the check-in pass issued after a paid deposit.
type DigitalPass struct {
	BookingID string `json:"bookingId"`
	Name      string `json:"name"`
	Event     string `json:"event"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Guests    int    `json:"guests"`
	Package   string `json:"package"`
	QRCode    string `json:"qrCode"` // data:image/png;base64 payload
}

// Invoice records a deposit payment.
type Invoice struct {
	InvoiceID string    `json:"invoiceId"`
	PaymentID string    `json:"paymentId,omitempty"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
