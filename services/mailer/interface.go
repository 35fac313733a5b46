package mailer

import (
	"context"
	"time"
)

// Message is a single outbound email. Text and HTML are alternative
// renderings of the same body.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Dispatcher delivers a single message and returns its message ID.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) (messageID string, err error)
	Available() bool
}

// DispatchResult reports a completed inquiry dispatch: the staff inquiry
// email and the customer confirmation email.
type DispatchResult struct {
	InquiryMessageID      string    `json:"inquiryMessageId"`
	ConfirmationMessageID string    `json:"confirmationMessageId"`
	Timestamp             time.Time `json:"timestamp"`
}
