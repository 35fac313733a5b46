package models

import "time"

// InquiryRecord is the lead log entry persisted after an inquiry email is
// dispatched to venue staff.
type InquiryRecord struct {
	ID                    string          `bson:"id" json:"id"`
	FormData              BookingFormData `bson:"formData" json:"formData"`
	Quote                 BookingQuote    `bson:"quote" json:"quote"`
	InquiryMessageID      string          `bson:"inquiryMessageId" json:"inquiryMessageId"`
	ConfirmationMessageID string          `bson:"confirmationMessageId" json:"confirmationMessageId"`
	SentAt                time.Time       `bson:"sentAt" json:"sentAt"`
	CreatedAt             time.Time       `bson:"createdAt" json:"createdAt"`
}
