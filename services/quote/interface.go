package quote

import (
	"context"

	"seven18/models"
)

// Pricer produces a booking quote from the customer's form data.
//
// The default implementation delegates the arithmetic to a generative
// model via a prompt plus response schema, which makes the figures
// non-deterministic by construction. Substituting StaticPricer swaps in
// the documented local pricing policy without touching the wizard.
type Pricer interface {
	GenerateQuote(ctx context.Context, form models.BookingFormData) (*models.BookingQuote, error)
}

// Stylist produces event theming inspiration, independent of pricing.
type Stylist interface {
	GenerateInspiration(ctx context.Context, eventType, details string) (*models.EventInspiration, error)
}
