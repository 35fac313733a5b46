package wizard

import (
	"context"
	"fmt"
	"time"

	"seven18/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// The deposit is half the quoted total.
const depositFraction = 0.5

// PaymentHandler collects a deposit payment and returns the resulting
// invoice in pending state.
type PaymentHandler interface {
	ProcessDeposit(ctx context.Context, amount float64) (*models.Invoice, error)
}

// SimulatedPaymentHandler fabricates a successful payment after a short
// processing delay. Used whenever no Stripe key is configured.
type SimulatedPaymentHandler struct {
	logger *zap.Logger
}

func NewSimulatedPaymentHandler(logger *zap.Logger) *SimulatedPaymentHandler {
	return &SimulatedPaymentHandler{logger: logger}
}

func (h *SimulatedPaymentHandler) ProcessDeposit(ctx context.Context, amount float64) (*models.Invoice, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(1500 * time.Millisecond):
	}

	now := time.Now().UTC()
	invoice := &models.Invoice{
		InvoiceID: "inv_" + uuid.New().String(),
		PaymentID: "pi_" + uuid.New().String(),
		Amount:    amount,
		Currency:  "usd",
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}
	h.logger.Info("simulated deposit processed",
		zap.String("invoiceId", invoice.InvoiceID),
		zap.Float64("amount", amount))
	return invoice, nil
}

// StripePaymentHandler creates a real PaymentIntent for the deposit.
type StripePaymentHandler struct {
	logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) ProcessDeposit(ctx context.Context, amount float64) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Description: stripe.String("Seven18BK event booking deposit"),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	now := time.Now().UTC()
	invoice := &models.Invoice{
		InvoiceID: "inv_" + uuid.New().String(),
		PaymentID: pi.ID,
		Amount:    amount,
		Currency:  "usd",
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}
	h.logger.Info("stripe deposit intent created",
		zap.String("paymentIntentId", pi.ID),
		zap.Float64("amount", amount))
	return invoice, nil
}

// Deposit collects the 50% deposit for a quoted booking and stores the
// pending invoice on the session.
func (s *Service) Deposit(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmation || session.Quote == nil {
		return nil, stateErrorf("a deposit can only be paid after a quote is generated")
	}
	if session.Decision == models.DecisionDepositPaid {
		return nil, stateErrorf("the deposit was already paid")
	}

	amount := round2(session.Quote.Quote.TotalEstimate * depositFraction)
	invoice, payErr := s.payments.ProcessDeposit(ctx, amount)
	if payErr != nil {
		return session, payErr
	}

	session.Invoice = invoice
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmDeposit marks the pending invoice paid, issues the digital
// pass, and locks the booking. Paid is terminal.
func (s *Service) ConfirmDeposit(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Invoice == nil {
		return nil, stateErrorf("no deposit has been initiated for this booking")
	}
	if session.Decision == models.DecisionDepositPaid {
		return nil, stateErrorf("the deposit was already paid")
	}

	pass, passErr := IssuePass(session.FormData)
	if passErr != nil {
		return session, passErr
	}

	session.Invoice.Status = "paid"
	session.Invoice.UpdatedAt = time.Now().UTC()
	session.Decision = models.DecisionDepositPaid
	session.Pass = pass
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("deposit confirmed",
		zap.String("sessionId", session.SessionID),
		zap.String("bookingId", pass.BookingID))
	return session, nil
}

func round2(x float64) float64 {
	return float64(int64(x*100+0.5)) / 100
}
