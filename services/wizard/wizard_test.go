package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"seven18/models"
	"seven18/services/mailer"
	"seven18/services/quote"

	"go.uber.org/zap"
)

// memStore keeps sessions in memory, round-tripping through JSON the
// way the Redis store does.
type memStore struct {
	sessions map[string]string
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]string)}
}

func (s *memStore) Get(_ context.Context, sessionID string) (*models.WizardSession, error) {
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *memStore) Save(_ context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.sessions[session.SessionID] = string(data)
	return nil
}

func (s *memStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type fakePricer struct {
	quote *models.BookingQuote
	err   error
	calls int
}

func (f *fakePricer) GenerateQuote(context.Context, models.BookingFormData) (*models.BookingQuote, error) {
	f.calls++
	return f.quote, f.err
}

type fakeStylist struct {
	plan *models.EventInspiration
	err  error
}

func (f *fakeStylist) GenerateInspiration(context.Context, string, string) (*models.EventInspiration, error) {
	return f.plan, f.err
}

type fakeSender struct {
	available bool
	err       error
	sent      int
}

func (f *fakeSender) SendBookingInquiry(context.Context, models.BookingFormData, models.BookingQuote) (*mailer.DispatchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent++
	return &mailer.DispatchResult{
		InquiryMessageID:      "<inq-1@test>",
		ConfirmationMessageID: "<conf-1@test>",
		Timestamp:             time.Now().UTC(),
	}, nil
}

func (f *fakeSender) Available() bool { return f.available }

type fakePayments struct{}

func (fakePayments) ProcessDeposit(_ context.Context, amount float64) (*models.Invoice, error) {
	now := time.Now().UTC()
	return &models.Invoice{
		InvoiceID: "inv_test",
		PaymentID: "pi_test",
		Amount:    amount,
		Currency:  "usd",
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func testQuote() *models.BookingQuote {
	return &models.BookingQuote{
		Summary: "Thanks, Jasmine!",
		Quote: models.QuoteBreakdown{
			PackageName:      "The Gala",
			GuestCount:       50,
			BaseCost:         3500,
			WeekendSurcharge: 700,
			TotalEstimate:    4200,
			Notes:            []string{"Taxes and gratuity are not yet included."},
		},
		NextSteps: []string{"1. Review the quote."},
	}
}

func newTestService(pricer quote.Pricer, stylist quote.Stylist, mail InquirySender) (*Service, *memStore) {
	store := newMemStore()
	svc := NewService(store, pricer, stylist, mail, fakePayments{}, nil, zap.NewNop())
	return svc, store
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// advance a fresh session to the contact step with valid selections.
func sessionAtContact(t *testing.T, svc *Service) string {
	t.Helper()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	id := session.SessionID

	date := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC) // Saturday
	if _, err := svc.UpdateForm(ctx, id, FormPatch{
		Date:     &date,
		TimeSlot: strPtr(models.SlotEvening),
	}); err != nil {
		t.Fatalf("UpdateForm step 1: %v", err)
	}
	if _, err := svc.Next(ctx, id); err != nil {
		t.Fatalf("Next 1->2: %v", err)
	}
	if _, err := svc.UpdateForm(ctx, id, FormPatch{
		EventType: strPtr("Wedding Reception"),
		Guests:    intPtr(50),
		PackageID: strPtr("gala"),
	}); err != nil {
		t.Fatalf("UpdateForm step 2: %v", err)
	}
	if _, err := svc.Next(ctx, id); err != nil {
		t.Fatalf("Next 2->3: %v", err)
	}
	if _, err := svc.UpdateForm(ctx, id, FormPatch{
		Name:  strPtr("Jasmine Carter"),
		Email: strPtr("jasmine@example.com"),
		Phone: strPtr("7185550142"),
	}); err != nil {
		t.Fatalf("UpdateForm step 3: %v", err)
	}
	return id
}

func TestStartSessionDefaults(t *testing.T) {
	svc, _ := newTestService(&fakePricer{}, &fakeStylist{}, &fakeSender{available: true})

	session, err := svc.StartSession(context.Background())
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if session.Step != models.StepDateTime {
		t.Errorf("step = %v, want %v", session.Step, models.StepDateTime)
	}
	if session.FormData.EventType != "Birthday Party" {
		t.Errorf("eventType = %q, want Birthday Party", session.FormData.EventType)
	}
	if session.FormData.Guests != 25 {
		t.Errorf("guests = %d, want 25", session.FormData.Guests)
	}
	if session.FormData.SelectedPackage == nil || session.FormData.SelectedPackage.ID != "social" {
		t.Errorf("selected package = %+v, want social", session.FormData.SelectedPackage)
	}
}

func TestNextRequiresDateAndSlot(t *testing.T) {
	svc, _ := newTestService(&fakePricer{}, &fakeStylist{}, &fakeSender{available: true})
	ctx := context.Background()

	session, _ := svc.StartSession(ctx)
	id := session.SessionID

	// Slot alone is not enough without a date.
	if _, err := svc.UpdateForm(ctx, id, FormPatch{TimeSlot: strPtr(models.SlotMorning)}); err != nil {
		t.Fatalf("UpdateForm: %v", err)
	}

	_, err := svc.Next(ctx, id)
	var se *StateError
	if !errors.As(err, &se) {
		t.Fatalf("Next without date: got %v, want StateError", err)
	}

	got, _ := svc.GetSession(ctx, id)
	if got.Step != models.StepDateTime {
		t.Errorf("step after rejected Next = %v, want %v", got.Step, models.StepDateTime)
	}
}

func TestNextRejectsZeroGuests(t *testing.T) {
	svc, _ := newTestService(&fakePricer{}, &fakeStylist{}, &fakeSender{available: true})
	ctx := context.Background()

	session, _ := svc.StartSession(ctx)
	id := session.SessionID

	date := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	svc.UpdateForm(ctx, id, FormPatch{Date: &date, TimeSlot: strPtr(models.SlotMorning)})
	svc.Next(ctx, id)
	svc.UpdateForm(ctx, id, FormPatch{Guests: intPtr(0)})

	_, err := svc.Next(ctx, id)
	var se *StateError
	if !errors.As(err, &se) {
		t.Fatalf("Next with 0 guests: got %v, want StateError", err)
	}
}

func TestBackPreservesDownstreamData(t *testing.T) {
	svc, _ := newTestService(&fakePricer{}, &fakeStylist{}, &fakeSender{available: true})
	ctx := context.Background()
	id := sessionAtContact(t, svc)

	if _, err := svc.Back(ctx, id); err != nil {
		t.Fatalf("Back 3->2: %v", err)
	}
	session, _ := svc.GetSession(ctx, id)
	if session.Step != models.StepDetails {
		t.Fatalf("step = %v, want %v", session.Step, models.StepDetails)
	}
	if session.FormData.Name != "Jasmine Carter" || session.FormData.Email != "jasmine@example.com" {
		t.Errorf("contact data lost after Back: %+v", session.FormData)
	}

	if _, err := svc.Next(ctx, id); err != nil {
		t.Fatalf("Next 2->3 after Back: %v", err)
	}
}

func TestSubmitQuoteValidationFailure(t *testing.T) {
	pricer := &fakePricer{quote: testQuote()}
	svc, _ := newTestService(pricer, &fakeStylist{}, &fakeSender{available: true})
	ctx := context.Background()
	id := sessionAtContact(t, svc)

	svc.UpdateForm(ctx, id, FormPatch{Email: strPtr("not-an-email")})

	session, err := svc.SubmitQuote(ctx, id)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("SubmitQuote: got %v, want ValidationError", err)
	}
	if ve.Fields["email"] != "Please enter a valid email address." {
		t.Errorf("email error = %q", ve.Fields["email"])
	}
	if session.Step != models.StepContact {
		t.Errorf("step = %v, want %v", session.Step, models.StepContact)
	}
	if pricer.calls != 0 {
		t.Errorf("pricer called %d times despite invalid form", pricer.calls)
	}
}

func TestSubmitQuoteUpstreamFailureStaysOnContact(t *testing.T) {
	pricer := &fakePricer{err: &quote.Error{
		Code:    quote.CodeUpstream,
		Message: "We had trouble generating your quote. Please check your details or try again later.",
	}}
	svc, _ := newTestService(pricer, &fakeStylist{}, &fakeSender{available: true})
	ctx := context.Background()
	id := sessionAtContact(t, svc)

	_, err := svc.SubmitQuote(ctx, id)
	if !quote.IsRetryable(err) {
		t.Fatalf("SubmitQuote error not retryable: %v", err)
	}

	session, _ := svc.GetSession(ctx, id)
	if session.Step != models.StepContact {
		t.Errorf("step = %v, want %v", session.Step, models.StepContact)
	}
	if session.Quote != nil {
		t.Errorf("quote set despite failure")
	}
	if !strings.Contains(session.QuoteError, "trouble generating your quote") {
		t.Errorf("quoteError = %q", session.QuoteError)
	}
	if session.QuoteInFlight {
		t.Errorf("quoteInFlight still set after failure")
	}
	if session.FormData.Name != "Jasmine Carter" {
		t.Errorf("form data changed by failed quote: %+v", session.FormData)
	}

	// Retry succeeds without re-entering any data.
	pricer.err = nil
	pricer.quote = testQuote()
	session, err = svc.SubmitQuote(ctx, id)
	if err != nil {
		t.Fatalf("SubmitQuote retry: %v", err)
	}
	if session.Step != models.StepConfirmation || session.Decision != models.DecisionAwaiting {
		t.Errorf("after retry: step=%v decision=%q", session.Step, session.Decision)
	}
	if session.QuoteError != "" {
		t.Errorf("quoteError not cleared on success: %q", session.QuoteError)
	}
}

func TestSubmitQuoteOnlyFromContactStep(t *testing.T) {
	svc, _ := newTestService(&fakePricer{quote: testQuote()}, &fakeStylist{}, &fakeSender{available: true})
	ctx := context.Background()

	session, _ := svc.StartSession(ctx)
	_, err := svc.SubmitQuote(ctx, session.SessionID)
	var se *StateError
	if !errors.As(err, &se) {
		t.Fatalf("SubmitQuote from step 1: got %v, want StateError", err)
	}
}

func TestInquiryLifecycle(t *testing.T) {
	sender := &fakeSender{available: true}
	svc, _ := newTestService(&fakePricer{quote: testQuote()}, &fakeStylist{}, sender)
	ctx := context.Background()
	id := sessionAtContact(t, svc)

	if _, err := svc.SubmitQuote(ctx, id); err != nil {
		t.Fatalf("SubmitQuote: %v", err)
	}

	session, err := svc.SendInquiry(ctx, id)
	if err != nil {
		t.Fatalf("SendInquiry: %v", err)
	}
	if session.Decision != models.DecisionEmailSent {
		t.Errorf("decision = %q, want %q", session.Decision, models.DecisionEmailSent)
	}
	if sender.sent != 1 {
		t.Errorf("sent = %d, want 1", sender.sent)
	}

	// A second send is rejected.
	if _, err := svc.SendInquiry(ctx, id); err == nil {
		t.Fatalf("second SendInquiry succeeded, want error")
	}

	// Reopen returns to awaiting, then the inquiry can go out again.
	session, err = svc.Reopen(ctx, id)
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	if session.Decision != models.DecisionAwaiting {
		t.Errorf("decision after reopen = %q, want %q", session.Decision, models.DecisionAwaiting)
	}
	if _, err := svc.SendInquiry(ctx, id); err != nil {
		t.Fatalf("SendInquiry after reopen: %v", err)
	}
}

func TestDepositFlow(t *testing.T) {
	svc, _ := newTestService(&fakePricer{quote: testQuote()}, &fakeStylist{}, &fakeSender{available: true})
	ctx := context.Background()
	id := sessionAtContact(t, svc)

	if _, err := svc.SubmitQuote(ctx, id); err != nil {
		t.Fatalf("SubmitQuote: %v", err)
	}

	session, err := svc.Deposit(ctx, id)
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if session.Invoice == nil {
		t.Fatalf("no invoice after Deposit")
	}
	if session.Invoice.Amount != 2100 {
		t.Errorf("deposit amount = %v, want 2100 (half of 4200)", session.Invoice.Amount)
	}
	if session.Invoice.Status != "pending" {
		t.Errorf("invoice status = %q, want pending", session.Invoice.Status)
	}

	session, err = svc.ConfirmDeposit(ctx, id)
	if err != nil {
		t.Fatalf("ConfirmDeposit: %v", err)
	}
	if session.Decision != models.DecisionDepositPaid {
		t.Errorf("decision = %q, want %q", session.Decision, models.DecisionDepositPaid)
	}
	if session.Invoice.Status != "paid" {
		t.Errorf("invoice status = %q, want paid", session.Invoice.Status)
	}
	if session.Pass == nil {
		t.Fatalf("no pass issued")
	}
	if !strings.HasPrefix(session.Pass.BookingID, "S18-") {
		t.Errorf("bookingId = %q, want S18- prefix", session.Pass.BookingID)
	}
	if !strings.HasPrefix(session.Pass.QRCode, "data:image/png;base64,") {
		t.Errorf("qrCode is not a png data url")
	}

	// Paid is terminal.
	if _, err := svc.Reopen(ctx, id); err == nil {
		t.Errorf("Reopen after deposit succeeded, want error")
	}
	if _, err := svc.UpdateForm(ctx, id, FormPatch{Guests: intPtr(10)}); err == nil {
		t.Errorf("UpdateForm after deposit succeeded, want error")
	}
	if _, err := svc.ConfirmDeposit(ctx, id); err == nil {
		t.Errorf("second ConfirmDeposit succeeded, want error")
	}
}

func TestSendInquiryRequiresMailer(t *testing.T) {
	svc, _ := newTestService(&fakePricer{quote: testQuote()}, &fakeStylist{}, &fakeSender{available: false})
	ctx := context.Background()
	id := sessionAtContact(t, svc)

	if _, err := svc.SubmitQuote(ctx, id); err != nil {
		t.Fatalf("SubmitQuote: %v", err)
	}
	if _, err := svc.SendInquiry(ctx, id); !errors.Is(err, ErrMailUnavailable) {
		t.Fatalf("SendInquiry: got %v, want ErrMailUnavailable", err)
	}
}

func TestGetInspiration(t *testing.T) {
	stylist := &fakeStylist{plan: &models.EventInspiration{
		ThemeName:   "Brooklyn Golden Hour",
		PlanningTip: "Book your photographer for sunset.",
		SignatureCocktail: models.SignatureCocktail{
			Name:        "The 718 Spritz",
			Description: "Aperol, prosecco, and a grapefruit twist.",
		},
	}}
	svc, _ := newTestService(&fakePricer{}, stylist, &fakeSender{available: true})
	ctx := context.Background()

	session, _ := svc.StartSession(ctx)
	got, err := svc.GetInspiration(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("GetInspiration: %v", err)
	}
	if got.Inspiration == nil || got.Inspiration.ThemeName != "Brooklyn Golden Hour" {
		t.Errorf("inspiration = %+v", got.Inspiration)
	}

	// A stylist failure leaves the session untouched.
	stylist.plan = nil
	stylist.err = &quote.Error{Code: quote.CodeServiceUnavailable, Message: "AI service is currently unavailable. Please contact us directly for event inspiration."}
	if _, err := svc.GetInspiration(ctx, session.SessionID); !quote.IsServiceUnavailable(err) {
		t.Fatalf("GetInspiration failure: got %v, want service unavailable", err)
	}
	persisted, _ := svc.GetSession(ctx, session.SessionID)
	if persisted.Inspiration == nil {
		t.Errorf("previous inspiration lost after failed refresh")
	}
}

func TestSessionExpiry(t *testing.T) {
	svc, store := newTestService(&fakePricer{}, &fakeStylist{}, &fakeSender{available: true})
	ctx := context.Background()

	session, _ := svc.StartSession(ctx)
	store.Delete(ctx, session.SessionID)

	if _, err := svc.GetSession(ctx, session.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("GetSession after expiry: got %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.Next(ctx, session.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Next after expiry: got %v, want ErrSessionNotFound", err)
	}
}
