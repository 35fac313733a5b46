package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"seven18/models"
)

var inquiryHTMLTmpl = template.Must(template.New("inquiry").Parse(`<h2>New Event Inquiry</h2>
<p><strong>Name:</strong> {{.Form.Name}}<br>
<strong>Email:</strong> {{.Form.Email}}<br>
<strong>Phone:</strong> {{.Form.Phone}}</p>
<h3>Event</h3>
<p><strong>Type:</strong> {{.Form.EventType}}<br>
<strong>Date:</strong> {{.DateLong}}<br>
<strong>Time Slot:</strong> {{.Form.TimeSlot}}<br>
<strong>Guests:</strong> {{.Form.Guests}}<br>
<strong>Package:</strong> {{.Quote.Quote.PackageName}}</p>
<h3>Quote</h3>
<p><strong>Base Cost:</strong> ${{printf "%.2f" .Quote.Quote.BaseCost}}<br>
{{if gt .Quote.Quote.WeekendSurcharge 0.0}}<strong>Weekend Surcharge:</strong> ${{printf "%.2f" .Quote.Quote.WeekendSurcharge}}<br>
{{end}}<strong>Total Estimate:</strong> ${{printf "%.2f" .Quote.Quote.TotalEstimate}}</p>
{{if .Form.Details}}<h3>Additional Details</h3>
<p>{{.Form.Details}}</p>
{{end}}`))

var confirmationHTMLTmpl = template.Must(template.New("confirmation").Parse(`<h2>Thank you, {{.Form.Name}}!</h2>
<p>We received your inquiry for a <strong>{{.Form.EventType}}</strong> on <strong>{{.DateLong}}</strong> ({{.Form.TimeSlot}}) for {{.Form.Guests}} guests.</p>
<p><strong>Package:</strong> {{.Quote.Quote.PackageName}}<br>
<strong>Estimated Total:</strong> ${{printf "%.2f" .Quote.Quote.TotalEstimate}}</p>
<p>A member of our team will email you within 24 hours to confirm availability and answer any questions.</p>
<p>&mdash; The Seven18BK Team<br>Brooklyn, NY</p>`))

type emailData struct {
	Form     models.BookingFormData
	Quote    models.BookingQuote
	DateLong string
}

// ComposeInquiry builds the staff-facing inquiry email. Reply-To is set
// to the customer so staff can answer directly.
func ComposeInquiry(from, to string, form models.BookingFormData, quote models.BookingQuote) (Message, error) {
	data := emailData{Form: form, Quote: quote, DateLong: form.DateLong()}

	var html bytes.Buffer
	if err := inquiryHTMLTmpl.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("render inquiry email: %w", err)
	}

	var text strings.Builder
	text.WriteString("New Event Inquiry\n\n")
	fmt.Fprintf(&text, "Name: %s\nEmail: %s\nPhone: %s\n\n", form.Name, form.Email, form.Phone)
	fmt.Fprintf(&text, "Event Type: %s\nDate: %s\nTime Slot: %s\nGuests: %d\nPackage: %s\n\n",
		form.EventType, data.DateLong, form.TimeSlot, form.Guests, quote.Quote.PackageName)
	fmt.Fprintf(&text, "Base Cost: $%.2f\n", quote.Quote.BaseCost)
	if quote.Quote.WeekendSurcharge > 0 {
		fmt.Fprintf(&text, "Weekend Surcharge: $%.2f\n", quote.Quote.WeekendSurcharge)
	}
	fmt.Fprintf(&text, "Total Estimate: $%.2f\n", quote.Quote.TotalEstimate)
	if form.Details != "" {
		fmt.Fprintf(&text, "\nAdditional Details:\n%s\n", form.Details)
	}

	return Message{
		From:    from,
		To:      to,
		ReplyTo: form.Email,
		Subject: fmt.Sprintf("Event Inquiry - %s on %s", form.EventType, form.DateShort()),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

// ComposeConfirmation builds the customer-facing acknowledgement email.
func ComposeConfirmation(from string, form models.BookingFormData, quote models.BookingQuote) (Message, error) {
	data := emailData{Form: form, Quote: quote, DateLong: form.DateLong()}

	var html bytes.Buffer
	if err := confirmationHTMLTmpl.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("render confirmation email: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Thank you, %s!\n\n", form.Name)
	fmt.Fprintf(&text, "We received your inquiry for a %s on %s (%s) for %d guests.\n\n",
		form.EventType, data.DateLong, form.TimeSlot, form.Guests)
	fmt.Fprintf(&text, "Package: %s\nEstimated Total: $%.2f\n\n",
		quote.Quote.PackageName, quote.Quote.TotalEstimate)
	text.WriteString("A member of our team will email you within 24 hours to confirm availability and answer any questions.\n\n")
	text.WriteString("- The Seven18BK Team\nBrooklyn, NY\n")

	return Message{
		From:    from,
		To:      form.Email,
		Subject: "Thank you for your inquiry - Seven18BK Event Booking",
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
