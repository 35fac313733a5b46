package quote

import (
	"fmt"
	"strings"

	"seven18/models"
)

// BuildQuotePrompt assembles the quoting instruction sent to the model.
// The pricing rules are stated in the prompt; the model, not this
// service, applies them.
func BuildQuotePrompt(form models.BookingFormData) string {
	dayKind := "weekday"
	if form.IsWeekend() {
		dayKind = "weekend"
	}

	date := form.DateLong()
	if date == "" {
		date = "(not specified)"
	}

	details := form.Details
	if details == "" {
		details = "None"
	}

	var pkgName, pkgPrice string
	if form.SelectedPackage != nil {
		pkgName = form.SelectedPackage.Name
		pkgPrice = form.SelectedPackage.Price
	}

	var b strings.Builder
	b.WriteString("You are an expert booking and quoting assistant for 'Seven18BK', a stylish event venue in Brooklyn. ")
	b.WriteString("A customer is inquiring about renting the venue. Your task is to generate a detailed quote and a summary based on their selections.\n\n")

	b.WriteString("Customer's Data:\n")
	fmt.Fprintf(&b, "- Name: %s\n", form.Name)
	fmt.Fprintf(&b, "- Email: %s\n", form.Email)
	fmt.Fprintf(&b, "- Phone: %s\n", form.Phone)
	fmt.Fprintf(&b, "- Event Type: %s\n", form.EventType)
	fmt.Fprintf(&b, "- Number of Guests: %d\n", form.Guests)
	fmt.Fprintf(&b, "- Preferred Date: %s\n", date)
	fmt.Fprintf(&b, "- Preferred Time Slot: %s\n", form.TimeSlot)
	fmt.Fprintf(&b, "- Selected Package: %s (%s)\n", pkgName, pkgPrice)
	fmt.Fprintf(&b, "- Additional Details: %s\n\n", details)

	b.WriteString("Pricing Rules:\n")
	fmt.Fprintf(&b, "1. The price for the package is: %q. Parse this to get the base cost. If it's per guest, multiply by the number of guests. If it's a flat fee, use that as the base.\n", pkgPrice)
	fmt.Fprintf(&b, "2. Add a 20%% \"Weekend Surcharge\" to the base cost if the selected date is a Saturday or Sunday. The provided date is a %s.\n", dayKind)
	b.WriteString("3. The total estimate is the base cost plus any surcharges.\n")
	b.WriteString("4. The quote notes should always mention that the final price may vary based on special requests and that taxes and gratuity are not yet included.\n\n")

	b.WriteString("Tasks:\n")
	b.WriteString("1. Generate a summary: write a friendly, personalized confirmation summary. Address the customer by name and confirm the key details of their inquiry (event type, date, guest count).\n")
	b.WriteString("2. Generate a quote object: calculate the costs based on the rules above and format it precisely into the 'quote' object. Show the surcharge only if it applies.\n")
	b.WriteString("3. Generate next steps: provide a clear, ordered list of 2-3 next steps. For example: \"1. Review the quote.\", \"2. A team member will email you within 24 hours to confirm availability and answer questions.\", \"3. A deposit will be required to secure your date.\"\n\n")

	b.WriteString("Format the entire output as a single JSON object matching the provided schema. Do not include any markdown formatting like ```json. Respond with ONLY the JSON object.\n")

	return b.String()
}

// BuildInspirationPrompt assembles the event-styling instruction.
func BuildInspirationPrompt(eventType, details string) string {
	if details == "" {
		details = "None"
	}

	var b strings.Builder
	b.WriteString("You are 'Aura', a creative event stylist for the 'Seven18BK' venue. ")
	b.WriteString("A customer is planning an event and needs inspiration. Based on their event type and details, generate a creative \"Inspiration Plan\".\n\n")

	b.WriteString("Event Details:\n")
	fmt.Fprintf(&b, "- Event Type: %q\n", eventType)
	fmt.Fprintf(&b, "- Additional Details from user: %q\n\n", details)

	b.WriteString("Your Task:\n")
	b.WriteString("Generate a concise and stylish Inspiration Plan. The tone should be inspiring and chic.\n")
	b.WriteString("- themeName: a catchy theme name that reflects the event type and vibe.\n")
	b.WriteString("- planningTip: a crucial, concise planning tip for this type of event. This should be a single, impactful sentence.\n")
	b.WriteString("- colorPalette: an array of exactly 4 hex color codes that match the vibe.\n")
	b.WriteString("- decorIdeas: an array of 3-4 brief, evocative decor ideas.\n")
	b.WriteString("- musicSuggestions: an array of 2-3 music genres or artist suggestions.\n")
	b.WriteString("- signatureCocktail: an enticing cocktail object that fits the event theme.\n\n")

	b.WriteString("Format the entire output as a single JSON object matching the provided schema. Do not include any markdown. Respond with ONLY the JSON object.\n")

	return b.String()
}
