package quote

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"seven18/models"
)

var priceRe = regexp.MustCompile(`\$([0-9]+(?:\.[0-9]+)?)`)

// StaticPricer prices a booking locally from the package catalog. It
// applies the same policy the generative pricer is prompted with: parse
// the package price, multiply per-guest prices by the guest count, and
// add a 20% surcharge on Saturdays and Sundays.
type StaticPricer struct{}

func (StaticPricer) GenerateQuote(_ context.Context, form models.BookingFormData) (*models.BookingQuote, error) {
	if form.SelectedPackage == nil {
		return nil, newError(CodeMalformedResponse, msgQuoteFailed, fmt.Errorf("no package selected"))
	}
	pkg := form.SelectedPackage

	m := priceRe.FindStringSubmatch(pkg.Price)
	if m == nil {
		return nil, newError(CodeMalformedResponse, msgQuoteFailed, fmt.Errorf("unparseable package price %q", pkg.Price))
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, newError(CodeMalformedResponse, msgQuoteFailed, err)
	}

	base := amount
	if strings.Contains(strings.ToLower(pkg.Price), "guest") {
		base = amount * float64(form.Guests)
	}

	var surcharge float64
	if form.IsWeekend() {
		surcharge = round2(base * 0.20)
	}
	total := round2(base + surcharge)

	summary := fmt.Sprintf(
		"Thanks, %s! We have your %s for %d guests on %s at Seven18BK. Here is your estimate for %s.",
		form.Name, form.EventType, form.Guests, form.DateLong(), pkg.Name,
	)

	return &models.BookingQuote{
		Summary: summary,
		Quote: models.QuoteBreakdown{
			PackageName:      pkg.Name,
			GuestCount:       form.Guests,
			BaseCost:         round2(base),
			WeekendSurcharge: surcharge,
			TotalEstimate:    total,
			Notes: []string{
				"Final price may vary based on special requests.",
				"Taxes and gratuity are not yet included.",
			},
		},
		NextSteps: []string{
			"1. Review the quote.",
			"2. A team member will email you within 24 hours to confirm availability and answer questions.",
			"3. A deposit will be required to secure your date.",
		},
	}, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
