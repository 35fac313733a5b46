package models

// QuoteBreakdown is the priced portion of a booking quote. All cost fields
// are non-negative and TotalEstimate is expected to equal BaseCost plus
// WeekendSurcharge.
type QuoteBreakdown struct {
	PackageName      string   `json:"packageName"`
	GuestCount       int      `json:"guestCount"`
	BaseCost         float64  `json:"baseCost"`
	WeekendSurcharge float64  `json:"weekendSurcharge"`
	TotalEstimate    float64  `json:"totalEstimate"`
	Notes            []string `json:"notes"`
}

// BookingQuote is the generated price estimate shown on the confirmation
// step. Immutable once produced.
type BookingQuote struct {
	Summary   string         `json:"summary"`
	Quote     QuoteBreakdown `json:"quote"`
	NextSteps []string       `json:"nextSteps"`
}

// SignatureCocktail is part of an inspiration plan.
type SignatureCocktail struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EventInspiration is the advisory theming plan generated for an event:
// exactly 4 color codes, 3-4 decor ideas, 2-3 music suggestions.
type EventInspiration struct {
	ThemeName         string            `json:"themeName"`
	PlanningTip       string            `json:"planningTip"`
	ColorPalette      []string          `json:"colorPalette"`
	DecorIdeas        []string          `json:"decorIdeas"`
	MusicSuggestions  []string          `json:"musicSuggestions"`
	SignatureCocktail SignatureCocktail `json:"signatureCocktail"`
}
