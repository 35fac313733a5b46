package models

import "time"

// VenuePackage describes one of the fixed rental packages.
type VenuePackage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
}

// VenuePackages is the fixed package catalog.
var VenuePackages = []VenuePackage{
	{
		ID:          "social",
		Name:        "The Social",
		Price:       "$75 / guest",
		Description: "Perfect for birthdays and casual get-togethers.",
		Features:    []string{"4-Hour Rental", "House Sound System", "Basic Furniture Setup", "Staffing (1 Bartender)"},
	},
	{
		ID:          "gala",
		Name:        "The Gala",
		Price:       "$3500 Flat Fee",
		Description: "An all-inclusive package for major celebrations.",
		Features:    []string{"6-Hour Rental", "Premium Sound & Lighting", "Full Furniture Setup", "Staffing (2 Bartenders, 1 Support)", "Welcome Drinks for Guests"},
	},
	{
		ID:          "corporate",
		Name:        "The Corporate",
		Price:       "$120 / guest",
		Description: "Tailored for professional mixers and company events.",
		Features:    []string{"4-Hour Rental", "A/V Package (Projector & Mic)", "Catering Coordination", "Staffing (1 Bartender, 1 Support)", "Coffee & Water Station"},
	},
}

// PackageByID looks up a package in the catalog.
func PackageByID(id string) (*VenuePackage, bool) {
	for i := range VenuePackages {
		if VenuePackages[i].ID == id {
			return &VenuePackages[i], true
		}
	}
	return nil, false
}

// The three bookable time slots.
const (
	SlotMorning   = "Morning (9am-1pm)"
	SlotAfternoon = "Afternoon (2pm-6pm)"
	SlotEvening   = "Evening (7pm-11pm)"
)

// TimeSlots lists the bookable slots in display order.
var TimeSlots = []string{SlotMorning, SlotAfternoon, SlotEvening}

// ValidTimeSlot reports whether s is one of the fixed slots.
func ValidTimeSlot(s string) bool {
	for _, slot := range TimeSlots {
		if slot == s {
			return true
		}
	}
	return false
}

// EventTypes lists the selectable event types.
var EventTypes = []string{
	"Birthday Party",
	"Corporate Event",
	"Pop-up Mixer",
	"Private Gathering",
	"Wedding Reception",
	"Other",
}

// BookingFormData is the wizard's form state. It is owned by a single
// wizard session and mutated field-by-field as the customer progresses.
type BookingFormData struct {
	// Step 1
	Date     *time.Time `json:"date"`
	TimeSlot string     `json:"timeSlot"`

	// Step 2
	EventType       string        `json:"eventType"`
	Guests          int           `json:"guests"`
	SelectedPackage *VenuePackage `json:"selectedPackage"`

	// Step 3
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Details string `json:"details"`
}

// IsWeekend reports whether the selected date falls on a Saturday or Sunday.
// A nil date is not a weekend.
func (f BookingFormData) IsWeekend() bool {
	if f.Date == nil {
		return false
	}
	wd := f.Date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DateLong formats the selected date the way it appears in prompts and
// emails ("Saturday, July 12, 2025"). Empty when no date is set.
func (f BookingFormData) DateLong() string {
	if f.Date == nil {
		return ""
	}
	return f.Date.Format("Monday, January 2, 2006")
}

// DateShort formats the selected date as M/D/YYYY. Empty when no date is set.
func (f BookingFormData) DateShort() string {
	if f.Date == nil {
		return ""
	}
	return f.Date.Format("1/2/2006")
}
