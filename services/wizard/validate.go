package wizard

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateContact checks the contact-step fields and returns a map of
// field name to customer-facing message. An empty map means valid.
func ValidateContact(name, email, phone string) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(name) == "" {
		errs["name"] = "Full Name is required."
	}

	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email Address is required."
	} else if !emailRe.MatchString(email) {
		errs["email"] = "Please enter a valid email address."
	}

	if strings.TrimSpace(phone) == "" {
		errs["phone"] = "Phone Number is required."
	} else if digitCount(phone) < 10 {
		errs["phone"] = "Please enter a valid phone number."
	}

	return errs
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
