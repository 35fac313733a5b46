package wizard

import "testing"

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name  string
		inName, email, phone string
		wantFields map[string]string
	}{
		{
			name:   "valid",
			inName: "Jasmine Carter",
			email:  "a@b.com",
			phone:  "1234567890",
			wantFields: map[string]string{},
		},
		{
			name:   "email missing domain dot",
			inName: "Jasmine Carter",
			email:  "a@b",
			phone:  "1234567890",
			wantFields: map[string]string{"email": "Please enter a valid email address."},
		},
		{
			name:   "everything empty",
			inName: "",
			email:  "",
			phone:  "",
			wantFields: map[string]string{
				"name":  "Full Name is required.",
				"email": "Email Address is required.",
				"phone": "Phone Number is required.",
			},
		},
		{
			name:   "phone too short",
			inName: "Jasmine Carter",
			email:  "a@b.com",
			phone:  "123-45",
			wantFields: map[string]string{"phone": "Please enter a valid phone number."},
		},
		{
			name:   "formatted phone with enough digits",
			inName: "Jasmine Carter",
			email:  "a@b.com",
			phone:  "(718) 555-0142",
			wantFields: map[string]string{},
		},
		{
			name:   "email with spaces",
			inName: "Jasmine Carter",
			email:  "a b@c.com",
			phone:  "1234567890",
			wantFields: map[string]string{"email": "Please enter a valid email address."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateContact(tt.inName, tt.email, tt.phone)
			if len(got) != len(tt.wantFields) {
				t.Fatalf("got %d errors %v, want %d %v", len(got), got, len(tt.wantFields), tt.wantFields)
			}
			for field, want := range tt.wantFields {
				if got[field] != want {
					t.Errorf("field %q: got %q, want %q", field, got[field], want)
				}
			}
		})
	}
}
