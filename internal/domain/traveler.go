package domain

import "fmt"

// Traveler is the mutable booking-side form state for one passenger.
// N blank records are created when an offer with TotalTravelers=N is selected,
// filled in by form input, serialized into the booking payload, and discarded
// after a successful booking.
type Traveler struct {
	// FirstName is the traveler's given name
	FirstName string `json:"firstName"`

	// LastName is the traveler's family name
	LastName string `json:"lastName"`

	// Gender is the traveler's gender as expected upstream (MALE, FEMALE)
	Gender string `json:"gender"`

	// Email is the contact email address
	Email string `json:"email"`

	// DateOfBirth is the traveler's birth date in YYYY-MM-DD format
	DateOfBirth string `json:"dateOfBirth"`

	// Phone is the traveler's contact phone
	Phone Phone `json:"phone"`

	// Document is the traveler's identity document
	Document Document `json:"document"`
}

// Phone is a traveler's contact phone number.
type Phone struct {
	// CountryCallingCode is the dialing prefix without the plus sign (e.g., "44")
	CountryCallingCode string `json:"countryCallingCode"`

	// Number is the subscriber number
	Number string `json:"number"`
}

// Document is a traveler's identity document record.
type Document struct {
	// Type is the document type (e.g., "PASSPORT")
	Type string `json:"documentType"`

	// Number is the document number
	Number string `json:"number"`

	// ExpiryDate is the document expiry in YYYY-MM-DD format
	ExpiryDate string `json:"expiryDate"`

	// IssuanceCountry is the two-letter country code of the issuing authority
	IssuanceCountry string `json:"issuanceCountry"`

	// Nationality is the traveler's nationality country code
	Nationality string `json:"nationality,omitempty"`
}

// NewTravelers creates n blank traveler records for the booking form.
// A non-positive n yields an empty slice.
func NewTravelers(n int) []Traveler {
	if n < 0 {
		n = 0
	}
	return make([]Traveler, n)
}

// Validate checks that every field required for booking submission is populated.
// Returns a wrapped ErrIncompleteTraveler naming the first missing field, so
// the caller can block submission with an actionable message.
func (t *Traveler) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"firstName", t.FirstName},
		{"lastName", t.LastName},
		{"gender", t.Gender},
		{"email", t.Email},
		{"dateOfBirth", t.DateOfBirth},
		{"phone.countryCallingCode", t.Phone.CountryCallingCode},
		{"phone.number", t.Phone.Number},
		{"document.documentType", t.Document.Type},
		{"document.number", t.Document.Number},
		{"document.expiryDate", t.Document.ExpiryDate},
		{"document.issuanceCountry", t.Document.IssuanceCountry},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is required", ErrIncompleteTraveler, r.field)
		}
	}
	return nil
}

// ValidateTravelers validates every traveler in order.
// The first incomplete record fails the whole set, identified by position.
func ValidateTravelers(travelers []Traveler) error {
	if len(travelers) == 0 {
		return fmt.Errorf("%w: at least one traveler is required", ErrIncompleteTraveler)
	}
	for i := range travelers {
		if err := travelers[i].Validate(); err != nil {
			return fmt.Errorf("traveler %d: %w", i+1, err)
		}
	}
	return nil
}
