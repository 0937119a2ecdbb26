package upstream

import (
	"fmt"
	"strconv"

	"github.com/flight-booking/flight-booking-service/internal/domain"
)

// OrderRequest is the outbound booking request body.
type OrderRequest struct {
	// ClientReference correlates the order with this service's records
	ClientReference string `json:"clientReference,omitempty"`

	// FlightOffer is the raw offer being booked, re-derived from the
	// normalized offer's retained pricing payload
	FlightOffer RawOffer `json:"flightOffer"`

	// Travelers holds the traveler records in submission order
	Travelers []OrderTraveler `json:"travelers"`
}

// OrderResponse is the upstream booking confirmation.
type OrderResponse struct {
	OrderID     string          `json:"orderId"`
	Travelers   []OrderTraveler `json:"travelers"`
	FlightOffer RawOffer        `json:"flightOffer"`
}

// OrderTraveler is one traveler in the upstream booking shape.
type OrderTraveler struct {
	ID          string        `json:"id"`
	DateOfBirth string        `json:"dateOfBirth"`
	Gender      string        `json:"gender"`
	Name        OrderName     `json:"name"`
	Contact     OrderContact  `json:"contact"`
	Documents   []OrderDocument `json:"documents"`
}

// OrderName is the traveler name block.
type OrderName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// OrderContact is the traveler contact block.
type OrderContact struct {
	EmailAddress string       `json:"emailAddress"`
	Phones       []OrderPhone `json:"phones"`
}

// OrderPhone is one phone entry nested under the contact block.
type OrderPhone struct {
	DeviceType         string `json:"deviceType"`
	CountryCallingCode string `json:"countryCallingCode"`
	Number             string `json:"number"`
}

// OrderDocument is one identity document nested under a traveler.
type OrderDocument struct {
	DocumentType    string `json:"documentType"`
	Number          string `json:"number"`
	ExpiryDate      string `json:"expiryDate"`
	IssuanceCountry string `json:"issuanceCountry"`
	Nationality     string `json:"nationality,omitempty"`
	Holder          bool   `json:"holder"`
}

// AssembleBooking reshapes validated traveler form records plus the selected
// normalized offer into the outbound booking request body. Every traveler must
// be complete; assembly is refused before any HTTP submission otherwise.
// Traveler ids are 1-based and preserve input order.
func AssembleBooking(travelers []domain.Traveler, offer domain.FlightOffer) (OrderRequest, error) {
	if err := domain.ValidateTravelers(travelers); err != nil {
		return OrderRequest{}, err
	}

	raw, err := DecodeOffer([]byte(offer.PricingAdditionalInfo))
	if err != nil {
		return OrderRequest{}, fmt.Errorf("%w: selected offer has no usable pricing payload: %v",
			domain.ErrInvalidRequest, err)
	}

	req := OrderRequest{
		FlightOffer: raw,
		Travelers:   make([]OrderTraveler, 0, len(travelers)),
	}

	for i, t := range travelers {
		req.Travelers = append(req.Travelers, OrderTraveler{
			ID:          strconv.Itoa(i + 1),
			DateOfBirth: t.DateOfBirth,
			Gender:      t.Gender,
			Name: OrderName{
				FirstName: t.FirstName,
				LastName:  t.LastName,
			},
			Contact: OrderContact{
				EmailAddress: t.Email,
				Phones: []OrderPhone{{
					DeviceType:         "MOBILE",
					CountryCallingCode: t.Phone.CountryCallingCode,
					Number:             t.Phone.Number,
				}},
			},
			Documents: []OrderDocument{{
				DocumentType:    t.Document.Type,
				Number:          t.Document.Number,
				ExpiryDate:      t.Document.ExpiryDate,
				IssuanceCountry: t.Document.IssuanceCountry,
				Nationality:     t.Document.Nationality,
				Holder:          true,
			}},
		})
	}

	return req, nil
}
