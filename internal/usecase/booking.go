package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/flight-booking/flight-booking-service/internal/adapter/upstream"
	"github.com/flight-booking/flight-booking-service/internal/domain"
	"github.com/flight-booking/flight-booking-service/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-service/internal/store"
)

// BookingUseCase defines the booking-side operations.
type BookingUseCase interface {
	// ConfirmPricing re-prices a selected offer prior to booking and returns
	// the re-normalized offer.
	ConfirmPricing(ctx context.Context, offer domain.FlightOffer) (*domain.FlightOffer, error)

	// Book validates the traveler records, assembles the booking payload,
	// submits it upstream, and persists the confirmation.
	Book(ctx context.Context, travelers []domain.Traveler, offer domain.FlightOffer) (*domain.BookingConfirmation, error)

	// Retrieve returns a stored booking by reference, falling back to the
	// upstream order endpoint when the local store has no copy.
	Retrieve(ctx context.Context, reference string) (*domain.BookingConfirmation, error)
}

// bookingUseCase implements BookingUseCase.
type bookingUseCase struct {
	client upstream.Client
	store  store.BookingStore
	clock  timeutil.Clock
	log    zerolog.Logger
}

// NewBookingUseCase creates a BookingUseCase.
func NewBookingUseCase(client upstream.Client, bookings store.BookingStore, clock timeutil.Clock, log zerolog.Logger) BookingUseCase {
	return &bookingUseCase{
		client: client,
		store:  bookings,
		clock:  clock,
		log:    log,
	}
}

// ConfirmPricing implements BookingUseCase.ConfirmPricing.
func (uc *bookingUseCase) ConfirmPricing(ctx context.Context, offer domain.FlightOffer) (*domain.FlightOffer, error) {
	raw, err := upstream.DecodeOffer([]byte(offer.PricingAdditionalInfo))
	if err != nil {
		return nil, err
	}

	confirmed, err := uc.client.ConfirmPricing(ctx, raw)
	if err != nil {
		return nil, err
	}

	normalized := upstream.Normalize(confirmed)
	return &normalized, nil
}

// Book implements BookingUseCase.Book.
// Validation failures refuse assembly before any HTTP submission. Submission
// failures are returned to the caller for a user-initiated retry; no automatic
// retry is performed on booking creation.
func (uc *bookingUseCase) Book(ctx context.Context, travelers []domain.Traveler, offer domain.FlightOffer) (*domain.BookingConfirmation, error) {
	req, err := upstream.AssembleBooking(travelers, offer)
	if err != nil {
		return nil, err
	}
	req.ClientReference = uuid.New().String()

	resp, err := uc.client.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	confirmation := domain.BookingConfirmation{
		Reference:       resp.OrderID,
		ClientReference: req.ClientReference,
		Travelers:       travelers,
		Offer:           offer,
		CreatedAt:       uc.clock.Now().UTC().Format(time.RFC3339),
	}

	// The order exists upstream at this point; a failed local save must not
	// fail the booking, only its later local retrieval.
	if err := uc.store.Save(ctx, confirmation); err != nil {
		uc.log.Error().Err(err).Str("reference", confirmation.Reference).Msg("Failed to persist booking confirmation")
	}

	uc.log.Info().
		Str("reference", confirmation.Reference).
		Int("travelers", len(travelers)).
		Msg("Booking created")

	return &confirmation, nil
}

// Retrieve implements BookingUseCase.Retrieve.
func (uc *bookingUseCase) Retrieve(ctx context.Context, reference string) (*domain.BookingConfirmation, error) {
	booking, err := uc.store.Get(ctx, reference)
	if err == nil {
		return &booking, nil
	}

	// Not in the local store (different node, expired key): ask upstream.
	resp, err := uc.client.GetOrder(ctx, reference)
	if err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	recovered := domain.BookingConfirmation{
		Reference: resp.OrderID,
		Offer:     upstream.Normalize(resp.FlightOffer),
	}
	return &recovered, nil
}

// Ensure bookingUseCase implements BookingUseCase at compile time.
var _ BookingUseCase = (*bookingUseCase)(nil)
