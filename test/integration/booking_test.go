package integration

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-booking/flight-booking-service/internal/adapter/upstream"
	"github.com/flight-booking/flight-booking-service/internal/domain"
	"github.com/flight-booking/flight-booking-service/test/mock"
	"github.com/flight-booking/flight-booking-service/test/testutil"
)

type bookingBody struct {
	Travelers []domain.Traveler  `json:"travelers"`
	Offer     domain.FlightOffer `json:"offer"`
}

func TestCreateBooking_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	var captured upstream.OrderRequest
	client.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req upstream.OrderRequest) (upstream.OrderResponse, error) {
			captured = req
			return upstream.OrderResponse{OrderID: "ORD-1001", Travelers: req.Travelers}, nil
		})

	ts := NewTestServer(client)
	offer := upstream.Normalize(testutil.DirectRawOffer())

	resp := ts.BookingRequest(bookingBody{
		Travelers: []domain.Traveler{testutil.CompleteTraveler()},
		Offer:     offer,
	})

	require.Equal(t, http.StatusCreated, resp.Code)

	var confirmation domain.BookingConfirmation
	require.NoError(t, unmarshalBody(resp, &confirmation))
	assert.Equal(t, "ORD-1001", confirmation.Reference)
	assert.NotEmpty(t, confirmation.ClientReference)
	assert.Equal(t, "2026-09-01T12:00:00Z", confirmation.CreatedAt)

	// The assembled payload carries 1-based traveler ids and the fixed
	// phone and document shapes.
	require.Len(t, captured.Travelers, 1)
	assert.Equal(t, "1", captured.Travelers[0].ID)
	require.Len(t, captured.Travelers[0].Contact.Phones, 1)
	assert.Equal(t, "MOBILE", captured.Travelers[0].Contact.Phones[0].DeviceType)
	require.Len(t, captured.Travelers[0].Documents, 1)
	assert.True(t, captured.Travelers[0].Documents[0].Holder)
}

func TestCreateBooking_ThenRetrieveFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	// GetOrder must not be called: the booking is served from the store.
	client.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		Return(upstream.OrderResponse{OrderID: "ORD-2002"}, nil)

	ts := NewTestServer(client)
	offer := upstream.Normalize(testutil.DirectRawOffer())

	created := ts.BookingRequest(bookingBody{
		Travelers: []domain.Traveler{testutil.CompleteTraveler()},
		Offer:     offer,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	fetched := ts.GetBookingRequest("ORD-2002")
	require.Equal(t, http.StatusOK, fetched.Code)

	var confirmation domain.BookingConfirmation
	require.NoError(t, unmarshalBody(fetched, &confirmation))
	assert.Equal(t, "ORD-2002", confirmation.Reference)
	require.Len(t, confirmation.Travelers, 1)
	assert.Equal(t, "ADA", confirmation.Travelers[0].FirstName)
}

func TestCreateBooking_IncompleteTravelerRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No EXPECT calls: the booking must be refused before submission.
	client := mock.NewMockClient(ctrl)

	ts := NewTestServer(client)
	offer := upstream.Normalize(testutil.DirectRawOffer())

	traveler := testutil.CompleteTraveler()
	traveler.Document.Number = ""

	resp := ts.BookingRequest(bookingBody{
		Travelers: []domain.Traveler{traveler},
		Offer:     offer,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	detail, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "validation_error", detail.Code)
	assert.Contains(t, detail.Message, "document.number")
}

func TestCreateBooking_UpstreamFailureReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	// A failed submission is surfaced once, with no automatic retry.
	client.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		Return(upstream.OrderResponse{}, domain.NewUpstreamError("booking/flight-order", http.StatusBadGateway, errors.New("order rejected"))).
		Times(1)

	ts := NewTestServer(client)
	offer := upstream.Normalize(testutil.DirectRawOffer())

	resp := ts.BookingRequest(bookingBody{
		Travelers: []domain.Traveler{testutil.CompleteTraveler()},
		Offer:     offer,
	})

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestGetBooking_UnknownFallsBackUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	client.EXPECT().
		GetOrder(gomock.Any(), "ORD-MISSING").
		Return(upstream.OrderResponse{}, domain.NewUpstreamError("booking/flight-order/ORD-MISSING", http.StatusNotFound, errors.New("no such order")))

	ts := NewTestServer(client)
	resp := ts.GetBookingRequest("ORD-MISSING")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetBooking_RecoveredFromUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	client.EXPECT().
		GetOrder(gomock.Any(), "ORD-3003").
		Return(upstream.OrderResponse{
			OrderID:     "ORD-3003",
			FlightOffer: testutil.DirectRawOffer(),
		}, nil)

	ts := NewTestServer(client)
	resp := ts.GetBookingRequest("ORD-3003")

	require.Equal(t, http.StatusOK, resp.Code)

	var confirmation domain.BookingConfirmation
	require.NoError(t, unmarshalBody(resp, &confirmation))
	assert.Equal(t, "ORD-3003", confirmation.Reference)
	require.Len(t, confirmation.Offer.Trips, 1)
	assert.Equal(t, "JFK", confirmation.Offer.Trips[0].From)
}
