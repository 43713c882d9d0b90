package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innsync/internal/domains/booking/model"
	"innsync/internal/domains/booking/model/dto"
	"innsync/shared/failure"
)

func TestCreateBookingRequest_CheckDates(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid stay", start: "2026-09-10", end: "2026-09-12", wantErr: false},
		{name: "single night", start: "2026-09-10", end: "2026-09-11", wantErr: false},
		{name: "end before start", start: "2026-09-12", end: "2026-09-10", wantErr: true},
		{name: "zero length stay", start: "2026-09-10", end: "2026-09-10", wantErr: true},
		{name: "garbage start", start: "soon", end: "2026-09-12", wantErr: true},
		{name: "garbage end", start: "2026-09-10", end: "later", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				RoomID:    1,
				NoRooms:   1,
				StartDate: tt.start,
				EndDate:   tt.end,
			}

			err := req.CheckDates()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingPayload_ToModelParsesDecimalStrings(t *testing.T) {
	payload := dto.BookingPayload{
		ID:          42,
		Status:      "PENDING",
		Total:       "125.50",
		HotelLat:    "48.8566",
		HotelLng:    "2.3522",
		HotelRating: "4.5",
		RoomPrice:   62.75,
	}

	row := payload.ToModel()

	assert.Equal(t, int64(42), row.ID)
	assert.InDelta(t, 125.50, row.Total, 0.001)
	assert.InDelta(t, 48.8566, row.HotelLat, 0.0001)
	assert.InDelta(t, 2.3522, row.HotelLng, 0.0001)
	assert.InDelta(t, 4.5, row.HotelRating, 0.001)
	assert.InDelta(t, 62.75, row.RoomPrice, 0.001)
}

func TestTrip_FromModelFlattensRow(t *testing.T) {
	payload := dto.BookingPayload{
		ID:           42,
		StartDate:    "2026-09-10",
		EndDate:      "2026-09-12",
		Status:       "PENDING",
		Total:        "125.50",
		HotelID:      3,
		HotelName:    "Hotel du Louvre",
		HotelAddress: "Place Andre Malraux, Paris",
		HotelLat:     "48.8566",
		HotelLng:     "2.3522",
		HotelImage:   "louvre.jpg",
		RoomID:       7,
		RoomName:     "Double Deluxe",
		RoomNoAdult:  2,
		RoomNoChild:  1,
		RoomPrice:    62.75,
		NoRoom:       1,
	}

	var trip dto.Trip

	trip.FromModel(payload.ToModel())

	assert.Equal(t, int64(42), trip.BookingID)
	assert.Equal(t, "Place Andre Malraux, Paris", trip.Address)
	assert.Equal(t, "2026-09-10", trip.StartDate)
	assert.Equal(t, "2026-09-12", trip.EndDate)
	assert.Equal(t, int64(3), trip.HotelID)
	assert.Equal(t, "louvre.jpg", trip.HotelImage)
	assert.InDelta(t, 48.8566, trip.Lat, 0.0001)
	assert.Equal(t, "Double Deluxe", trip.RoomName)
	assert.Equal(t, 2, trip.RoomNoAdult)
	assert.InDelta(t, 125.50, trip.TotalPrice, 0.001)
	assert.Equal(t, "PENDING", trip.Status)
}

func TestTripsFromModels_PreservesOrder(t *testing.T) {
	first := dto.BookingPayload{ID: 1, Status: "PAST", Total: "10"}
	second := dto.BookingPayload{ID: 2, Status: "SOON", Total: "20"}

	trips := dto.TripsFromModels([]model.Booking{first.ToModel(), second.ToModel()})

	require.Len(t, trips, 2)
	assert.Equal(t, int64(1), trips[0].BookingID)
	assert.Equal(t, "PAST", trips[0].Status)
	assert.Equal(t, int64(2), trips[1].BookingID)
	assert.Equal(t, "SOON", trips[1].Status)
}
