package dto

import (
	"time"

	"innsync/internal/domains/booking/model"
	"innsync/shared"
	"innsync/shared/constant"
	"innsync/shared/failure"
)

type CreateBookingRequest struct {
	RoomID    int64  `json:"roomId"     validate:"required"`
	NoRooms   int    `json:"no_rooms"   validate:"required,gte=1"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
}

// CheckDates verifies both dates parse and the stay has positive length.
func (c *CreateBookingRequest) CheckDates() error {
	start, err := time.Parse(constant.BookingDateFormat, c.StartDate)
	if err != nil {
		return failure.BadRequestFromString("invalid start date") // nolint:wrapcheck
	}

	end, err := time.Parse(constant.BookingDateFormat, c.EndDate)
	if err != nil {
		return failure.BadRequestFromString("invalid end date") // nolint:wrapcheck
	}

	if !end.After(start) {
		return failure.BadRequestFromString("end date must be after start date") // nolint:wrapcheck
	}

	return nil
}

type CreateBookingResponse struct {
	BookingID int64 `json:"booking_id"`
}

type CheckoutRequest struct {
	BookingID int64 `json:"bookingId"`
}

type CheckoutResponse struct {
	ClientSecret string `json:"client_secret"`
}

// BookingPayload is the wire shape of one booking row. The server serializes
// money, rating, and coordinates as decimal strings.
type BookingPayload struct {
	ID           int64   `json:"b_id"`
	Email        string  `json:"email"`
	NoRoom       int     `json:"b_no_room"`
	StartDate    string  `json:"b_start"`
	EndDate      string  `json:"b_end"`
	Status       string  `json:"status"`
	Total        string  `json:"total"`
	HotelID      int64   `json:"h_id"`
	HotelName    string  `json:"h_name"`
	HotelAddress string  `json:"h_address"`
	HotelLat     string  `json:"h_lat"`
	HotelLng     string  `json:"h_lng"`
	HotelImage   string  `json:"h_img"`
	HotelRating  string  `json:"h_rating"`
	RoomID       int64   `json:"r_id"`
	RoomName     string  `json:"r_name"`
	RoomBed      string  `json:"r_bed"`
	RoomNoAdult  int     `json:"r_no_adult"`
	RoomNoChild  int     `json:"r_no_child"`
	RoomPrice    float64 `json:"r_price"`
	RoomSize     float64 `json:"r_size"`
	RoomImage    string  `json:"r_img"`
}

func (p *BookingPayload) ToModel() model.Booking {
	return model.Booking{
		ID:           p.ID,
		Email:        p.Email,
		NoRoom:       p.NoRoom,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Status:       p.Status,
		Total:        shared.ParseDecimal(p.Total),
		HotelID:      p.HotelID,
		HotelName:    p.HotelName,
		HotelAddress: p.HotelAddress,
		HotelLat:     shared.ParseDecimal(p.HotelLat),
		HotelLng:     shared.ParseDecimal(p.HotelLng),
		HotelImage:   p.HotelImage,
		HotelRating:  shared.ParseDecimal(p.HotelRating),
		RoomID:       p.RoomID,
		RoomName:     p.RoomName,
		RoomBed:      p.RoomBed,
		RoomNoAdult:  p.RoomNoAdult,
		RoomNoChild:  p.RoomNoChild,
		RoomPrice:    p.RoomPrice,
		RoomSize:     p.RoomSize,
		RoomImage:    p.RoomImage,
	}
}

type GetBookingResponse struct {
	Status bool           `json:"status"`
	Data   BookingPayload `json:"data"`
}

type GetBookingsResponse struct {
	Status bool             `json:"status"`
	Data   []BookingPayload `json:"data"`
}

// Trip is the flat booking shape the trip screens render.
type Trip struct {
	BookingID   int64   `json:"bookingId"`
	Address     string  `json:"address"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	HotelID     int64   `json:"hotel_id"`
	HotelImage  string  `json:"hotel_image"`
	HotelName   string  `json:"hotel_name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	NoRoom      int     `json:"no_room"`
	RoomID      int64   `json:"room_id"`
	RoomName    string  `json:"room_name"`
	RoomNoAdult int     `json:"room_no_adult"`
	RoomNoChild int     `json:"room_no_child"`
	RoomPrice   float64 `json:"room_price"`
	Status      string  `json:"status"`
	TotalPrice  float64 `json:"total_price"`
}

func (t *Trip) FromModel(m model.Booking) {
	t.BookingID = m.ID
	t.Address = m.HotelAddress
	t.StartDate = m.StartDate
	t.EndDate = m.EndDate
	t.HotelID = m.HotelID
	t.HotelImage = m.HotelImage
	t.HotelName = m.HotelName
	t.Lat = m.HotelLat
	t.Lng = m.HotelLng
	t.NoRoom = m.NoRoom
	t.RoomID = m.RoomID
	t.RoomName = m.RoomName
	t.RoomNoAdult = m.RoomNoAdult
	t.RoomNoChild = m.RoomNoChild
	t.RoomPrice = m.RoomPrice
	t.Status = m.Status
	t.TotalPrice = m.Total
}

func TripsFromModels(models []model.Booking) []Trip {
	trips := make([]Trip, len(models))
	for i, m := range models {
		trips[i].FromModel(m)
	}

	return trips
}
