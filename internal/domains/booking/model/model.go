package model

const (
	TableName  = "booking"
	EntityName = "booking"

	FieldID     = "b_id"
	FieldStatus = "status"
)

// Booking mirrors one remote booking row, including the denormalized hotel
// (h_*) and room (r_*) snapshot the server attaches at booking time.
type Booking struct {
	ID           int64   `db:"b_id"`
	Email        string  `db:"email"`
	NoRoom       int     `db:"b_no_room"`
	StartDate    string  `db:"b_start"`
	EndDate      string  `db:"b_end"`
	Status       string  `db:"status"`
	Total        float64 `db:"total"`
	HotelID      int64   `db:"h_id"`
	HotelName    string  `db:"h_name"`
	HotelAddress string  `db:"h_address"`
	HotelLat     float64 `db:"h_lat"`
	HotelLng     float64 `db:"h_lng"`
	HotelImage   string  `db:"h_img"`
	HotelRating  float64 `db:"h_rating"`
	RoomID       int64   `db:"r_id"`
	RoomName     string  `db:"r_name"`
	RoomBed      string  `db:"r_bed"`
	RoomNoAdult  int     `db:"r_no_adult"`
	RoomNoChild  int     `db:"r_no_child"`
	RoomPrice    float64 `db:"r_price"`
	RoomSize     float64 `db:"r_size"`
	RoomImage    string  `db:"r_img"`
}
