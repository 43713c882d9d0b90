package model

const (
	LikedTableName = "liked_hotels"
	HotelTableName = "hotel"
	CityTableName  = "city"

	EntityName = "hotel"

	FieldID = "id"
)

// LikedHotel is a locally mirrored row of the user's liked list. The shape
// matches the server's likes payload one to one, so offline reads need no
// transform.
type LikedHotel struct {
	ID          int64   `db:"id"        json:"id"`
	Name        string  `db:"name"      json:"name"`
	City        string  `db:"city"      json:"city"`
	Category    string  `db:"category"  json:"category"`
	Description string  `db:"desc"      json:"desc"`
	Image       string  `db:"img"       json:"img"`
	Lat         float64 `db:"lat"       json:"lat"`
	Lng         float64 `db:"lng"       json:"lng"`
	Price       float64 `db:"price"     json:"price"`
	Rating      float64 `db:"rating"    json:"rating"`
	Address     string  `db:"address"   json:"address"`
	AgodaURL    string  `db:"agoda_url" json:"agoda_url"`
}

// Summary is one row of the local hotel cache, refreshed from search and
// popular results while online.
type Summary struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	City        string  `db:"city"`
	Category    string  `db:"category"`
	Description string  `db:"desc"`
	ImageURL    string  `db:"image_url"`
	Lat         float64 `db:"lat"`
	Lng         float64 `db:"lng"`
	Price       float64 `db:"price"`
	Rating      float64 `db:"rating"`
}

type City struct {
	ID    int64  `db:"id"    json:"id"`
	Name  string `db:"name"  json:"name"`
	Image string `db:"image" json:"image"`
}
