package dto

import (
	"innsync/internal/domains/hotel/model"
	"innsync/shared"
)

// SummaryPayload is the wire shape of one search/popular/category result.
// Coordinates and rating arrive as decimal strings.
type SummaryPayload struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Category    string  `json:"category"`
	Description string  `json:"desc"`
	ImageURL    string  `json:"image_url"`
	Lat         string  `json:"lat"`
	Long        string  `json:"long"`
	Price       float64 `json:"price"`
	Rating      string  `json:"rating"`
}

func (p *SummaryPayload) ToModel() model.Summary {
	return model.Summary{
		ID:          p.ID,
		Name:        p.Name,
		City:        p.City,
		Category:    p.Category,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Lat:         shared.ParseDecimal(p.Lat),
		Lng:         shared.ParseDecimal(p.Long),
		Price:       p.Price,
		Rating:      shared.ParseDecimal(p.Rating),
	}
}

func SummariesToModels(payloads []SummaryPayload) []model.Summary {
	models := make([]model.Summary, len(payloads))
	for i, p := range payloads {
		models[i] = p.ToModel()
	}

	return models
}

// DetailsPayload is the full hotel page payload.
type DetailsPayload struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Description   string   `json:"desc"`
	Rating        float64  `json:"rating"`
	City          string   `json:"city"`
	StartingPrice string   `json:"starting_price"`
	AgodaURL      string   `json:"agoda_url"`
	Lat           string   `json:"lat"`
	Lng           string   `json:"lng"`
	Category      string   `json:"category"`
	HotelImages   []string `json:"hotel_images"`
	IsLiked       bool     `json:"isLiked"`
}

type Landmark struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

type Room struct {
	ID         int64    `json:"id"`
	HotelID    int64    `json:"hotel_id"`
	Name       string   `json:"name"`
	Bed        string   `json:"bed"`
	NoAdult    int      `json:"no_adult"`
	NoChild    int      `json:"no_child"`
	NumRooms   int      `json:"num_rooms"`
	Price      float64  `json:"price"`
	Size       float64  `json:"size"`
	RoomImages []string `json:"room_images"`
}

// LikeResponse reports which way the server toggled the like.
type LikeResponse struct {
	Action string `json:"action"`
}

// LikedHotelPayload is one row of the server's likes list. Mirrored into the
// local liked table unchanged apart from decimal parsing.
type LikedHotelPayload struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Category    string  `json:"category"`
	Description string  `json:"desc"`
	Image       string  `json:"img"`
	Lat         string  `json:"lat"`
	Lng         string  `json:"lng"`
	Price       float64 `json:"price"`
	Rating      string  `json:"rating"`
	Address     string  `json:"address"`
	AgodaURL    string  `json:"agoda_url"`
}

func (p *LikedHotelPayload) ToModel() model.LikedHotel {
	return model.LikedHotel{
		ID:          p.ID,
		Name:        p.Name,
		City:        p.City,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		Lat:         shared.ParseDecimal(p.Lat),
		Lng:         shared.ParseDecimal(p.Lng),
		Price:       p.Price,
		Rating:      shared.ParseDecimal(p.Rating),
		Address:     p.Address,
		AgodaURL:    p.AgodaURL,
	}
}
