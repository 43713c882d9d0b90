package dto

import (
	"net/url"
	"strconv"

	"innsync/shared/constant"
)

// SearchParams carries the hotel search filters the UI collects. Zero-valued
// optional fields are omitted from the query string, matching the server's
// contract.
type SearchParams struct {
	Query      string  `json:"q"           validate:"required"`
	RoomNum    int     `json:"room_num"    validate:"required,gte=1"`
	NoAdults   int     `json:"no_adults"   validate:"required,gte=1"`
	NoChildren int     `json:"no_children" validate:"gte=0"`
	StartPrice float64 `json:"start_price" validate:"omitempty,gte=0"`
	EndPrice   float64 `json:"end_price"   validate:"omitempty,gtefield=StartPrice"`
	Sort       string  `json:"sort"        validate:"omitempty,oneof=price rating"`
}

// Values encodes the parameters as URL query values. The price bounds are
// only sent when both are set, mirroring the original client.
func (p SearchParams) Values() url.Values {
	values := url.Values{}
	values.Set(constant.RequestParamQuery, p.Query)
	values.Set(constant.RequestParamRoomNum, strconv.Itoa(p.RoomNum))
	values.Set(constant.RequestParamNoAdults, strconv.Itoa(p.NoAdults))
	values.Set(constant.RequestParamNoChildren, strconv.Itoa(p.NoChildren))

	if p.StartPrice > 0 && p.EndPrice > 0 {
		values.Set(constant.RequestParamStartPrice, strconv.FormatFloat(p.StartPrice, 'f', -1, 64))
		values.Set(constant.RequestParamEndPrice, strconv.FormatFloat(p.EndPrice, 'f', -1, 64))
	}

	if p.Sort != "" {
		values.Set(constant.RequestParamSort, p.Sort)
	}

	return values
}
