// Package rest is the client side of the booking server's REST API. Every
// remote read and write the app performs goes through the Gateway; transport
// failures and server rejections come back as typed failures so callers can
// tell "could not reach" from "said no".
package rest

//go:generate go run go.uber.org/mock/mockgen -source=./rest.go -destination=./mocks/rest_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"innsync/config"
	"innsync/infras/otel"
	authDto "innsync/internal/domains/auth/model/dto"
	bookingDto "innsync/internal/domains/booking/model/dto"
	hotelModel "innsync/internal/domains/hotel/model"
	hotelDto "innsync/internal/domains/hotel/model/dto"
	"innsync/shared/constant"
	gDto "innsync/shared/dto"
	"innsync/shared/failure"
)

// TokenSource supplies the current session token. An empty string means no
// session; the Authorization header is then omitted.
type TokenSource interface {
	Token() string
}

type Gateway interface {
	Ping(ctx context.Context) error

	Register(ctx context.Context, req authDto.RegisterRequest) (authDto.SessionResponse, error)
	Login(ctx context.Context, req authDto.LoginRequest) (authDto.SessionResponse, error)
	GoogleAuth(ctx context.Context, req authDto.GoogleAuthRequest) (authDto.SessionResponse, error)
	ValidateToken(ctx context.Context, accessToken string) (authDto.ValidateTokenResponse, error)

	CreateBooking(ctx context.Context, req bookingDto.CreateBookingRequest) (bookingDto.CreateBookingResponse, error)
	GetBookingByID(ctx context.Context, id int64) (bookingDto.GetBookingResponse, error)
	GetBookingsByStatus(ctx context.Context, status string) (bookingDto.GetBookingsResponse, error)
	Checkout(ctx context.Context, bookingID int64) (bookingDto.CheckoutResponse, error)
	CancelBooking(ctx context.Context, bookingID int64) error

	GetCities(ctx context.Context, query string) ([]hotelModel.City, error)
	GetHotelByID(ctx context.Context, id int64) (hotelDto.DetailsPayload, error)
	GetLandmarksByHotelID(ctx context.Context, hotelID int64) ([]hotelDto.Landmark, error)
	GetRoomsByHotelID(ctx context.Context, hotelID int64) ([]hotelDto.Room, error)
	LikeHotel(ctx context.Context, id int64) (hotelDto.LikeResponse, error)
	GetLikedHotels(ctx context.Context) ([]hotelDto.LikedHotelPayload, error)
	GetPopularHotels(ctx context.Context) ([]hotelDto.SummaryPayload, error)
	SearchHotels(ctx context.Context, params gDto.SearchParams) ([]hotelDto.SummaryPayload, error)
	GetHotelsByCategory(ctx context.Context, category string) ([]hotelDto.SummaryPayload, error)
}

type gatewayImpl struct {
	base   string
	client *http.Client
	tokens TokenSource
	otel   otel.Otel
}

func New(cfg *config.Config, tokens TokenSource, otel otel.Otel) Gateway {
	return &gatewayImpl{
		base:   cfg.API.BaseURL,
		client: &http.Client{Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second},
		tokens: tokens,
		otel:   otel,
	}
}

// serverMessage is the body the server sends alongside non-2xx statuses.
type serverMessage struct {
	Message string `json:"message"`
}

func (g *gatewayImpl) do(ctx context.Context, method, path string, query url.Values, body, out any) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+"."+method+" "+path)
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelEndpointAttributeKey, path)

	var reqBody io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}

		reqBody = bytes.NewReader(payload)
	}

	endpoint := g.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if token := g.tokens.Token(); token != constant.Empty {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return failure.RemoteUnreachable(fmt.Errorf("%s %s: %w", method, path, err)) // nolint:wrapcheck
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var msg serverMessage

		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &msg)

		if msg.Message == constant.Empty {
			msg.Message = http.StatusText(resp.StatusCode)
		}

		return failure.RemoteRejected(resp.StatusCode, msg.Message) // nolint:wrapcheck
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}

	return nil
}

// Ping checks reachability only. Any HTTP response counts as reachable; only
// transport-level failures mean offline.
func (g *gatewayImpl) Ping(ctx context.Context) error {
	err := g.do(ctx, http.MethodGet, "/", nil, nil, nil)
	if err != nil && failure.IsKind(err, failure.KindRemoteUnreachable) {
		return err
	}

	return nil
}

func (g *gatewayImpl) Register(ctx context.Context, req authDto.RegisterRequest) (res authDto.SessionResponse, err error) {
	err = g.do(ctx, http.MethodPost, "/auth/register", nil, req, &res)

	return res, err
}

func (g *gatewayImpl) Login(ctx context.Context, req authDto.LoginRequest) (res authDto.SessionResponse, err error) {
	err = g.do(ctx, http.MethodPost, "/auth/login", nil, req, &res)

	return res, err
}

func (g *gatewayImpl) GoogleAuth(ctx context.Context, req authDto.GoogleAuthRequest) (res authDto.SessionResponse, err error) {
	err = g.do(ctx, http.MethodPost, "/auth/google-auth", nil, req, &res)

	return res, err
}

func (g *gatewayImpl) ValidateToken(ctx context.Context, accessToken string) (res authDto.ValidateTokenResponse, err error) {
	err = g.do(ctx, http.MethodPost, "/auth/validate-token", nil, authDto.ValidateTokenRequest{AccessToken: accessToken}, &res)

	return res, err
}

func (g *gatewayImpl) CreateBooking(ctx context.Context, req bookingDto.CreateBookingRequest) (res bookingDto.CreateBookingResponse, err error) {
	err = g.do(ctx, http.MethodPost, "/book/", nil, req, &res)

	return res, err
}

func (g *gatewayImpl) GetBookingByID(ctx context.Context, id int64) (res bookingDto.GetBookingResponse, err error) {
	err = g.do(ctx, http.MethodGet, "/book/"+strconv.FormatInt(id, 10), nil, nil, &res)

	return res, err
}

func (g *gatewayImpl) GetBookingsByStatus(ctx context.Context, status string) (res bookingDto.GetBookingsResponse, err error) {
	query := url.Values{}
	query.Set(constant.RequestParamStatus, status)

	err = g.do(ctx, http.MethodGet, "/book/details", query, nil, &res)

	return res, err
}

func (g *gatewayImpl) Checkout(ctx context.Context, bookingID int64) (res bookingDto.CheckoutResponse, err error) {
	err = g.do(ctx, http.MethodPost, "/book/checkout", nil, bookingDto.CheckoutRequest{BookingID: bookingID}, &res)

	return res, err
}

func (g *gatewayImpl) CancelBooking(ctx context.Context, bookingID int64) error {
	return g.do(ctx, http.MethodPut, "/book/cancel", nil, bookingDto.CheckoutRequest{BookingID: bookingID}, nil)
}

func (g *gatewayImpl) GetCities(ctx context.Context, query string) (res []hotelModel.City, err error) {
	params := url.Values{}
	if query != constant.Empty {
		params.Set(constant.RequestParamQuery, query)
	}

	err = g.do(ctx, http.MethodGet, "/hotel/cities/", params, nil, &res)

	return res, err
}

func (g *gatewayImpl) GetHotelByID(ctx context.Context, id int64) (res hotelDto.DetailsPayload, err error) {
	err = g.do(ctx, http.MethodGet, "/hotel/"+strconv.FormatInt(id, 10), nil, nil, &res)

	return res, err
}

func (g *gatewayImpl) GetLandmarksByHotelID(ctx context.Context, hotelID int64) (res []hotelDto.Landmark, err error) {
	err = g.do(ctx, http.MethodGet, "/hotel/"+strconv.FormatInt(hotelID, 10)+"/landmarks/", nil, nil, &res)

	return res, err
}

func (g *gatewayImpl) GetRoomsByHotelID(ctx context.Context, hotelID int64) (res []hotelDto.Room, err error) {
	err = g.do(ctx, http.MethodGet, "/hotel/"+strconv.FormatInt(hotelID, 10)+"/rooms/", nil, nil, &res)

	return res, err
}

func (g *gatewayImpl) LikeHotel(ctx context.Context, id int64) (res hotelDto.LikeResponse, err error) {
	err = g.do(ctx, http.MethodPost, "/hotel/like/"+strconv.FormatInt(id, 10)+"/", nil, nil, &res)

	return res, err
}

func (g *gatewayImpl) GetLikedHotels(ctx context.Context) (res []hotelDto.LikedHotelPayload, err error) {
	err = g.do(ctx, http.MethodGet, "/hotel/likes/", nil, nil, &res)

	return res, err
}

func (g *gatewayImpl) GetPopularHotels(ctx context.Context) (res []hotelDto.SummaryPayload, err error) {
	err = g.do(ctx, http.MethodGet, "/hotel/popular/", nil, nil, &res)

	return res, err
}

func (g *gatewayImpl) SearchHotels(ctx context.Context, params gDto.SearchParams) (res []hotelDto.SummaryPayload, err error) {
	err = g.do(ctx, http.MethodGet, "/hotel/search", params.Values(), nil, &res)

	return res, err
}

func (g *gatewayImpl) GetHotelsByCategory(ctx context.Context, category string) (res []hotelDto.SummaryPayload, err error) {
	err = g.do(ctx, http.MethodGet, "/hotel/category/"+url.PathEscape(category), nil, nil, &res)

	return res, err
}
