package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"innsync/infras/otel"
	"innsync/internal/connectivity"
	"innsync/internal/domains/hotel/model"
	"innsync/internal/domains/hotel/model/dto"
	"innsync/internal/domains/hotel/repository"
	"innsync/shared/constant"
	gDto "innsync/shared/dto"
	"innsync/shared/validator"
	"innsync/transport/rest"
)

// Hotel serves discovery and likes. Cities and the liked list fall back to
// the local mirror when offline; search, popular, and hotel pages are
// remote-only, with successful result batches refreshing the local hotel
// cache.
type Hotel interface {
	GetCities(ctx context.Context, query string) ([]model.City, error)
	GetByID(ctx context.Context, id int64) (dto.DetailsPayload, error)
	GetLandmarks(ctx context.Context, hotelID int64) ([]dto.Landmark, error)
	GetRooms(ctx context.Context, hotelID int64) ([]dto.Room, error)
	ToggleLike(ctx context.Context, id int64) (bool, error)
	GetLiked(ctx context.Context) ([]model.LikedHotel, error)
	GetPopular(ctx context.Context) ([]dto.SummaryPayload, error)
	Search(ctx context.Context, params gDto.SearchParams) ([]dto.SummaryPayload, error)
	GetByCategory(ctx context.Context, category string) ([]dto.SummaryPayload, error)
}

type serviceImpl struct {
	repo    repository.Hotel
	gateway rest.Gateway
	monitor *connectivity.Monitor
	otel    otel.Otel
}

func New(repo repository.Hotel, gateway rest.Gateway, monitor *connectivity.Monitor, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:    repo,
		gateway: gateway,
		monitor: monitor,
		otel:    otel,
	}
}

func (s *serviceImpl) GetCities(ctx context.Context, query string) (cities []model.City, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetCities")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelOnlineAttributeKey, s.monitor.Online())

	if !s.monitor.Online() {
		return s.repo.GetCities(ctx, query)
	}

	cities, err = s.gateway.GetCities(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("failed to get cities remotely")

		return nil, err
	}

	return cities, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id int64) (details dto.DetailsPayload, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	details, err = s.gateway.GetHotelByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", id).Msg("failed to get hotel remotely")

		return details, err
	}

	return details, nil
}

func (s *serviceImpl) GetLandmarks(ctx context.Context, hotelID int64) (landmarks []dto.Landmark, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetLandmarks")
	defer scope.End()
	defer scope.TraceIfError(err)

	landmarks, err = s.gateway.GetLandmarksByHotelID(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", hotelID).Msg("failed to get landmarks")

		return nil, err
	}

	return landmarks, nil
}

func (s *serviceImpl) GetRooms(ctx context.Context, hotelID int64) (rooms []dto.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err = s.gateway.GetRoomsByHotelID(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", hotelID).Msg("failed to get rooms")

		return nil, err
	}

	return rooms, nil
}

// ToggleLike flips the like remotely and mirrors the outcome: a like fetches
// the canonical likes list and stores the matching row, an unlike deletes
// locally. Returns whether the hotel is liked after the toggle.
func (s *serviceImpl) ToggleLike(ctx context.Context, id int64) (liked bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.ToggleLike")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err := s.gateway.LikeHotel(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", id).Msg("failed to toggle like")

		return false, err
	}

	if res.Action != constant.LikeActionLike {
		if err = s.repo.DeleteLiked(ctx, id); err != nil {
			return false, err
		}

		return false, nil
	}

	likes, err := s.gateway.GetLikedHotels(ctx)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", id).Msg("hotel liked but fetching the likes list failed")

		return true, err
	}

	for i := range likes {
		if likes[i].ID != id {
			continue
		}

		if err = s.repo.InsertLiked(ctx, likes[i].ToModel()); err != nil {
			return true, err
		}

		return true, nil
	}

	log.Warn().Int64("hotelID", id).Msg("liked hotel missing from the likes list, mirror skipped")

	return true, nil
}

func (s *serviceImpl) GetLiked(ctx context.Context) (hotels []model.LikedHotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetLiked")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelOnlineAttributeKey, s.monitor.Online())

	if !s.monitor.Online() {
		return s.repo.GetLiked(ctx)
	}

	likes, err := s.gateway.GetLikedHotels(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get liked hotels remotely")

		return nil, err
	}

	hotels = make([]model.LikedHotel, len(likes))
	for i := range likes {
		hotels[i] = likes[i].ToModel()
	}

	return hotels, nil
}

func (s *serviceImpl) GetPopular(ctx context.Context) (hotels []dto.SummaryPayload, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetPopular")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotels, err = s.gateway.GetPopularHotels(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get popular hotels")

		return nil, err
	}

	s.refreshCache(ctx, hotels)

	return hotels, nil
}

func (s *serviceImpl) Search(ctx context.Context, params gDto.SearchParams) (hotels []dto.SummaryPayload, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, params.Query)

	if err = validator.ValidateStruct(&params); err != nil {
		return nil, err // nolint:wrapcheck
	}

	hotels, err = s.gateway.SearchHotels(ctx, params)
	if err != nil {
		log.Error().Err(err).Str("query", params.Query).Msg("failed to search hotels")

		return nil, err
	}

	s.refreshCache(ctx, hotels)

	return hotels, nil
}

func (s *serviceImpl) GetByCategory(ctx context.Context, category string) (hotels []dto.SummaryPayload, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetByCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotels, err = s.gateway.GetHotelsByCategory(ctx, category)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("failed to get hotels by category")

		return nil, err
	}

	s.refreshCache(ctx, hotels)

	return hotels, nil
}

// refreshCache mirrors a result batch into the hotel cache. The results were
// already served to the caller, so refresh failures are logged and swallowed.
func (s *serviceImpl) refreshCache(ctx context.Context, hotels []dto.SummaryPayload) {
	if len(hotels) == 0 {
		return
	}

	if err := s.repo.UpsertSummaries(ctx, dto.SummariesToModels(hotels)); err != nil {
		log.Error().Err(err).Int("hotels", len(hotels)).Msg("failed to refresh hotel cache")
	}
}
