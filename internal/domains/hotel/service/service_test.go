package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "innsync/infras/otel/mocks"
	"innsync/internal/connectivity"
	"innsync/internal/domains/hotel/mocks"
	"innsync/internal/domains/hotel/model"
	"innsync/internal/domains/hotel/model/dto"
	"innsync/internal/domains/hotel/service"
	"innsync/shared/constant"
	gDto "innsync/shared/dto"
	"innsync/shared/failure"
	restMocks "innsync/transport/rest/mocks"
)

type fixture struct {
	repo    *mocks.MockHotelRepository
	gateway *restMocks.MockGateway
	monitor *connectivity.Monitor
	svc     service.Hotel
}

func newFixture(t *testing.T, online bool) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHotelRepository(ctrl)
	gateway := restMocks.NewMockGateway(ctrl)
	monitor := connectivity.New(online)

	return fixture{
		repo:    repo,
		gateway: gateway,
		monitor: monitor,
		svc:     service.New(repo, gateway, monitor, otelMocks.NewOtel()),
	}
}

func likedPayload(id int64) dto.LikedHotelPayload {
	return dto.LikedHotelPayload{
		ID:       id,
		Name:     "Hotel du Louvre",
		City:     "Paris",
		Category: "Luxury",
		Lat:      "48.8566",
		Lng:      "2.3522",
		Price:    210,
		Rating:   "4.5",
		Address:  "Place Andre Malraux, Paris",
		AgodaURL: "https://agoda.example.com/louvre",
	}
}

func validSearch() gDto.SearchParams {
	return gDto.SearchParams{Query: "paris", RoomNum: 1, NoAdults: 2}
}

func TestGetCities_OnlineUsesRemote(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().GetCities(ctx, "par").Return([]model.City{{ID: 4, Name: "Paris"}}, nil)

	cities, err := f.svc.GetCities(ctx, "par")
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Paris", cities[0].Name)
}

func TestGetCities_OfflineFallsBackToLocal(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.repo.EXPECT().GetCities(ctx, "par").Return([]model.City{{ID: 4, Name: "Paris"}}, nil)

	cities, err := f.svc.GetCities(ctx, "par")
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Paris", cities[0].Name)
}

func TestGetCities_OnlineFailureDoesNotFallBack(t *testing.T) {
	// Fallback is keyed on the connectivity flag, never on request failure.
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().GetCities(ctx, "par").Return(nil, failure.RemoteUnreachable(assert.AnError))

	_, err := f.svc.GetCities(ctx, "par")
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindRemoteUnreachable))
}

func TestToggleLike_LikeMirrorsCanonicalRow(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().LikeHotel(ctx, int64(3)).Return(dto.LikeResponse{Action: constant.LikeActionLike}, nil)
	f.gateway.EXPECT().GetLikedHotels(ctx).Return([]dto.LikedHotelPayload{likedPayload(9), likedPayload(3)}, nil)
	f.repo.EXPECT().InsertLiked(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, hotel model.LikedHotel) error {
		assert.Equal(t, int64(3), hotel.ID)
		assert.InDelta(t, 48.8566, hotel.Lat, 0.0001)
		assert.InDelta(t, 4.5, hotel.Rating, 0.001)

		return nil
	})

	liked, err := f.svc.ToggleLike(ctx, 3)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestToggleLike_UnlikeDeletesLocally(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().LikeHotel(ctx, int64(3)).Return(dto.LikeResponse{Action: constant.LikeActionUnlike}, nil)
	f.repo.EXPECT().DeleteLiked(ctx, int64(3)).Return(nil)

	liked, err := f.svc.ToggleLike(ctx, 3)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleLike_MissingRowInLikesListSkipsMirror(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().LikeHotel(ctx, int64(3)).Return(dto.LikeResponse{Action: constant.LikeActionLike}, nil)
	f.gateway.EXPECT().GetLikedHotels(ctx).Return([]dto.LikedHotelPayload{likedPayload(9)}, nil)

	liked, err := f.svc.ToggleLike(ctx, 3)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestGetLiked_OfflineReadsLocalMirror(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.repo.EXPECT().GetLiked(ctx).Return([]model.LikedHotel{{ID: 3, Name: "Hotel du Louvre"}}, nil)

	hotels, err := f.svc.GetLiked(ctx)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, int64(3), hotels[0].ID)
}

func TestGetLiked_OnlineMapsRemotePayloads(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().GetLikedHotels(ctx).Return([]dto.LikedHotelPayload{likedPayload(3)}, nil)

	hotels, err := f.svc.GetLiked(ctx)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.InDelta(t, 2.3522, hotels[0].Lng, 0.0001)
}

func TestSearch_RefreshesHotelCache(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	results := []dto.SummaryPayload{
		{ID: 1, Name: "Hotel du Louvre", City: "Paris", Price: 210, Rating: "4.5", Lat: "48.8566", Long: "2.3522"},
	}

	f.gateway.EXPECT().SearchHotels(ctx, validSearch()).Return(results, nil)
	f.repo.EXPECT().UpsertSummaries(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, summaries []model.Summary) error {
		require.Len(t, summaries, 1)
		assert.InDelta(t, 4.5, summaries[0].Rating, 0.001)

		return nil
	})

	hotels, err := f.svc.Search(ctx, validSearch())
	require.NoError(t, err)
	assert.Len(t, hotels, 1)
}

func TestSearch_RejectsInvalidParams(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.Search(context.Background(), gDto.SearchParams{})
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindValidation))
}

func TestSearch_CacheRefreshFailureDoesNotFailTheRead(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	results := []dto.SummaryPayload{{ID: 1, Name: "Hotel du Louvre"}}

	f.gateway.EXPECT().SearchHotels(ctx, validSearch()).Return(results, nil)
	f.repo.EXPECT().UpsertSummaries(ctx, gomock.Any()).Return(failure.StoreUnavailable(assert.AnError))

	hotels, err := f.svc.Search(ctx, validSearch())
	require.NoError(t, err)
	assert.Len(t, hotels, 1)
}

func TestGetPopular_EmptyResultSkipsCacheRefresh(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().GetPopularHotels(ctx).Return(nil, nil)

	hotels, err := f.svc.GetPopular(ctx)
	require.NoError(t, err)
	assert.Empty(t, hotels)
}
