package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "innsync/infras/otel/mocks"
	"innsync/internal/connectivity"
	"innsync/internal/domains/booking/mocks"
	"innsync/internal/domains/booking/model"
	"innsync/internal/domains/booking/model/dto"
	"innsync/internal/domains/booking/service"
	"innsync/shared/constant"
	"innsync/shared/failure"
	restMocks "innsync/transport/rest/mocks"
)

type fixture struct {
	repo    *mocks.MockBookingRepository
	gateway *restMocks.MockGateway
	monitor *connectivity.Monitor
	svc     service.Booking
}

func newFixture(t *testing.T, online bool) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookingRepository(ctrl)
	gateway := restMocks.NewMockGateway(ctrl)
	monitor := connectivity.New(online)

	return fixture{
		repo:    repo,
		gateway: gateway,
		monitor: monitor,
		svc:     service.New(repo, gateway, monitor, otelMocks.NewOtel()),
	}
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:    3,
		NoRooms:   1,
		StartDate: "2026-09-10",
		EndDate:   "2026-09-12",
	}
}

func remoteBooking(id int64, status string) dto.GetBookingResponse {
	return dto.GetBookingResponse{
		Status: true,
		Data: dto.BookingPayload{
			ID:     id,
			Email:  "guest@example.com",
			Status: status,
			Total:  "125.50",
		},
	}
}

func mirroredBooking(id int64, status string) model.Booking {
	payload := remoteBooking(id, status).Data

	return payload.ToModel()
}

func TestCreate_MirrorsFetchedBookingLocally(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	req := validCreateRequest()

	f.gateway.EXPECT().CreateBooking(ctx, req).Return(dto.CreateBookingResponse{BookingID: 42}, nil)
	f.gateway.EXPECT().GetBookingByID(ctx, int64(42)).Return(remoteBooking(42, constant.BookingStatusPending), nil)
	f.repo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	res, err := f.svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.BookingID)
}

func TestCreate_RejectsInvalidDates(t *testing.T) {
	f := newFixture(t, true)

	req := validCreateRequest()
	req.EndDate = "2026-09-09"

	_, err := f.svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindValidation))
}

func TestCreate_GoesRemoteEvenWhenOffline(t *testing.T) {
	// Money writes are never queued: an offline create still hits the remote
	// and surfaces its failure.
	f := newFixture(t, false)
	ctx := context.Background()
	req := validCreateRequest()

	f.gateway.EXPECT().CreateBooking(ctx, req).
		Return(dto.CreateBookingResponse{}, failure.RemoteUnreachable(assert.AnError))

	_, err := f.svc.Create(ctx, req)
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindRemoteUnreachable))
}

func TestCreate_SurfacesMirrorFailureWithBookingID(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	req := validCreateRequest()

	f.gateway.EXPECT().CreateBooking(ctx, req).Return(dto.CreateBookingResponse{BookingID: 42}, nil)
	f.gateway.EXPECT().GetBookingByID(ctx, int64(42)).Return(remoteBooking(42, constant.BookingStatusPending), nil)
	f.repo.EXPECT().Upsert(ctx, gomock.Any()).Return(failure.StoreUnavailable(assert.AnError))

	res, err := f.svc.Create(ctx, req)
	require.Error(t, err)
	assert.Equal(t, int64(42), res.BookingID, "remote booking id survives mirror failure")
}

func TestGetByID_UsesRemoteWhenOnline(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().GetBookingByID(ctx, int64(42)).Return(remoteBooking(42, constant.BookingStatusPending), nil)

	booking, err := f.svc.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
	assert.InDelta(t, 125.50, booking.Total, 0.001)
}

func TestGetByID_UsesLocalMirrorWhenOffline(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.repo.EXPECT().GetByID(ctx, int64(42)).Return(mirroredBooking(42, constant.BookingStatusPending), nil)

	booking, err := f.svc.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
}

func TestGetTripsByStatus_OfflineFlattensLocalRows(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	row := mirroredBooking(42, constant.BookingStatusPending)
	row.HotelAddress = "Place Andre Malraux, Paris"

	f.repo.EXPECT().GetByStatus(ctx, constant.BookingStatusPending).Return([]model.Booking{row}, nil)

	trips, err := f.svc.GetTripsByStatus(ctx, constant.BookingStatusPending)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, int64(42), trips[0].BookingID)
	assert.Equal(t, "Place Andre Malraux, Paris", trips[0].Address)
	assert.InDelta(t, 125.50, trips[0].TotalPrice, 0.001)
}

func TestGetTripsByStatus_OnlineUsesRemote(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().GetBookingsByStatus(ctx, constant.BookingStatusAll).Return(dto.GetBookingsResponse{
		Status: true,
		Data:   []dto.BookingPayload{remoteBooking(1, constant.BookingStatusPast).Data, remoteBooking(2, constant.BookingStatusSoon).Data},
	}, nil)

	trips, err := f.svc.GetTripsByStatus(ctx, constant.BookingStatusAll)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, constant.BookingStatusPast, trips[0].Status)
	assert.Equal(t, constant.BookingStatusSoon, trips[1].Status)
}

func TestCheckout_MirrorsSoonStatus(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().Checkout(ctx, int64(42)).Return(dto.CheckoutResponse{ClientSecret: "cs_test"}, nil)
	f.repo.EXPECT().UpdateStatus(ctx, int64(42), constant.BookingStatusSoon).Return(nil)

	res, err := f.svc.Checkout(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "cs_test", res.ClientSecret)
}

func TestCheckout_OfflineSurfacesRemoteFailureWithoutLocalWrite(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.gateway.EXPECT().Checkout(ctx, int64(42)).
		Return(dto.CheckoutResponse{}, failure.RemoteUnreachable(assert.AnError))

	_, err := f.svc.Checkout(ctx, 42)
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindRemoteUnreachable))
}

func TestCheckout_ToleratesUnmirroredBooking(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().Checkout(ctx, int64(42)).Return(dto.CheckoutResponse{ClientSecret: "cs_test"}, nil)
	f.repo.EXPECT().UpdateStatus(ctx, int64(42), constant.BookingStatusSoon).Return(failure.NotFound("booking"))

	res, err := f.svc.Checkout(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "cs_test", res.ClientSecret)
}

func TestCancel_MirrorsCancelledStatus(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().CancelBooking(ctx, int64(42)).Return(nil)
	f.repo.EXPECT().UpdateStatus(ctx, int64(42), constant.BookingStatusCancelled).Return(nil)

	require.NoError(t, f.svc.Cancel(ctx, 42))
}

func TestCancel_RemoteRejectionLeavesMirrorUntouched(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().CancelBooking(ctx, int64(42)).Return(failure.RemoteRejected(409, "already checked in"))

	err := f.svc.Cancel(ctx, 42)
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindRemoteRejected))
}
