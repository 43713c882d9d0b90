package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innsync/infras/otel"
	"innsync/internal/connectivity"
	"innsync/internal/domains/booking/model"
	"innsync/internal/domains/booking/model/dto"
	"innsync/internal/domains/booking/repository"
	"innsync/shared/constant"
	"innsync/shared/failure"
	"innsync/shared/validator"
	"innsync/transport/rest"
)

// Booking reconciles booking reads and writes between the remote API and the
// local mirror. Reads branch on the connectivity monitor alone; writes that
// touch money always go remote and are never queued offline.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetByID(ctx context.Context, id int64) (model.Booking, error)
	GetTripsByStatus(ctx context.Context, status string) ([]dto.Trip, error)
	Checkout(ctx context.Context, bookingID int64) (dto.CheckoutResponse, error)
	Cancel(ctx context.Context, bookingID int64) error
}

type serviceImpl struct {
	repo    repository.Booking
	gateway rest.Gateway
	monitor *connectivity.Monitor
	otel    otel.Otel
}

func New(repo repository.Booking, gateway rest.Gateway, monitor *connectivity.Monitor, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:    repo,
		gateway: gateway,
		monitor: monitor,
		otel:    otel,
	}
}

// Create books remotely, then mirrors the authoritative row by fetching the
// created booking back. When mirroring fails the remote booking still exists,
// so the response carries the booking id alongside the error.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	if err = req.CheckDates(); err != nil {
		return res, err
	}

	res, err = s.gateway.CreateBooking(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking remotely")

		return res, err
	}

	remote, err := s.gateway.GetBookingByID(ctx, res.BookingID)
	if err != nil {
		log.Error().Err(err).Int64("bookingID", res.BookingID).Msg("booking created but fetching it back failed")

		return res, err
	}

	if err = s.repo.Upsert(ctx, remote.Data.ToModel()); err != nil {
		log.Error().Err(err).Int64("bookingID", res.BookingID).Msg("booking created but local mirror failed")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id int64) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelOnlineAttributeKey, s.monitor.Online())

	if !s.monitor.Online() {
		return s.repo.GetByID(ctx, id)
	}

	res, err := s.gateway.GetBookingByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("bookingID", id).Msg("failed to get booking remotely")

		return booking, err
	}

	if !res.Status {
		return booking, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	return res.Data.ToModel(), nil
}

// GetTripsByStatus serves the trip screens. Offline rows come out of the
// local mirror and are flattened into the same UI shape the server returns.
func (s *serviceImpl) GetTripsByStatus(ctx context.Context, status string) (trips []dto.Trip, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetTripsByStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelOnlineAttributeKey, s.monitor.Online())

	if !s.monitor.Online() {
		rows, err := s.repo.GetByStatus(ctx, status)
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("failed to read local bookings")

			return nil, err
		}

		return dto.TripsFromModels(rows), nil
	}

	res, err := s.gateway.GetBookingsByStatus(ctx, status)
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to get bookings remotely")

		return nil, err
	}

	rows := make([]model.Booking, len(res.Data))
	for i := range res.Data {
		rows[i] = res.Data[i].ToModel()
	}

	return dto.TripsFromModels(rows), nil
}

// Checkout charges the booking remotely and advances the local mirror to
// SOON. A missing local row is tolerated: the booking may never have been
// mirrored on this device.
func (s *serviceImpl) Checkout(ctx context.Context, bookingID int64) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.gateway.Checkout(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Int64("bookingID", bookingID).Msg("failed to check out booking")

		return res, err
	}

	if err = s.mirrorStatus(ctx, bookingID, constant.BookingStatusSoon); err != nil {
		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, bookingID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.gateway.CancelBooking(ctx, bookingID); err != nil {
		log.Error().Err(err).Int64("bookingID", bookingID).Msg("failed to cancel booking")

		return err
	}

	return s.mirrorStatus(ctx, bookingID, constant.BookingStatusCancelled)
}

func (s *serviceImpl) mirrorStatus(ctx context.Context, bookingID int64, status string) error {
	err := s.repo.UpdateStatus(ctx, bookingID, status)
	if err == nil {
		return nil
	}

	if failure.IsKind(err, failure.KindNotFound) {
		log.Warn().Int64("bookingID", bookingID).Str("status", status).Msg("booking not mirrored locally, skipping status update")

		return nil
	}

	log.Error().Err(err).Int64("bookingID", bookingID).Msg("failed to mirror booking status")

	return fmt.Errorf("mirroring booking status: %w", err)
}
