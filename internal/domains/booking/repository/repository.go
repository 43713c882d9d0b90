package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Booking=MockBookingRepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"innsync/infras/otel"
	"innsync/infras/sqlite"
	"innsync/internal/domains/booking/model"
	"innsync/shared/constant"
	"innsync/shared/failure"
)

type Booking interface {
	Upsert(ctx context.Context, booking model.Booking) error
	GetByID(ctx context.Context, id int64) (model.Booking, error)
	GetByStatus(ctx context.Context, status string) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Clear(ctx context.Context, tx *sqlx.Tx) error
}

type repositoryImpl struct {
	db   *sqlite.Handle
	otel otel.Otel
}

func New(db *sqlite.Handle, otel otel.Otel) Booking {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// Upsert mirrors one remote booking row locally. Re-mirroring an existing
// booking overwrites the previous snapshot.
func (r *repositoryImpl) Upsert(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	db, err := r.db.Conn()
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO booking (
		b_id, email, b_no_room, b_start, b_end, status, total,
		h_id, h_name, h_address, h_lat, h_lng, h_img, h_rating,
		r_id, r_name, r_bed, r_no_adult, r_no_child, r_price, r_size, r_img
	) VALUES (
		:b_id, :email, :b_no_room, :b_start, :b_end, :status, :total,
		:h_id, :h_name, :h_address, :h_lat, :h_lng, :h_img, :h_rating,
		:r_id, :r_name, :r_bed, :r_no_adult, :r_no_child, :r_price, :r_size, :r_img
	)`

	if _, err = db.NamedExecContext(ctx, query, booking); err != nil {
		return failure.InternalError(fmt.Errorf("upserting booking %d: %w", booking.ID, err)) // nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) GetByID(ctx context.Context, id int64) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	db, err := r.db.Conn()
	if err != nil {
		return booking, err
	}

	err = db.GetContext(ctx, &booking, `SELECT * FROM booking WHERE b_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if err != nil {
		return booking, failure.InternalError(fmt.Errorf("getting booking %d: %w", id, err)) // nolint:wrapcheck
	}

	return booking, nil
}

// GetByStatus lists mirrored bookings. The ALL sentinel bypasses the status
// predicate.
func (r *repositoryImpl) GetByStatus(ctx context.Context, status string) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	db, err := r.db.Conn()
	if err != nil {
		return nil, err
	}

	if status == constant.BookingStatusAll {
		err = db.SelectContext(ctx, &bookings, `SELECT * FROM booking ORDER BY b_start`)
	} else {
		err = db.SelectContext(ctx, &bookings, `SELECT * FROM booking WHERE status = ? ORDER BY b_start`, status)
	}

	if err != nil {
		return nil, failure.InternalError(fmt.Errorf("listing bookings by status %s: %w", status, err)) // nolint:wrapcheck
	}

	return bookings, nil
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, id int64, status string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	db, err := r.db.Conn()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `UPDATE booking SET status = ? WHERE b_id = ?`, status, id)
	if err != nil {
		return failure.InternalError(fmt.Errorf("updating booking %d status: %w", id, err)) // nolint:wrapcheck
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return failure.InternalError(fmt.Errorf("reading affected rows: %w", err)) // nolint:wrapcheck
	}

	if affected == 0 {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	return nil
}

// Clear wipes the booking mirror inside the caller's transaction, so logout
// clears bookings and likes atomically.
func (r *repositoryImpl) Clear(ctx context.Context, tx *sqlx.Tx) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Clear")
	defer scope.End()

	if _, err := tx.ExecContext(ctx, `DELETE FROM booking`); err != nil {
		scope.TraceError(err)

		return failure.InternalError(fmt.Errorf("clearing bookings: %w", err)) // nolint:wrapcheck
	}

	return nil
}
