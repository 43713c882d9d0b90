package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Auth=MockAuthRepository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"innsync/infras/otel"
	"innsync/infras/sqlite"
	bookingRepo "innsync/internal/domains/booking/repository"
	hotelRepo "innsync/internal/domains/hotel/repository"
	"innsync/shared/constant"
)

type Auth interface {
	ClearLocalData(ctx context.Context) error
}

type repositoryImpl struct {
	db       *sqlite.Handle
	bookings bookingRepo.Booking
	hotels   hotelRepo.Hotel
	otel     otel.Otel
}

func New(db *sqlite.Handle, bookings bookingRepo.Booking, hotels hotelRepo.Hotel, otel otel.Otel) Auth {
	return &repositoryImpl{
		db:       db,
		bookings: bookings,
		hotels:   hotels,
		otel:     otel,
	}
}

// ClearLocalData wipes the per-user mirrors (bookings and liked hotels) in a
// single transaction. Reference data (cities) and the hotel cache stay.
func (r *repositoryImpl) ClearLocalData(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".auth.ClearLocalData")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.bookings.Clear(ctx, tx); err != nil {
			return err
		}

		return r.hotels.ClearLiked(ctx, tx)
	})
}
