package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Hotel=MockHotelRepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"innsync/infras/otel"
	"innsync/infras/sqlite"
	"innsync/internal/domains/hotel/model"
	"innsync/shared/constant"
	"innsync/shared/failure"
)

type Hotel interface {
	InsertLiked(ctx context.Context, hotel model.LikedHotel) error
	DeleteLiked(ctx context.Context, id int64) error
	GetLiked(ctx context.Context) ([]model.LikedHotel, error)
	ClearLiked(ctx context.Context, tx *sqlx.Tx) error
	UpsertSummaries(ctx context.Context, summaries []model.Summary) error
	GetCities(ctx context.Context, query string) ([]model.City, error)
}

type repositoryImpl struct {
	db   *sqlite.Handle
	otel otel.Otel
}

func New(db *sqlite.Handle, otel otel.Otel) Hotel {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// InsertLiked mirrors one row of the server's likes list. Liking the same
// hotel again replaces the row instead of erroring.
func (r *repositoryImpl) InsertLiked(ctx context.Context, hotel model.LikedHotel) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.InsertLiked")
	defer scope.End()
	defer scope.TraceIfError(err)

	db, err := r.db.Conn()
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO liked_hotels (
		id, name, city, category, desc, img, lat, lng, price, rating, address, agoda_url
	) VALUES (
		:id, :name, :city, :category, :desc, :img, :lat, :lng, :price, :rating, :address, :agoda_url
	)`

	if _, err = db.NamedExecContext(ctx, query, hotel); err != nil {
		return failure.InternalError(fmt.Errorf("inserting liked hotel %d: %w", hotel.ID, err)) // nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) DeleteLiked(ctx context.Context, id int64) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.DeleteLiked")
	defer scope.End()
	defer scope.TraceIfError(err)

	db, err := r.db.Conn()
	if err != nil {
		return err
	}

	if _, err = db.ExecContext(ctx, `DELETE FROM liked_hotels WHERE id = ?`, id); err != nil {
		return failure.InternalError(fmt.Errorf("deleting liked hotel %d: %w", id, err)) // nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) GetLiked(ctx context.Context) (hotels []model.LikedHotel, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.GetLiked")
	defer scope.End()
	defer scope.TraceIfError(err)

	db, err := r.db.Conn()
	if err != nil {
		return nil, err
	}

	if err = db.SelectContext(ctx, &hotels, `SELECT * FROM liked_hotels ORDER BY id`); err != nil {
		return nil, failure.InternalError(fmt.Errorf("listing liked hotels: %w", err)) // nolint:wrapcheck
	}

	return hotels, nil
}

// ClearLiked wipes the liked mirror inside the caller's transaction.
func (r *repositoryImpl) ClearLiked(ctx context.Context, tx *sqlx.Tx) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.ClearLiked")
	defer scope.End()

	if _, err := tx.ExecContext(ctx, `DELETE FROM liked_hotels`); err != nil {
		scope.TraceError(err)

		return failure.InternalError(fmt.Errorf("clearing liked hotels: %w", err)) // nolint:wrapcheck
	}

	return nil
}

// UpsertSummaries refreshes the hotel cache from a batch of remote results in
// one transaction. The primary key keeps repeated refreshes from accumulating
// duplicate rows.
func (r *repositoryImpl) UpsertSummaries(ctx context.Context, summaries []model.Summary) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.UpsertSummaries")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(summaries) == 0 {
		return nil
	}

	query := `INSERT OR REPLACE INTO hotel (
		id, name, city, category, desc, image_url, lat, lng, price, rating
	) VALUES (
		:id, :name, :city, :category, :desc, :image_url, :lat, :lng, :price, :rating
	)`

	err = r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, summary := range summaries {
			if _, txErr := tx.NamedExecContext(ctx, query, summary); txErr != nil {
				return fmt.Errorf("upserting hotel %d: %w", summary.ID, txErr)
			}
		}

		return nil
	})
	if err != nil {
		return failure.InternalError(err) // nolint:wrapcheck
	}

	return nil
}

// GetCities serves the offline autocomplete with the same case-insensitive
// contains semantics the server uses.
func (r *repositoryImpl) GetCities(ctx context.Context, query string) (cities []model.City, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.GetCities")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	db, err := r.db.Conn()
	if err != nil {
		return nil, err
	}

	if query == constant.Empty {
		err = db.SelectContext(ctx, &cities, `SELECT * FROM city`)
	} else {
		err = db.SelectContext(ctx, &cities, `SELECT * FROM city WHERE LOWER(name) LIKE LOWER(?)`, "%"+query+"%")
	}

	if err != nil {
		return nil, failure.InternalError(fmt.Errorf("listing cities: %w", err)) // nolint:wrapcheck
	}

	return cities, nil
}
