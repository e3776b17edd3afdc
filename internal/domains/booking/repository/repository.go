package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/booking/model"
	gDto "innkeep/shared/dto"
	gRepo "innkeep/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	InsertGuestLinksTx(ctx context.Context, sqltx *sqlx.Tx, links []model.BookingGuest) error
	GetGuestLinks(ctx context.Context, bookingID string) ([]model.BookingGuest, error)
	InsertMealPrefsTx(ctx context.Context, sqltx *sqlx.Tx, prefs []model.MealPreference) error
	GetMealPrefs(ctx context.Context, bookingID string) ([]model.MealPreference, error)

	BeginSerializableTx(ctx context.Context) (*sqlx.Tx, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	guestLinks gRepo.Repository[model.BookingGuest]
	mealPrefs  gRepo.Repository[model.MealPreference]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		guestLinks: gRepo.NewRepository[model.BookingGuest](model.GuestEntityName, model.GuestTableName, model.GuestFieldID, db, otel),
		mealPrefs:  gRepo.NewRepository[model.MealPreference](model.MealPrefEntityName, model.MealPrefTableName, model.MealPrefFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// BeginSerializableTx opens a write transaction at serializable isolation,
// used to re-verify room availability and persist a booking atomically.
func (repo *repositoryImpl) BeginSerializableTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := repo.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to begin serializable transaction: %w", err)
	}

	return tx, nil
}

func (repo *repositoryImpl) InsertGuestLinksTx(ctx context.Context, sqltx *sqlx.Tx, links []model.BookingGuest) error {
	return repo.guestLinks.InsertBulkTx(ctx, sqltx, links)
}

func (repo *repositoryImpl) GetGuestLinks(ctx context.Context, bookingID string) ([]model.BookingGuest, error) {
	return repo.guestLinks.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Table:    model.GuestTableName,
				Field:    model.GuestFieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
			},
		},
	})
}

func (repo *repositoryImpl) InsertMealPrefsTx(ctx context.Context, sqltx *sqlx.Tx, prefs []model.MealPreference) error {
	return repo.mealPrefs.InsertBulkTx(ctx, sqltx, prefs)
}

func (repo *repositoryImpl) GetMealPrefs(ctx context.Context, bookingID string) ([]model.MealPreference, error) {
	return repo.mealPrefs.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Table:    model.MealPrefTableName,
				Field:    model.MealPrefFieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
			},
		},
	})
}
