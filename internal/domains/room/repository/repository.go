package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	bookingModel "innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/room/model"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/logger"
	gRepo "innkeep/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindAvailable(ctx context.Context, checkIn, checkOut time.Time, adults, children int) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindAvailable lists rooms that fit the requested party and have no
// confirmed booking overlapping the half-open [checkIn, checkOut) range.
func (repo *repositoryImpl) FindAvailable(ctx context.Context, checkIn, checkOut time.Time, adults, children int) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.FindAvailable")
	defer scope.End()

	query := `SELECT rooms.id, rooms.room_number, rooms.room_type, rooms.bed_type,
		rooms.capacity_adults, rooms.capacity_children, rooms.price_per_night,
		rooms.is_available, rooms.description, rooms.image_url,
		rooms.created_at, rooms.modified_at, rooms.created_by, rooms.modified_by
	FROM rooms
	WHERE rooms.is_available = TRUE
		AND rooms.capacity_adults >= :adults
		AND rooms.capacity_children >= :children
		AND NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE bookings.room_id = rooms.id
				AND bookings.status = :status
				AND bookings.start_date < :checkout
				AND bookings.end_date > :checkin
		)
	ORDER BY rooms.room_number ASC`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"adults":   adults,
		"children": children,
		"status":   bookingModel.StatusConfirmed,
		"checkin":  checkIn,
		"checkout": checkOut,
	}

	var rooms []model.Room

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &rooms, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to find available rooms: %w", err)
	}

	return rooms, nil
}
