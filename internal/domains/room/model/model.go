package model

import (
	"innkeep/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID               = "id"
	FieldRoomNumber       = "room_number"
	FieldRoomType         = "room_type"
	FieldBedType          = "bed_type"
	FieldCapacityAdults   = "capacity_adults"
	FieldCapacityChildren = "capacity_children"
	FieldPricePerNight    = "price_per_night"
	FieldIsAvailable      = "is_available"
	FieldDescription      = "description"
	FieldImageURL         = "image_url"
)

const (
	BedTypeSingle     = "Single"
	BedTypeDouble     = "Double"
	BedTypeTwoSingles = "Two Singles"
)

type Room struct {
	ID               string          `db:"id"`
	RoomNumber       string          `db:"room_number"`
	RoomType         string          `db:"room_type"`
	BedType          string          `db:"bed_type"`
	CapacityAdults   int             `db:"capacity_adults"`
	CapacityChildren int             `db:"capacity_children"`
	PricePerNight    decimal.Decimal `db:"price_per_night"`
	IsAvailable      bool            `db:"is_available"`
	Description      string          `db:"description"`
	ImageURL         string          `db:"image_url"`
	model.Metadata
}
