package model

import (
	"time"

	"innkeep/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldUserID      = "user_id"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldNumAdults   = "num_adults"
	FieldNumChildren = "num_children"
	FieldNumRooms    = "num_rooms"
	FieldStatus      = "status"
	FieldTotalPrice  = "total_price"
)

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

const (
	GuestTableName  = "booking_guests"
	GuestEntityName = "booking_guest"

	GuestFieldID        = "id"
	GuestFieldBookingID = "booking_id"
	GuestFieldGuestID   = "guest_id"
	GuestFieldIsChild   = "is_child"
)

const (
	MealPrefTableName  = "meal_preferences"
	MealPrefEntityName = "meal_preference"

	MealPrefFieldID        = "id"
	MealPrefFieldBookingID = "booking_id"
	MealPrefFieldMealID    = "meal_id"
	MealPrefFieldSelected  = "selected"
)

type Booking struct {
	ID          string          `db:"id"`
	RoomID      string          `db:"room_id"`
	UserID      string          `db:"user_id"`
	StartDate   time.Time       `db:"start_date"`
	EndDate     time.Time       `db:"end_date"`
	NumAdults   int             `db:"num_adults"`
	NumChildren int             `db:"num_children"`
	NumRooms    int             `db:"num_rooms"`
	Status      string          `db:"status"`
	TotalPrice  decimal.Decimal `db:"total_price"`
	model.Metadata
}

// Nights returns the number of nights in the half-open [StartDate, EndDate) range.
func (b *Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

type BookingGuest struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	GuestID   string `db:"guest_id"`
	IsChild   bool   `db:"is_child"`
	model.Metadata
}

type MealPreference struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	MealID    string `db:"meal_id"`
	Selected  bool   `db:"selected"`
	model.Metadata
}
