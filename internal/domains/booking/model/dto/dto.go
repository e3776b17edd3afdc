package dto

import (
	"time"

	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/pricing"
	"innkeep/internal/domains/booking/roster"
	"innkeep/internal/domains/payment/reconcile"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AdultGuestRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"omitempty,max=32"`
}

func (a *AdultGuestRequest) ToRosterGuest() roster.AdultGuest {
	return roster.AdultGuest{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Phone:     a.Phone,
	}
}

type ChildGuestRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Email     string `json:"email"      validate:"omitempty,email"`
	Phone     string `json:"phone"      validate:"omitempty,max=32"`
}

func (c *ChildGuestRequest) ToRosterGuest() roster.ChildGuest {
	return roster.ChildGuest{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

type QuoteRequest struct {
	RoomID    string   `json:"room_id"    validate:"required,uuid"`
	StartDate string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string   `json:"end_date"   validate:"required,datetime=2006-01-02"`
	NumRooms  int      `json:"num_rooms"  validate:"required,min=1"`
	MealIDs   []string `json:"meal_ids"   validate:"omitempty,dive,uuid"`
}

type CreateBookingRequest struct {
	RoomID      string              `json:"room_id"      validate:"required,uuid"`
	StartDate   string              `json:"start_date"   validate:"required,datetime=2006-01-02"`
	EndDate     string              `json:"end_date"     validate:"required,datetime=2006-01-02"`
	NumAdults   int                 `json:"num_adults"   validate:"required,min=1"`
	NumChildren int                 `json:"num_children" validate:"min=0"`
	NumRooms    int                 `json:"num_rooms"    validate:"required,min=1"`
	IncludeSelf bool                `json:"include_self"`
	Adults      []AdultGuestRequest `json:"adults"       validate:"omitempty,dive"`
	Children    []ChildGuestRequest `json:"children"     validate:"omitempty,dive"`
	MealIDs     []string            `json:"meal_ids"     validate:"omitempty,dive,uuid"`
}

func (c *CreateBookingRequest) ToModel(userID string, startDate, endDate time.Time, totalPrice decimal.Decimal) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		UserID:      userID,
		StartDate:   startDate,
		EndDate:     endDate,
		NumAdults:   c.NumAdults,
		NumChildren: c.NumChildren,
		NumRooms:    c.NumRooms,
		Status:      model.StatusPending,
		TotalPrice:  totalPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateBookingRequest struct {
	RoomID      string `db:"room_id"      json:"room_id"      validate:"omitempty,uuid"`
	StartDate   string `db:"start_date"   json:"start_date"   validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `db:"end_date"     json:"end_date"     validate:"omitempty,datetime=2006-01-02"`
	NumAdults   *int   `db:"num_adults"   json:"num_adults"   validate:"omitempty,min=1"`
	NumChildren *int   `db:"num_children" json:"num_children" validate:"omitempty,min=0"`
	NumRooms    *int   `db:"num_rooms"    json:"num_rooms"    validate:"omitempty,min=1"`
	Status      string `db:"status"       json:"status"       validate:"omitempty,oneof=Pending Confirmed Cancelled"`
}

type BookingResponse struct {
	ID          string          `json:"id"`
	RoomID      string          `json:"room_id"`
	UserID      string          `json:"user_id"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Nights      int             `json:"nights"`
	NumAdults   int             `json:"num_adults"`
	NumChildren int             `json:"num_children"`
	NumRooms    int             `json:"num_rooms"`
	Status      string          `json:"status"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Nights = model.Nights()
	r.NumAdults = model.NumAdults
	r.NumChildren = model.NumChildren
	r.NumRooms = model.NumRooms
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type QuoteResponse struct {
	Nights int `json:"nights"`
	pricing.Quote
}

type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Quote   pricing.Quote   `json:"quote"`
}

type MyBookingResponse struct {
	Booking BookingResponse   `json:"booking"`
	Payment reconcile.Summary `json:"payment"`
}

type GetMyBookingsResponse struct {
	Bookings []MyBookingResponse `json:"bookings"`
}

type ReceiptLine struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type ReceiptResponse struct {
	BookingID  string          `json:"booking_id"`
	IssuedAt   string          `json:"issued_at"`
	Lines      []ReceiptLine   `json:"lines"`
	VAT        decimal.Decimal `json:"vat"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
}
