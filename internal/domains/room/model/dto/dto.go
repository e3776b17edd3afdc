package dto

import (
	"mime/multipart"

	"innkeep/internal/domains/room/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomNumber       string                `json:"room_number"       validate:"required,max=16"`
	RoomType         string                `json:"room_type"         validate:"required,max=100"`
	BedType          string                `json:"bed_type"          validate:"required,oneof=Single Double 'Two Singles'"`
	CapacityAdults   int                   `json:"capacity_adults"   validate:"required,min=1"`
	CapacityChildren int                   `json:"capacity_children" validate:"min=0"`
	PricePerNight    decimal.Decimal       `json:"price_per_night"   validate:"required"`
	IsAvailable      *bool                 `json:"is_available"      validate:"omitempty"`
	Description      string                `json:"description"       validate:"omitempty"`
	Image            *multipart.FileHeader `json:"image"             validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile        multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Room{
		ID:               uuid.NewString(),
		RoomNumber:       c.RoomNumber,
		RoomType:         c.RoomType,
		BedType:          c.BedType,
		CapacityAdults:   c.CapacityAdults,
		CapacityChildren: c.CapacityChildren,
		PricePerNight:    c.PricePerNight,
		IsAvailable:      available,
		Description:      c.Description,
		ImageURL:         imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber       string                `db:"room_number"       json:"room_number"       validate:"omitempty,max=16"`
	RoomType         string                `db:"room_type"         json:"room_type"         validate:"omitempty,max=100"`
	BedType          string                `db:"bed_type"          json:"bed_type"          validate:"omitempty,oneof=Single Double 'Two Singles'"`
	CapacityAdults   *int                  `db:"capacity_adults"   json:"capacity_adults"   validate:"omitempty,min=1"`
	CapacityChildren *int                  `db:"capacity_children" json:"capacity_children" validate:"omitempty,min=0"`
	PricePerNight    *decimal.Decimal      `db:"price_per_night"   json:"price_per_night"   validate:"omitempty"`
	IsAvailable      *bool                 `db:"is_available"      json:"is_available"      validate:"omitempty"`
	Description      *string               `db:"description"       json:"description"       validate:"omitempty"`
	Image            *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile        multipart.File        `json:"-"`
}

type SearchRoomsRequest struct {
	CheckIn  string `json:"checkin"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkout" validate:"required,datetime=2006-01-02"`
	Adults   int    `json:"adults"   validate:"required,min=1"`
	Children int    `json:"children" validate:"min=0"`
}

type RoomResponse struct {
	ID               string          `json:"id"`
	RoomNumber       string          `json:"room_number"`
	RoomType         string          `json:"room_type"`
	BedType          string          `json:"bed_type"`
	CapacityAdults   int             `json:"capacity_adults"`
	CapacityChildren int             `json:"capacity_children"`
	PricePerNight    decimal.Decimal `json:"price_per_night"`
	IsAvailable      bool            `json:"is_available"`
	Description      string          `json:"description"`
	ImageURL         string          `json:"image_url"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.BedType = model.BedType
	r.CapacityAdults = model.CapacityAdults
	r.CapacityChildren = model.CapacityChildren
	r.PricePerNight = model.PricePerNight
	r.IsAvailable = model.IsAvailable
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type SearchRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *SearchRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
