package dto

import (
	"innkeep/internal/domains/meal/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateMealRequest struct {
	Name        string          `json:"name"        validate:"required,max=100"`
	Description string          `json:"description" validate:"omitempty"`
	Price       decimal.Decimal `json:"price"       validate:"required"`
}

func (c *CreateMealRequest) ToModel(user string) model.Meal {
	return model.Meal{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMealRequest struct {
	Name        string           `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description *string          `db:"description" json:"description" validate:"omitempty"`
	Price       *decimal.Decimal `db:"price"       json:"price"       validate:"omitempty"`
}

type MealResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	gDto.Metadata
}

func (r *MealResponse) FromModel(model model.Meal) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Metadata.FromModel(model.Metadata)
}

type GetMealsResponse struct {
	Meals     []MealResponse `json:"meals"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetMealsResponse) FromModels(models []model.Meal, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Meals = make([]MealResponse, len(models))
	for i, mod := range models {
		r.Meals[i].FromModel(mod)
	}
}
