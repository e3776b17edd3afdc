package model

import (
	"innkeep/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "meals"
	EntityName = "meal"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
)

type Meal struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	model.Metadata
}
