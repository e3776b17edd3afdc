package model

import (
	"innkeep/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
)

type Guest struct {
	ID        string  `db:"id"`
	UserID    *string `db:"user_id"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Email     string  `db:"email"`
	Phone     string  `db:"phone"`
	model.Metadata
}
