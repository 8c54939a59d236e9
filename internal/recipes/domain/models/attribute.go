package models

// Attribute is a user-owned label a recipe can reference. Tags and
// ingredients share this shape and live in separate tables.
type Attribute struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"-"`
	Name   string `json:"name"`
}

type (
	Tag        = Attribute
	Ingredient = Attribute
)
