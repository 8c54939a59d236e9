package reciperepo

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("recipe not found")
	ErrUnknownReference = errors.New("unknown reference")
)

// ReferenceError reports ids in a recipe relation that do not exist or
// belong to another user.
type ReferenceError struct {
	Field string
	IDs   []int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %v", ErrUnknownReference, e.Field, e.IDs)
}

func (e *ReferenceError) Unwrap() error {
	return ErrUnknownReference
}

type GetRecipesRequest struct {
	UserID        int64
	TagIDs        []int64
	IngredientIDs []int64
}
