package models

type Recipe struct {
	ID          int64
	UserID      int64
	Title       string
	Price       string
	TimeMinutes int
	Description string
	PictureLink string
	Tags        []Tag
	Ingredients []Ingredient
}

func (r Recipe) TagIDs() []int64 {
	return attributeIDs(r.Tags)
}

func (r Recipe) IngredientIDs() []int64 {
	return attributeIDs(r.Ingredients)
}

func attributeIDs(attrs []Attribute) []int64 {
	ids := make([]int64, 0, len(attrs))
	for _, a := range attrs {
		ids = append(ids, a.ID)
	}

	return ids
}

// AttributesFromIDs builds attributes carrying only their ids, the shape
// used when a recipe is written.
func AttributesFromIDs(ids []int64) []Attribute {
	attrs := make([]Attribute, 0, len(ids))
	for _, id := range ids {
		attrs = append(attrs, Attribute{ID: id})
	}

	return attrs
}
