package attributerepo

// Kind names the table an attribute repository works on and the link table
// joining it to recipes.
type Kind struct {
	Table      string
	LinkTable  string
	LinkColumn string
}

var (
	Tags = Kind{
		Table:      "tags",
		LinkTable:  "recipe_tags",
		LinkColumn: "tag_id",
	}
	Ingredients = Kind{
		Table:      "ingredients",
		LinkTable:  "recipe_ingredients",
		LinkColumn: "ingredient_id",
	}
)

type ListRequest struct {
	UserID       int64
	AssignedOnly bool
}
