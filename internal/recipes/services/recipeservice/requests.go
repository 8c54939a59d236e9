package recipeservice

// RecipeRequest is the write shape of a recipe: relations are plain id lists.
// Nil Description and PictureLink keep the stored values on update.
type RecipeRequest struct {
	Title       string  `json:"title"        validate:"notblank,max=255"`
	Price       string  `json:"price"        validate:"price"`
	TimeMinutes *int    `json:"time_minutes" validate:"required,gte=0"` //nolint:tagliatelle
	Description *string `json:"description"`
	PictureLink *string `json:"picture_link" validate:"omitempty,url,max=255"` //nolint:tagliatelle
	Tags        []int64 `json:"tags"         validate:"dive,gt=0"`
	Ingredients []int64 `json:"ingredients"  validate:"dive,gt=0"`
}

// PatchRecipeRequest updates only the non-nil fields.
type PatchRecipeRequest struct {
	Title       *string
	Price       *string
	TimeMinutes *int
	Description *string
	PictureLink *string
	Tags        *[]int64
	Ingredients *[]int64
}

type ListRecipesRequest struct {
	TagIDs        []int64
	IngredientIDs []int64
}
