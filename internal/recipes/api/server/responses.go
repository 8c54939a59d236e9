package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Leopold1975/recipes/internal/recipes/api/oapi"
	"github.com/Leopold1975/recipes/internal/recipes/domain/models"
)

func toUser(u models.User) oapi.User {
	return oapi.User{
		Email: u.Email,
		Name:  u.Name,
	}
}

func toAttribute(a models.Attribute) oapi.Attribute {
	return oapi.Attribute{
		Id:   a.ID,
		Name: a.Name,
	}
}

func toAttributes(attrs []models.Attribute) []oapi.Attribute {
	resp := make([]oapi.Attribute, 0, len(attrs))
	for _, a := range attrs {
		resp = append(resp, toAttribute(a))
	}

	return resp
}

// toRecipe is the list shape: relations as id lists.
func toRecipe(r models.Recipe) oapi.Recipe {
	return oapi.Recipe{
		Id:          r.ID,
		Title:       r.Title,
		Price:       r.Price,
		TimeMinutes: r.TimeMinutes,
		Description: r.Description,
		PictureLink: r.PictureLink,
		Tags:        r.TagIDs(),
		Ingredients: r.IngredientIDs(),
	}
}

func toRecipes(recipes []models.Recipe) []oapi.Recipe {
	resp := make([]oapi.Recipe, 0, len(recipes))
	for _, r := range recipes {
		resp = append(resp, toRecipe(r))
	}

	return resp
}

// toRecipeDetail nests the related tags and ingredients.
func toRecipeDetail(r models.Recipe) oapi.RecipeDetail {
	return oapi.RecipeDetail{
		Id:          r.ID,
		Title:       r.Title,
		Price:       r.Price,
		TimeMinutes: r.TimeMinutes,
		Description: r.Description,
		PictureLink: r.PictureLink,
		Tags:        toAttributes(r.Tags),
		Ingredients: toAttributes(r.Ingredients),
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		handleError(w, fmt.Errorf("encode error: %w", err), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(b) //nolint:errcheck
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %s", ErrDecode, err.Error())
	}

	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
