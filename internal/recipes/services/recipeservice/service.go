package recipeservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Leopold1975/recipes/internal/pkg/validation"
	"github.com/Leopold1975/recipes/internal/recipes/domain/models"
	"github.com/Leopold1975/recipes/internal/recipes/repository/imagestore"
	repo "github.com/Leopold1975/recipes/internal/recipes/repository/reciperepo"
	"github.com/Leopold1975/recipes/pkg/logger"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrNotFound = errors.New("recipe not found")

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

type RecipeService struct {
	recipeRepo Repository
	images     ImageStore
	validator  *validation.Validator
	lg         logger.Logger
}

type Repository interface {
	CreateRecipe(context.Context, models.Recipe) (int64, error)
	UpdateRecipe(context.Context, models.Recipe) error
	UpdatePicture(ctx context.Context, userID, recipeID int64, link string) error
	DeleteRecipe(ctx context.Context, userID, recipeID int64) error
	GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	ListRecipes(context.Context, repo.GetRecipesRequest) ([]models.Recipe, error)
}

type ImageStore interface {
	PutImage(ctx context.Context, key, contentType string, body io.ReadSeeker, size int64) (string, error)
}

// New creates the service. images may be nil when no storage is configured.
func New(recipeRepo Repository, images ImageStore, lg logger.Logger) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		images:     images,
		validator:  validation.New(),
		lg:         lg,
	}
}

func (rs *RecipeService) ListRecipes(ctx context.Context,
	userID int64, req ListRecipesRequest,
) ([]models.Recipe, error) {
	recipes, err := rs.recipeRepo.ListRecipes(ctx, repo.GetRecipesRequest{
		UserID:        userID,
		TagIDs:        req.TagIDs,
		IngredientIDs: req.IngredientIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("list recipes error: %w", err)
	}

	return recipes, nil
}

func (rs *RecipeService) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	r, err := rs.recipeRepo.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Recipe{}, ErrNotFound
		}

		return models.Recipe{}, fmt.Errorf("get recipe error: %w", err)
	}

	return r, nil
}

func (rs *RecipeService) CreateRecipe(ctx context.Context, userID int64, req RecipeRequest) (models.Recipe, error) {
	r := models.Recipe{UserID: userID} //nolint:exhaustruct

	if err := rs.apply(&r, req); err != nil {
		return models.Recipe{}, err
	}

	id, err := rs.recipeRepo.CreateRecipe(ctx, r)
	if err != nil {
		return models.Recipe{}, translate(err, "create recipe")
	}

	return rs.GetRecipe(ctx, userID, id)
}

// UpdateRecipe replaces the recipe with req. Both relations are replaced.
func (rs *RecipeService) UpdateRecipe(ctx context.Context,
	userID, recipeID int64, req RecipeRequest,
) (models.Recipe, error) {
	r, err := rs.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return models.Recipe{}, err
	}

	if err := rs.apply(&r, req); err != nil {
		return models.Recipe{}, err
	}

	if err := rs.recipeRepo.UpdateRecipe(ctx, r); err != nil {
		return models.Recipe{}, translate(err, "update recipe")
	}

	return rs.GetRecipe(ctx, userID, recipeID)
}

// PatchRecipe overlays the given fields on the stored recipe and validates
// the result as a whole.
func (rs *RecipeService) PatchRecipe(ctx context.Context,
	userID, recipeID int64, req PatchRecipeRequest,
) (models.Recipe, error) {
	r, err := rs.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return models.Recipe{}, err
	}

	full := RecipeRequest{
		Title:       r.Title,
		Price:       r.Price,
		TimeMinutes: &r.TimeMinutes,
		Description: req.Description,
		PictureLink: req.PictureLink,
		Tags:        r.TagIDs(),
		Ingredients: r.IngredientIDs(),
	}

	if req.Title != nil {
		full.Title = *req.Title
	}

	if req.Price != nil {
		full.Price = *req.Price
	}

	if req.TimeMinutes != nil {
		full.TimeMinutes = req.TimeMinutes
	}

	if req.Tags != nil {
		full.Tags = *req.Tags
	}

	if req.Ingredients != nil {
		full.Ingredients = *req.Ingredients
	}

	if err := rs.apply(&r, full); err != nil {
		return models.Recipe{}, err
	}

	if err := rs.recipeRepo.UpdateRecipe(ctx, r); err != nil {
		return models.Recipe{}, translate(err, "update recipe")
	}

	return rs.GetRecipe(ctx, userID, recipeID)
}

func (rs *RecipeService) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	if err := rs.recipeRepo.DeleteRecipe(ctx, userID, recipeID); err != nil {
		return translate(err, "delete recipe")
	}

	return nil
}

// UploadImage stores the picture of size bytes and points the recipe's
// picture_link at it.
func (rs *RecipeService) UploadImage(ctx context.Context,
	userID, recipeID int64, contentType string, body io.ReadSeeker, size int64,
) (models.Recipe, error) {
	if rs.images == nil {
		return models.Recipe{}, imagestore.ErrDisabled
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		return models.Recipe{}, validation.FieldError("image", "upload a valid image")
	}

	r, err := rs.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return models.Recipe{}, err
	}

	name, err := gonanoid.New()
	if err != nil {
		return models.Recipe{}, fmt.Errorf("generate image name error: %w", err)
	}

	key := fmt.Sprintf("recipes/%d/%d/%s.%s", userID, recipeID, name, ext)

	link, err := rs.images.PutImage(ctx, key, contentType, body, size)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("put image error: %w", err)
	}

	if err := rs.recipeRepo.UpdatePicture(ctx, userID, recipeID, link); err != nil {
		return models.Recipe{}, translate(err, "update picture")
	}

	rs.lg.Infof("stored picture %s for recipe %d", key, recipeID)

	r.PictureLink = link

	return r, nil
}

// apply validates req and copies it onto r.
func (rs *RecipeService) apply(r *models.Recipe, req RecipeRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Price = strings.TrimSpace(req.Price)

	if err := rs.validator.Validate(req); err != nil {
		return err
	}

	r.Title = req.Title
	r.Price = req.Price
	r.TimeMinutes = *req.TimeMinutes
	r.Tags = models.AttributesFromIDs(req.Tags)
	r.Ingredients = models.AttributesFromIDs(req.Ingredients)

	if req.Description != nil {
		r.Description = *req.Description
	}

	if req.PictureLink != nil {
		r.PictureLink = *req.PictureLink
	}

	return nil
}

func translate(err error, op string) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}

	var refErr *repo.ReferenceError
	if errors.As(err, &refErr) {
		ids := make([]string, 0, len(refErr.IDs))
		for _, id := range refErr.IDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}

		return validation.FieldError(refErr.Field,
			fmt.Sprintf("invalid id %s: object does not exist", strings.Join(ids, ", ")))
	}

	return fmt.Errorf("%s error: %w", op, err)
}
