package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Leopold1975/recipes/internal/pkg/pgtools"
	"github.com/Leopold1975/recipes/internal/recipes/domain/models"
	"github.com/Leopold1975/recipes/internal/recipes/repository/attributerepo"
	repo "github.com/Leopold1975/recipes/internal/recipes/repository/reciperepo"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var recipeColumns = []string{
	"r.id", "r.user_id", "r.title", "r.price::text", "r.time_minutes", "r.description", "r.picture_link",
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type RecipesPostgresRepo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) RecipesPostgresRepo {
	return RecipesPostgresRepo{
		db: db,
	}
}

func (rr RecipesPostgresRepo) CreateRecipe(ctx context.Context, //nolint:nonamedreturns
	recipe models.Recipe,
) (id int64, err error) {
	tx, err := rr.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "create")
	}()

	if err = checkReferences(ctx, tx, recipe); err != nil {
		return 0, err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert("recipes").
		Columns("user_id", "title", "price", "time_minutes", "description", "picture_link").
		Values(recipe.UserID, recipe.Title, recipe.Price, recipe.TimeMinutes, recipe.Description, recipe.PictureLink).
		Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("to sql error: %w", err)
	}

	if err = tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("scan error: %w", err)
	}

	if err = insertLinks(ctx, tx, attributerepo.Tags, id, recipe.TagIDs()); err != nil {
		return 0, err
	}

	if err = insertLinks(ctx, tx, attributerepo.Ingredients, id, recipe.IngredientIDs()); err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateRecipe replaces every column and both relations of the recipe.
func (rr RecipesPostgresRepo) UpdateRecipe(ctx context.Context, recipe models.Recipe) (err error) { //nolint:nonamedreturns
	tx, err := rr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "update")
	}()

	if err = checkReferences(ctx, tx, recipe); err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Update("recipes").
		Set("title", recipe.Title).
		Set("price", recipe.Price).
		Set("time_minutes", recipe.TimeMinutes).
		Set("description", recipe.Description).
		Set("picture_link", recipe.PictureLink).
		Where(squirrel.Eq{"id": recipe.ID, "user_id": recipe.UserID}).ToSql()
	if err != nil {
		return fmt.Errorf("to sql error: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec error: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return repo.ErrNotFound
	}

	for _, kind := range []attributerepo.Kind{attributerepo.Tags, attributerepo.Ingredients} {
		query, args, err = psql.Delete(kind.LinkTable).
			Where(squirrel.Eq{"recipe_id": recipe.ID}).ToSql()
		if err != nil {
			return fmt.Errorf("to sql error: %w", err)
		}

		if _, err = tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("exec error: %w", err)
		}
	}

	if err = insertLinks(ctx, tx, attributerepo.Tags, recipe.ID, recipe.TagIDs()); err != nil {
		return err
	}

	return insertLinks(ctx, tx, attributerepo.Ingredients, recipe.ID, recipe.IngredientIDs())
}

func (rr RecipesPostgresRepo) UpdatePicture(ctx context.Context, userID, recipeID int64, link string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Update("recipes").
		Set("picture_link", link).
		Where(squirrel.Eq{"id": recipeID, "user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("to sql error: %w", err)
	}

	ct, err := rr.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec error: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (rr RecipesPostgresRepo) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Delete("recipes").
		Where(squirrel.Eq{"id": recipeID, "user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("to sql error: %w", err)
	}

	ct, err := rr.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec error: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (rr RecipesPostgresRepo) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Select(recipeColumns...).
		From("recipes r").
		Where(squirrel.Eq{"r.id": recipeID, "r.user_id": userID}).ToSql()
	if err != nil {
		return models.Recipe{}, fmt.Errorf("to sql error: %w", err)
	}

	var r models.Recipe

	err = rr.db.QueryRow(ctx, query, args...).Scan(
		&r.ID, &r.UserID, &r.Title, &r.Price, &r.TimeMinutes, &r.Description, &r.PictureLink)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Recipe{}, repo.ErrNotFound
		}

		return models.Recipe{}, fmt.Errorf("scan error: %w", err)
	}

	recipes := []models.Recipe{r}

	if err := loadRelations(ctx, rr.db, recipes); err != nil {
		return models.Recipe{}, err
	}

	return recipes[0], nil
}

// ListRecipes returns the user's recipes, newest first. Non-empty TagIDs or
// IngredientIDs keep recipes linked to any of the given ids.
func (rr RecipesPostgresRepo) ListRecipes(ctx context.Context, req repo.GetRecipesRequest) ([]models.Recipe, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	sb := psql.Select(recipeColumns...).
		From("recipes r").
		Where(squirrel.Eq{"r.user_id": req.UserID}).
		OrderBy("r.id DESC")

	if len(req.TagIDs) != 0 {
		sb = sb.Where(linkedTo(attributerepo.Tags, req.TagIDs))
	}

	if len(req.IngredientIDs) != 0 {
		sb = sb.Where(linkedTo(attributerepo.Ingredients, req.IngredientIDs))
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("to sql error: %w", err)
	}

	rows, err := rr.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0, 10) //nolint:gomnd

	for rows.Next() {
		var r models.Recipe

		err = rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Price, &r.TimeMinutes, &r.Description, &r.PictureLink)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}

		recipes = append(recipes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	rows.Close()

	if err := loadRelations(ctx, rr.db, recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

func linkedTo(kind attributerepo.Kind, ids []int64) squirrel.Sqlizer {
	return squirrel.Expr(
		fmt.Sprintf("EXISTS (SELECT 1 FROM %s l WHERE l.recipe_id = r.id AND l.%s = ANY(?))",
			kind.LinkTable, kind.LinkColumn),
		ids,
	)
}

// loadRelations fills Tags and Ingredients of every recipe with two queries.
func loadRelations(ctx context.Context, q querier, recipes []models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	index := make(map[int64]int, len(recipes))
	ids := make([]int64, 0, len(recipes))

	for i, r := range recipes {
		index[r.ID] = i
		ids = append(ids, r.ID)
		recipes[i].Tags = []models.Tag{}
		recipes[i].Ingredients = []models.Ingredient{}
	}

	for _, kind := range []attributerepo.Kind{attributerepo.Tags, attributerepo.Ingredients} {
		psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

		query, args, err := psql.Select("l.recipe_id", "a.id", "a.user_id", "a.name").
			From(kind.LinkTable + " l").
			Join(fmt.Sprintf("%s a ON a.id = l.%s", kind.Table, kind.LinkColumn)).
			Where("l.recipe_id = ANY(?)", ids).
			OrderBy("a.id ASC").ToSql()
		if err != nil {
			return fmt.Errorf("to sql error: %w", err)
		}

		if err := scanRelations(ctx, q, query, args, func(recipeID int64, a models.Attribute) {
			i := index[recipeID]
			if kind == attributerepo.Tags {
				recipes[i].Tags = append(recipes[i].Tags, a)
			} else {
				recipes[i].Ingredients = append(recipes[i].Ingredients, a)
			}
		}); err != nil {
			return err
		}
	}

	return nil
}

func scanRelations(ctx context.Context, q querier, query string, args []any,
	add func(recipeID int64, a models.Attribute),
) error {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			recipeID int64
			a        models.Attribute
		)

		if err := rows.Scan(&recipeID, &a.ID, &a.UserID, &a.Name); err != nil {
			return fmt.Errorf("scan error: %w", err)
		}

		add(recipeID, a)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows error: %w", err)
	}

	return nil
}

// checkReferences makes sure every related id exists and is owned by the
// recipe's user.
func checkReferences(ctx context.Context, tx pgx.Tx, recipe models.Recipe) error {
	relations := []struct {
		kind  attributerepo.Kind
		field string
		ids   []int64
	}{
		{attributerepo.Tags, "tags", recipe.TagIDs()},
		{attributerepo.Ingredients, "ingredients", recipe.IngredientIDs()},
	}

	for _, rel := range relations {
		if len(rel.ids) == 0 {
			continue
		}

		psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

		query, args, err := psql.Select("id").
			From(rel.kind.Table).
			Where(squirrel.Eq{"user_id": recipe.UserID}).
			Where("id = ANY(?)", rel.ids).ToSql()
		if err != nil {
			return fmt.Errorf("to sql error: %w", err)
		}

		found, err := scanIDs(ctx, tx, query, args)
		if err != nil {
			return err
		}

		var missing []int64

		for _, id := range rel.ids {
			if !slices.Contains(found, id) && !slices.Contains(missing, id) {
				missing = append(missing, id)
			}
		}

		if len(missing) != 0 {
			return &repo.ReferenceError{Field: rel.field, IDs: missing}
		}
	}

	return nil
}

func scanIDs(ctx context.Context, q querier, query string, args []any) ([]int64, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	var ids []int64

	for rows.Next() {
		var id int64

		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return ids, nil
}

func insertLinks(ctx context.Context, tx pgx.Tx, kind attributerepo.Kind, recipeID int64, ids []int64) error {
	ids = unique(ids)
	if len(ids) == 0 {
		return nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	ib := psql.Insert(kind.LinkTable).Columns("recipe_id", kind.LinkColumn)
	for _, id := range ids {
		ib = ib.Values(recipeID, id)
	}

	query, args, err := ib.ToSql()
	if err != nil {
		return fmt.Errorf("to sql error: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert %s error: %w", kind.LinkTable, err)
	}

	return nil
}

func unique(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}

	return out
}
