package postgres

import (
	"context"
	"fmt"

	"github.com/Leopold1975/recipes/internal/pkg/pgtools"
	"github.com/Leopold1975/recipes/internal/recipes/domain/models"
	"github.com/Leopold1975/recipes/internal/recipes/repository/attributerepo"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AttributesPostgresRepo serves either tags or ingredients, depending on the
// kind it was created with.
type AttributesPostgresRepo struct {
	db   *pgxpool.Pool
	kind attributerepo.Kind
}

func New(db *pgxpool.Pool, kind attributerepo.Kind) AttributesPostgresRepo {
	return AttributesPostgresRepo{
		db:   db,
		kind: kind,
	}
}

func (ar AttributesPostgresRepo) CreateAttribute(ctx context.Context, //nolint:nonamedreturns
	a models.Attribute,
) (id int64, err error) {
	tx, err := ar.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "create")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert(ar.kind.Table).
		Columns("user_id", "name").
		Values(a.UserID, a.Name).
		Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("to sql error: %w", err)
	}

	if err = tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("scan error: %w", err)
	}

	return id, nil
}

// ListAttributes returns the user's rows ordered by name descending. With
// AssignedOnly set only rows linked to at least one of the user's recipes are
// returned, each once.
func (ar AttributesPostgresRepo) ListAttributes(ctx context.Context,
	req attributerepo.ListRequest,
) ([]models.Attribute, error) {
	query, args, err := listQuery(ar.kind, req).ToSql()
	if err != nil {
		return nil, fmt.Errorf("to sql error: %w", err)
	}

	rows, err := ar.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	attrs := make([]models.Attribute, 0, 10) //nolint:gomnd

	for rows.Next() {
		var a models.Attribute

		if err := rows.Scan(&a.ID, &a.UserID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}

		attrs = append(attrs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return attrs, nil
}

// listQuery de-duplicates assigned rows in SQL with DISTINCT over the link join.
func listQuery(kind attributerepo.Kind, req attributerepo.ListRequest) squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	sb := psql.Select("a.id", "a.user_id", "a.name").
		From(kind.Table + " a").
		Where(squirrel.Eq{"a.user_id": req.UserID}).
		OrderBy("a.name DESC", "a.id DESC")

	if req.AssignedOnly {
		sb = sb.Distinct().
			Join(fmt.Sprintf("%s l ON l.%s = a.id", kind.LinkTable, kind.LinkColumn)).
			Join("recipes r ON r.id = l.recipe_id").
			Where(squirrel.Eq{"r.user_id": req.UserID})
	}

	return sb
}
