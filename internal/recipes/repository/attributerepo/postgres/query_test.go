package postgres

import (
	"testing"

	"github.com/Leopold1975/recipes/internal/recipes/repository/attributerepo"
	"github.com/stretchr/testify/require"
)

func TestListQuery(t *testing.T) {
	query, args, err := listQuery(attributerepo.Tags, attributerepo.ListRequest{UserID: 7}).ToSql()
	require.NoError(t, err)
	require.Equal(t,
		"SELECT a.id, a.user_id, a.name FROM tags a WHERE a.user_id = $1 ORDER BY a.name DESC, a.id DESC",
		query)
	require.Equal(t, []any{int64(7)}, args)
}

func TestListQueryAssignedOnly(t *testing.T) {
	query, args, err := listQuery(attributerepo.Ingredients,
		attributerepo.ListRequest{UserID: 7, AssignedOnly: true}).ToSql()
	require.NoError(t, err)
	require.Equal(t,
		"SELECT DISTINCT a.id, a.user_id, a.name FROM ingredients a "+
			"JOIN recipe_ingredients l ON l.ingredient_id = a.id "+
			"JOIN recipes r ON r.id = l.recipe_id "+
			"WHERE a.user_id = $1 AND r.user_id = $2 ORDER BY a.name DESC, a.id DESC",
		query)
	require.Equal(t, []any{int64(7), int64(7)}, args)
}
