package attributeservice_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/Leopold1975/recipes/internal/pkg/validation"
	"github.com/Leopold1975/recipes/internal/recipes/domain/models"
	"github.com/Leopold1975/recipes/internal/recipes/repository/attributerepo"
	"github.com/Leopold1975/recipes/internal/recipes/services/attributeservice"
	"github.com/Leopold1975/recipes/pkg/logger"
	"github.com/stretchr/testify/require"
)

// memRepo mimics the postgres repository: rows per owner, name descending,
// assigned rows taken from a set of linked ids.
type memRepo struct {
	attrs    []models.Attribute
	assigned map[int64]bool
	next     int64
}

func (m *memRepo) CreateAttribute(_ context.Context, a models.Attribute) (int64, error) {
	m.next++
	a.ID = m.next
	m.attrs = append(m.attrs, a)

	return a.ID, nil
}

func (m *memRepo) ListAttributes(_ context.Context, req attributerepo.ListRequest) ([]models.Attribute, error) {
	var out []models.Attribute

	for _, a := range m.attrs {
		if a.UserID != req.UserID {
			continue
		}

		if req.AssignedOnly && !m.assigned[a.ID] {
			continue
		}

		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })

	return out, nil
}

func TestCreateAttribute(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	svc := attributeservice.New(repo, logger.NewNop())

	a, err := svc.CreateAttribute(ctx, 1, attributeservice.CreateAttributeRequest{Name: "  Cheesy "})
	require.NoError(t, err)
	require.Equal(t, int64(1), a.ID)
	require.Equal(t, "Cheesy", a.Name)
	require.Equal(t, int64(1), a.UserID)
	require.Len(t, repo.attrs, 1)
}

func TestCreateAttributeInvalid(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	svc := attributeservice.New(repo, logger.NewNop())

	for _, name := range []string{"", "   "} {
		_, err := svc.CreateAttribute(ctx, 1, attributeservice.CreateAttributeRequest{Name: name})

		var verr *validation.Error
		require.True(t, errors.As(err, &verr))
		require.Contains(t, verr.Fields, "name")
	}

	require.Empty(t, repo.attrs, "nothing is persisted for a blank name")
}

func TestListAttributes(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{assigned: map[int64]bool{}}
	svc := attributeservice.New(repo, logger.NewNop())

	for _, name := range []string{"Vegan", "Desert"} {
		_, err := svc.CreateAttribute(ctx, 1, attributeservice.CreateAttributeRequest{Name: name})
		require.NoError(t, err)
	}

	_, err := svc.CreateAttribute(ctx, 2, attributeservice.CreateAttributeRequest{Name: "Fruity"})
	require.NoError(t, err)

	attrs, err := svc.ListAttributes(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	require.Equal(t, "Vegan", attrs[0].Name)
	require.Equal(t, "Desert", attrs[1].Name)

	repo.assigned[2] = true

	attrs, err = svc.ListAttributes(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, attrs, 1)
	require.Equal(t, "Desert", attrs[0].Name)
}
