package attributeservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/Leopold1975/recipes/internal/pkg/validation"
	"github.com/Leopold1975/recipes/internal/recipes/domain/models"
	"github.com/Leopold1975/recipes/internal/recipes/repository/attributerepo"
	"github.com/Leopold1975/recipes/pkg/logger"
)

// AttributeService manages one kind of recipe attribute, tags or ingredients,
// always on behalf of an explicit owner.
type AttributeService struct {
	repo      Repository
	validator *validation.Validator
	lg        logger.Logger
}

type Repository interface {
	CreateAttribute(context.Context, models.Attribute) (int64, error)
	ListAttributes(context.Context, attributerepo.ListRequest) ([]models.Attribute, error)
}

func New(repo Repository, lg logger.Logger) *AttributeService {
	return &AttributeService{
		repo:      repo,
		validator: validation.New(),
		lg:        lg,
	}
}

func (as *AttributeService) ListAttributes(ctx context.Context,
	userID int64, assignedOnly bool,
) ([]models.Attribute, error) {
	attrs, err := as.repo.ListAttributes(ctx, attributerepo.ListRequest{
		UserID:       userID,
		AssignedOnly: assignedOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("list attributes error: %w", err)
	}

	return attrs, nil
}

func (as *AttributeService) CreateAttribute(ctx context.Context,
	userID int64, req CreateAttributeRequest,
) (models.Attribute, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := as.validator.Validate(req); err != nil {
		return models.Attribute{}, err
	}

	a := models.Attribute{
		UserID: userID,
		Name:   req.Name,
	}

	id, err := as.repo.CreateAttribute(ctx, a)
	if err != nil {
		return models.Attribute{}, fmt.Errorf("create attribute error: %w", err)
	}

	a.ID = id

	as.lg.Debugf("user %d created %q with id %d", userID, a.Name, id)

	return a, nil
}
