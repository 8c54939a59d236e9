package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Leopold1975/recipes/internal/pkg/pgtools"
	"github.com/Leopold1975/recipes/internal/recipes/domain/models"
	"github.com/Leopold1975/recipes/internal/recipes/repository/userrepo"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

var userColumns = []string{"id", "email", "name", "password_hash", "is_active", "is_staff", "created_at"}

type UsersPostgresRepo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) UsersPostgresRepo {
	return UsersPostgresRepo{
		db: db,
	}
}

func (ur UsersPostgresRepo) CreateUser(ctx context.Context, u models.User) (id int64, err error) { //nolint:nonamedreturns
	tx, err := ur.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "create")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert("users").
		Columns("email", "name", "password_hash", "is_active", "is_staff").
		Values(u.Email, u.Name, u.PasswordHash, u.IsActive, u.IsStaff).
		Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("to sql error: %w", err)
	}

	if err = tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		target := new(pgconn.PgError)
		if errors.As(err, &target) && target.Code == uniqueViolation {
			return 0, userrepo.ErrAlreadyExists
		}

		return 0, fmt.Errorf("scan error: %w", err)
	}

	return id, nil
}

func (ur UsersPostgresRepo) GetUser(ctx context.Context, email string) (models.User, error) {
	return ur.getUser(ctx, squirrel.Eq{"email": email})
}

func (ur UsersPostgresRepo) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return ur.getUser(ctx, squirrel.Eq{"id": id})
}

func (ur UsersPostgresRepo) getUser(ctx context.Context, where squirrel.Eq) (models.User, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Select(userColumns...).
		From("users").
		Where(where).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("to sql error: %w", err)
	}

	var u models.User

	if err := ur.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.IsActive, &u.IsStaff, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, userrepo.ErrNotFound
		}

		return models.User{}, fmt.Errorf("scan error: %w", err)
	}

	return u, nil
}

func (ur UsersPostgresRepo) UpdateUser(ctx context.Context, req userrepo.UpdateUserRequest) (err error) { //nolint:nonamedreturns
	if req.Name == nil && req.PasswordHash == nil {
		return nil
	}

	tx, err := ur.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "update")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	ub := psql.Update("users").Where(squirrel.Eq{"id": req.ID})

	if req.Name != nil {
		ub = ub.Set("name", *req.Name)
	}

	if req.PasswordHash != nil {
		ub = ub.Set("password_hash", *req.PasswordHash)
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return fmt.Errorf("to sql error: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec error: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return userrepo.ErrNotFound
	}

	return nil
}
