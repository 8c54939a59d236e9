package authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Leopold1975/recipes/internal/pkg/config"
	"github.com/Leopold1975/recipes/internal/pkg/jwtauth"
	"github.com/Leopold1975/recipes/internal/pkg/validation"
	"github.com/Leopold1975/recipes/internal/recipes/domain/models"
	"github.com/Leopold1975/recipes/internal/recipes/repository/tokenstore"
	"github.com/Leopold1975/recipes/internal/recipes/repository/userrepo"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrUnauthenticated    = errors.New("invalid or missing token")
)

const defaultTTL = time.Hour * 24 * 30

type AuthService struct {
	userRepo   Repository
	tokenStore TokenStore
	validator  *validation.Validator
	cfg        config.Auth
}

type Repository interface {
	CreateUser(context.Context, models.User) (int64, error)
	GetUser(context.Context, string) (models.User, error)
	GetUserByID(context.Context, int64) (models.User, error)
	UpdateUser(context.Context, userrepo.UpdateUserRequest) error
}

type TokenStore interface {
	GetToken(ctx context.Context, userID int64) (string, error)
	// TouchToken returns the stored token and restarts its ttl.
	TouchToken(ctx context.Context, userID int64, ttl time.Duration) (string, error)
	// CreateToken stores token unless the user already has one and returns
	// whichever token is stored afterwards.
	CreateToken(ctx context.Context, userID int64, token string, ttl time.Duration) (string, error)
	DeleteToken(ctx context.Context, userID int64) error
}

func New(userRepo Repository, tokenStore TokenStore, cfg config.Auth) *AuthService {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}

	return &AuthService{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		validator:  validation.New(),
		cfg:        cfg,
	}
}

// NormalizeEmail lower-cases the domain part of the address.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}

	return local + "@" + strings.ToLower(domain)
}

func (as *AuthService) CreateUser(ctx context.Context, req CreateUserRequest) (models.User, error) {
	req.Email = NormalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if err := as.validator.Validate(req); err != nil {
		return models.User{}, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{ //nolint:exhaustruct
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	id, err := as.userRepo.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, userrepo.ErrAlreadyExists) {
			return models.User{}, ErrUserExists
		}

		return models.User{}, fmt.Errorf("create user error: %w", err)
	}

	u.ID = id

	return u, nil
}

// Login exchanges credentials for a token. While the user's stored token is
// live the same token is handed out again and its ttl restarts.
func (as *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	if err := as.validator.Validate(req); err != nil {
		return "", err
	}

	u, err := as.userRepo.GetUser(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", fmt.Errorf("get user error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if !u.IsActive {
		return "", ErrInvalidCredentials
	}

	stored, err := as.tokenStore.TouchToken(ctx, u.ID, as.cfg.TTL)

	switch {
	case err == nil:
		if _, errP := jwtauth.ParseToken(stored, as.cfg.Secret); errP == nil {
			return stored, nil
		}

		// signed with a secret that is no longer configured
		if err := as.tokenStore.DeleteToken(ctx, u.ID); err != nil {
			return "", fmt.Errorf("delete token error: %w", err)
		}
	case !errors.Is(err, tokenstore.ErrNotFound):
		return "", fmt.Errorf("touch token error: %w", err)
	}

	tokenID, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate token id error: %w", err)
	}

	// the store ttl bounds the token, so it carries no exp of its own
	token, err := jwtauth.GetToken(u.ID, u.Email, tokenID, 0, as.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("can't get token error: %w", err)
	}

	token, err = as.tokenStore.CreateToken(ctx, u.ID, token, as.cfg.TTL)
	if err != nil {
		return "", fmt.Errorf("create token error: %w", err)
	}

	return token, nil
}

// Authenticate resolves a bearer token to its active user. Only the token
// currently stored for the user is accepted.
func (as *AuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	claims, err := jwtauth.ParseToken(token, as.cfg.Secret)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	stored, err := as.tokenStore.GetToken(ctx, userID)
	if err != nil {
		if errors.Is(err, tokenstore.ErrNotFound) {
			return models.User{}, ErrUnauthenticated
		}

		return models.User{}, fmt.Errorf("get token error: %w", err)
	}

	if stored != token {
		return models.User{}, ErrUnauthenticated
	}

	u, err := as.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return models.User{}, ErrUnauthenticated
		}

		return models.User{}, fmt.Errorf("get user error: %w", err)
	}

	if !u.IsActive {
		return models.User{}, ErrUnauthenticated
	}

	return u, nil
}

func (as *AuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	u, err := as.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return models.User{}, ErrUnauthenticated
		}

		return models.User{}, fmt.Errorf("get user error: %w", err)
	}

	return u, nil
}

// UpdateUser applies the caller's profile changes. A password change revokes
// the stored token.
func (as *AuthService) UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (models.User, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return models.User{}, validation.FieldError("name", "may not be blank")
		}

		req.Name = &name
	}

	if err := as.validator.Validate(req); err != nil {
		return models.User{}, err
	}

	upd := userrepo.UpdateUserRequest{ //nolint:exhaustruct
		ID:   userID,
		Name: req.Name,
	}

	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return models.User{}, err
		}

		h := string(hash)
		upd.PasswordHash = &h
	}

	if err := as.userRepo.UpdateUser(ctx, upd); err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return models.User{}, ErrUnauthenticated
		}

		return models.User{}, fmt.Errorf("update user error: %w", err)
	}

	if upd.PasswordHash != nil {
		if err := as.tokenStore.DeleteToken(ctx, userID); err != nil {
			return models.User{}, fmt.Errorf("delete token error: %w", err)
		}
	}

	return as.GetUser(ctx, userID)
}

// hashPassword reports passwords bcrypt cannot take as a password field error.
func hashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, validation.FieldError("password", "ensure this field has no more than 72 bytes")
		}

		return nil, fmt.Errorf("generate from password error: %w", err)
	}

	return hash, nil
}
