package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Leopold1975/recipes/internal/pkg/config"
	"github.com/Leopold1975/recipes/internal/pkg/ratelimit"
	"github.com/Leopold1975/recipes/internal/pkg/validation"
	"github.com/Leopold1975/recipes/internal/recipes/api/oapi"
	"github.com/Leopold1975/recipes/internal/recipes/domain/models"
	"github.com/Leopold1975/recipes/internal/recipes/services/attributeservice"
	"github.com/Leopold1975/recipes/internal/recipes/services/authservice"
	"github.com/Leopold1975/recipes/internal/recipes/services/recipeservice"
	"github.com/Leopold1975/recipes/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	BaseURL = "/api"

	sniffLen = 512

	defaultMaxUploadSize = 5 << 20
)

type Server struct {
	serv              *http.Server
	authService       AuthService
	tagService        AttributeService
	ingredientService AttributeService
	recipeService     RecipeService
	limiter           *ratelimit.KeyedRateLimiter
	maxUploadSize     int64
	lg                logger.Logger
}

type AuthService interface {
	CreateUser(context.Context, authservice.CreateUserRequest) (models.User, error)
	Login(context.Context, authservice.LoginRequest) (string, error)
	Authenticate(ctx context.Context, token string) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, req authservice.UpdateUserRequest) (models.User, error)
}

// AttributeService is served twice, once for tags and once for ingredients.
type AttributeService interface {
	ListAttributes(ctx context.Context, userID int64, assignedOnly bool) ([]models.Attribute, error)
	CreateAttribute(ctx context.Context, userID int64,
		req attributeservice.CreateAttributeRequest) (models.Attribute, error)
}

type RecipeService interface {
	ListRecipes(ctx context.Context, userID int64, req recipeservice.ListRecipesRequest) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	CreateRecipe(ctx context.Context, userID int64, req recipeservice.RecipeRequest) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, userID, recipeID int64, req recipeservice.RecipeRequest) (models.Recipe, error)
	PatchRecipe(ctx context.Context, userID, recipeID int64,
		req recipeservice.PatchRecipeRequest) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID int64) error
	UploadImage(ctx context.Context, userID, recipeID int64,
		contentType string, body io.ReadSeeker, size int64) (models.Recipe, error)
}

func New(cfg config.Server, authService AuthService, tagService, ingredientService AttributeService,
	recipeService RecipeService, lg logger.Logger,
) *Server {
	var s Server

	router := chi.NewRouter()

	// forwarding headers are client controlled unless a proxy overwrites them
	if cfg.TrustProxy {
		router.Use(middleware.RealIP)
	}

	router.Use(
		metricsMiddleware,
		loggingMiddleware(lg),
		cors.Handler(cors.Options{ //nolint:exhaustruct
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut,
				http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders: []string{"Authorization", "Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300, //nolint:gomnd
		}),
	)
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handleError(w, errors.New("not found"), http.StatusNotFound) //nolint:err113
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		handleError(w, errors.New("method not allowed"), http.StatusMethodNotAllowed) //nolint:err113
	})
	router.Handle("/metrics", promhttp.Handler())

	h := oapi.HandlerWithOptions(&s, oapi.ChiServerOptions{ //nolint:exhaustruct
		BaseURL:     BaseURL,
		BaseRouter:  router,
		Middlewares: []oapi.MiddlewareFunc{authMiddleware(authService)},
		// parameters are bound before the auth middleware runs
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			if secured(r) {
				if _, errA := authenticate(r, authService); errA != nil {
					writeAuthError(w, errA)

					return
				}
			}

			s.writeError(w, err)
		},
	})

	serv := &http.Server{ //nolint:exhaustruct
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	s.serv = serv
	s.authService = authService
	s.tagService = tagService
	s.ingredientService = ingredientService
	s.recipeService = recipeService
	s.limiter = ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.Idle)
	s.maxUploadSize = cfg.MaxUploadSize
	if s.maxUploadSize <= 0 {
		s.maxUploadSize = defaultMaxUploadSize
	}
	s.lg = lg

	return &s
}

func (s Server) Handler() http.Handler {
	return s.serv.Handler
}

func (s Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxS, cancel := context.WithTimeout(context.Background(), time.Second*5) //nolint:gomnd
		defer cancel()

		if err := s.Shutdown(ctxS); err != nil { //nolint:contextcheck
			return fmt.Errorf("context error: %w server error %w", ctxS.Err(), err)
		}

		if !errors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("context cancelled error: %w", ctx.Err())
		}

		return nil
	case err := <-errCh:
		return fmt.Errorf("listen and serve error: %w", err)
	}
}

func (s Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()

	ctxS, cancel := context.WithTimeout(ctx, s.serv.IdleTimeout)
	defer cancel()

	if err := s.serv.Shutdown(ctxS); err != nil {
		return fmt.Errorf("shutdown server error: %w", err)
	}

	return nil
}

// Register a user
// (POST /user/create).
func (s Server) PostUserCreate(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(clientIP(r)) {
		rateLimitRejects.Inc()
		s.writeError(w, ErrTooManyRequests)

		return
	}

	var b oapi.PostUserCreateJSONRequestBody
	if err := decodeJSON(r, &b); err != nil {
		s.writeError(w, err)

		return
	}

	u, err := s.authService.CreateUser(r.Context(), authservice.CreateUserRequest{
		Email:    b.Email,
		Password: b.Password,
		Name:     b.Name,
	})
	if err != nil {
		s.writeError(w, fmt.Errorf("create user error: %w", err))

		return
	}

	writeJSON(w, http.StatusCreated, toUser(u))
}

// Obtain an auth token
// (POST /user/token).
func (s Server) PostUserToken(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(clientIP(r)) {
		rateLimitRejects.Inc()
		s.writeError(w, ErrTooManyRequests)

		return
	}

	var b oapi.PostUserTokenJSONRequestBody
	if err := decodeJSON(r, &b); err != nil {
		s.writeError(w, err)

		return
	}

	token, err := s.authService.Login(r.Context(), authservice.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	})
	if err != nil {
		s.writeError(w, fmt.Errorf("login error: %w", err))

		return
	}

	writeJSON(w, http.StatusOK, oapi.Token{Token: token})
}

// Get the authenticated user
// (GET /user/me).
func (s Server) GetUserMe(w http.ResponseWriter, r *http.Request) {
	u, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, authservice.ErrUnauthenticated)

		return
	}

	writeJSON(w, http.StatusOK, toUser(u))
}

// Update the authenticated user
// (PATCH /user/me).
func (s Server) PatchUserMe(w http.ResponseWriter, r *http.Request) {
	u, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, authservice.ErrUnauthenticated)

		return
	}

	var b oapi.PatchUserMeJSONRequestBody
	if err := decodeJSON(r, &b); err != nil {
		s.writeError(w, err)

		return
	}

	updated, err := s.authService.UpdateUser(r.Context(), u.ID, authservice.UpdateUserRequest{
		Name:     b.Name,
		Password: b.Password,
	})
	if err != nil {
		s.writeError(w, fmt.Errorf("update user error: %w", err))

		return
	}

	writeJSON(w, http.StatusOK, toUser(updated))
}

// List the caller's tags
// (GET /recipe/tags).
func (s Server) GetRecipeTags(w http.ResponseWriter, r *http.Request, params oapi.GetRecipeTagsParams) {
	s.listAttributes(w, r, s.tagService, params.AssignedOnly)
}

// Create a tag
// (POST /recipe/tags).
func (s Server) PostRecipeTags(w http.ResponseWriter, r *http.Request) {
	s.createAttribute(w, r, s.tagService)
}

// List the caller's ingredients
// (GET /recipe/ingredients).
func (s Server) GetRecipeIngredients(w http.ResponseWriter, r *http.Request,
	params oapi.GetRecipeIngredientsParams,
) {
	s.listAttributes(w, r, s.ingredientService, params.AssignedOnly)
}

// Create an ingredient
// (POST /recipe/ingredients).
func (s Server) PostRecipeIngredients(w http.ResponseWriter, r *http.Request) {
	s.createAttribute(w, r, s.ingredientService)
}

func (s Server) listAttributes(w http.ResponseWriter, r *http.Request,
	svc AttributeService, assignedOnly *int,
) {
	u, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, authservice.ErrUnauthenticated)

		return
	}

	attrs, err := svc.ListAttributes(r.Context(), u.ID, deref(assignedOnly) != 0)
	if err != nil {
		s.writeError(w, fmt.Errorf("list attributes error: %w", err))

		return
	}

	writeJSON(w, http.StatusOK, toAttributes(attrs))
}

func (s Server) createAttribute(w http.ResponseWriter, r *http.Request, svc AttributeService) {
	u, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, authservice.ErrUnauthenticated)

		return
	}

	var b oapi.AttributeRequest
	if err := decodeJSON(r, &b); err != nil {
		s.writeError(w, err)

		return
	}

	a, err := svc.CreateAttribute(r.Context(), u.ID, attributeservice.CreateAttributeRequest{Name: b.Name})
	if err != nil {
		s.writeError(w, fmt.Errorf("create attribute error: %w", err))

		return
	}

	writeJSON(w, http.StatusCreated, toAttribute(a))
}

// List the caller's recipes
// (GET /recipe/recipes).
func (s Server) GetRecipeRecipes(w http.ResponseWriter, r *http.Request, params oapi.GetRecipeRecipesParams) {
	u, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, authservice.ErrUnauthenticated)

		return
	}

	recipes, err := s.recipeService.ListRecipes(r.Context(), u.ID, recipeservice.ListRecipesRequest{
		TagIDs:        deref(params.Tags),
		IngredientIDs: deref(params.Ingredients),
	})
	if err != nil {
		s.writeError(w, fmt.Errorf("list recipes error: %w", err))

		return
	}

	writeJSON(w, http.StatusOK, toRecipes(recipes))
}

// Create a recipe
// (POST /recipe/recipes).
func (s Server) PostRecipeRecipes(w http.ResponseWriter, r *http.Request) {
	u, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, authservice.ErrUnauthenticated)

		return
	}

	var b oapi.PostRecipeRecipesJSONRequestBody
	if err := decodeJSON(r, &b); err != nil {
		s.writeError(w, err)

		return
	}

	recipe, err := s.recipeService.CreateRecipe(r.Context(), u.ID, recipeRequest(b))
	if err != nil {
		s.writeError(w, fmt.Errorf("create recipe error: %w", err))

		return
	}

	writeJSON(w, http.StatusCreated, toRecipeDetail(recipe))
}

// Get a recipe
// (GET /recipe/recipes/{id}).
func (s Server) GetRecipeRecipesId(w http.ResponseWriter, r *http.Request, id int64) { //nolint:revive,stylecheck
	u, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, authservice.ErrUnauthenticated)

		return
	}

	recipe, err := s.recipeService.GetRecipe(r.Context(), u.ID, id)
	if err != nil {
		s.writeError(w, fmt.Errorf("get recipe error: %w", err))

		return
	}

	writeJSON(w, http.StatusOK, toRecipeDetail(recipe))
}

// Replace a recipe
// (PUT /recipe/recipes/{id}).
func (s Server) PutRecipeRecipesId(w http.ResponseWriter, r *http.Request, id int64) { //nolint:revive,stylecheck
	u, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, authservice.ErrUnauthenticated)

		return
	}

	var b oapi.PutRecipeRecipesIdJSONRequestBody
	if err := decodeJSON(r, &b); err != nil {
		s.writeError(w, err)

		return
	}

	recipe, err := s.recipeService.UpdateRecipe(r.Context(), u.ID, id, recipeRequest(b))
	if err != nil {
		s.writeError(w, fmt.Errorf("update recipe error: %w", err))

		return
	}

	writeJSON(w, http.StatusOK, toRecipeDetail(recipe))
}

// Partially update a recipe
// (PATCH /recipe/recipes/{id}).
func (s Server) PatchRecipeRecipesId(w http.ResponseWriter, r *http.Request, id int64) { //nolint:revive,stylecheck
	u, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, authservice.ErrUnauthenticated)

		return
	}

	var b oapi.PatchRecipeRecipesIdJSONRequestBody
	if err := decodeJSON(r, &b); err != nil {
		s.writeError(w, err)

		return
	}

	recipe, err := s.recipeService.PatchRecipe(r.Context(), u.ID, id, recipeservice.PatchRecipeRequest{
		Title:       b.Title,
		Price:       (*string)(b.Price),
		TimeMinutes: b.TimeMinutes,
		Description: b.Description,
		PictureLink: b.PictureLink,
		Tags:        b.Tags,
		Ingredients: b.Ingredients,
	})
	if err != nil {
		s.writeError(w, fmt.Errorf("patch recipe error: %w", err))

		return
	}

	writeJSON(w, http.StatusOK, toRecipeDetail(recipe))
}

// Delete a recipe
// (DELETE /recipe/recipes/{id}).
func (s Server) DeleteRecipeRecipesId(w http.ResponseWriter, r *http.Request, id int64) { //nolint:revive,stylecheck
	u, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, authservice.ErrUnauthenticated)

		return
	}

	if err := s.recipeService.DeleteRecipe(r.Context(), u.ID, id); err != nil {
		s.writeError(w, fmt.Errorf("delete recipe error: %w", err))

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Upload a recipe picture
// (POST /recipe/recipes/{id}/upload-image).
func (s Server) PostRecipeRecipesIdUploadImage(w http.ResponseWriter, //nolint:revive,stylecheck
	r *http.Request, id int64,
) {
	u, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, authservice.ErrUnauthenticated)

		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)

	if err := r.ParseMultipartForm(s.maxUploadSize); err != nil {
		s.writeError(w, validation.FieldError("image", "upload a valid image"))

		return
	}

	f, fh, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, validation.FieldError("image", "no file was submitted"))

		return
	}
	defer f.Close()

	head := make([]byte, sniffLen)

	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		s.writeError(w, fmt.Errorf("read image error: %w", err))

		return
	}

	head = head[:n]

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		s.writeError(w, fmt.Errorf("rewind image error: %w", err))

		return
	}

	recipe, err := s.recipeService.UploadImage(r.Context(), u.ID, id, http.DetectContentType(head), f, fh.Size)
	if err != nil {
		s.writeError(w, fmt.Errorf("upload image error: %w", err))

		return
	}

	writeJSON(w, http.StatusOK, oapi.RecipeImage{Id: recipe.ID, PictureLink: recipe.PictureLink})
}

func recipeRequest(b oapi.RecipeRequest) recipeservice.RecipeRequest {
	return recipeservice.RecipeRequest{
		Title:       b.Title,
		Price:       string(b.Price),
		TimeMinutes: b.TimeMinutes,
		Description: b.Description,
		PictureLink: b.PictureLink,
		Tags:        deref(b.Tags),
		Ingredients: deref(b.Ingredients),
	}
}
