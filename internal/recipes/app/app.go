package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Leopold1975/recipes/internal/pkg/config"
	"github.com/Leopold1975/recipes/internal/pkg/pgtools"
	"github.com/Leopold1975/recipes/internal/recipes/api/server"
	"github.com/Leopold1975/recipes/internal/recipes/repository/attributerepo"
	ar "github.com/Leopold1975/recipes/internal/recipes/repository/attributerepo/postgres"
	"github.com/Leopold1975/recipes/internal/recipes/repository/imagestore/s3"
	rr "github.com/Leopold1975/recipes/internal/recipes/repository/reciperepo/postgres"
	"github.com/Leopold1975/recipes/internal/recipes/repository/tokenstore/redis"
	ur "github.com/Leopold1975/recipes/internal/recipes/repository/userrepo/postgres"
	"github.com/Leopold1975/recipes/internal/recipes/services/attributeservice"
	"github.com/Leopold1975/recipes/internal/recipes/services/authservice"
	"github.com/Leopold1975/recipes/internal/recipes/services/recipeservice"
	"github.com/Leopold1975/recipes/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Server interface {
	Start(context.Context) error
	Shutdown(context.Context) error
	Handler() http.Handler
}

type RecipesApp struct {
	s      Server
	db     *pgxpool.Pool
	tokens redis.TokenStore
	lg     logger.Logger
	cfg    config.Config
}

func New(ctx context.Context, cfg config.Config) (RecipesApp, error) {
	lg, err := logger.New(cfg.Logger)
	if err != nil {
		return RecipesApp{}, fmt.Errorf("can't get logger error: %w", err)
	}

	db, err := pgtools.New(ctx, cfg.PostgresDB)
	if err != nil {
		return RecipesApp{}, fmt.Errorf("postgres initializing error: %w", err)
	}

	tokens, err := redis.New(ctx, cfg.TokenStore)
	if err != nil {
		db.Close()

		return RecipesApp{}, fmt.Errorf("redis token store initializing error: %w", err)
	}

	var images recipeservice.ImageStore

	if cfg.Storage.Enabled() {
		is, err := s3.New(ctx, cfg.Storage)
		if err != nil {
			db.Close()
			tokens.Shutdown(ctx) //nolint:errcheck

			return RecipesApp{}, fmt.Errorf("s3 image store initializing error: %w", err)
		}

		images = is
	} else {
		lg.Warn("image storage is not configured, uploads are disabled")
	}

	authService := authservice.New(ur.New(db), tokens, cfg.Auth)
	tagService := attributeservice.New(ar.New(db, attributerepo.Tags), lg)
	ingredientService := attributeservice.New(ar.New(db, attributerepo.Ingredients), lg)
	recipeService := recipeservice.New(rr.New(db), images, lg)

	s := server.New(cfg.Server, authService, tagService, ingredientService, recipeService, lg)

	return RecipesApp{
		s:      s,
		db:     db,
		tokens: tokens,
		lg:     lg,
		cfg:    cfg,
	}, nil
}

// Handler exposes the HTTP handler without starting a listener.
func (ra *RecipesApp) Handler() http.Handler {
	return ra.s.Handler()
}

func (ra *RecipesApp) Run(ctx context.Context) {
	ra.lg.Infof("STARTED SERVER ON %s", ra.cfg.Server.Addr)

	go func() {
		if err := ra.s.Start(ctx); err != nil {
			ra.lg.Errorf("server start error: %s", err.Error())

			return
		}
	}()

	<-ctx.Done()

	ctxS, cancel := context.WithTimeout(context.Background(), time.Second*5) //nolint:gomnd
	defer cancel()

	if err := ra.Stop(ctxS); err != nil { //nolint:contextcheck
		ra.lg.Errorf("server shutdown error: %s", err.Error())
	}
}

func (ra *RecipesApp) Stop(ctx context.Context) error {
	if err := ra.s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if err := ra.tokens.Shutdown(ctx); err != nil {
		return fmt.Errorf("token store shutdown error: %w", err)
	}

	ra.db.Close()

	ra.lg.Info("Shutdowned successfully")
	ra.lg.Sync() //nolint:errcheck

	return nil
}
