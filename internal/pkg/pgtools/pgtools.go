package pgtools

import (
	"context"
	"fmt"
	"time"

	"github.com/Leopold1975/recipes/internal/pkg/config"
	"github.com/Leopold1975/recipes/migrations"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // driver for migrations
	"github.com/pressly/goose/v3"
)

const (
	maxConnectDelay = time.Second * 10
	migrationsDir   = "."
)

func ConnString(cfg config.PostgresDB) string {
	connString := "postgres://" + cfg.Username + ":" + cfg.Password + "@" +
		cfg.Addr + "/" + cfg.DB

	params := ""
	if cfg.SSLmode != "" {
		params += "sslmode=" + cfg.SSLmode
	}

	if cfg.MaxConns != "" {
		if params != "" {
			params += "&"
		}

		params += "pool_max_conns=" + cfg.MaxConns
	}

	if params != "" {
		connString += "?" + params
	}

	return connString
}

// New connects to postgres and brings the schema up to the configured version.
func New(ctx context.Context, cfg config.PostgresDB) (*pgxpool.Pool, error) {
	db, err := Connect(ctx, ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect to db error: %w", err)
	}

	if err := ApplyMigration(cfg); err != nil {
		db.Close()

		return nil, fmt.Errorf("apply migration error: %w", err)
	}

	return db, nil
}

// Connect waits until the database answers a ping, backing off by one more
// second after every failed attempt.
func Connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	resCh := make(chan connectResult[*pgxpool.Pool], 1)

	go func() {
		dbc, err := pgxpool.New(ctx, connString)
		if err != nil {
			resCh <- connectResult[*pgxpool.Pool]{err: fmt.Errorf("cannot create db pool error: %w", err)}

			return
		}

		defaultDelay := time.Second

		for {
			err := dbc.Ping(ctx)
			if err == nil {
				resCh <- connectResult[*pgxpool.Pool]{conn: dbc}

				return
			}

			select {
			case <-ctx.Done():
				dbc.Close()
				resCh <- connectResult[*pgxpool.Pool]{err: fmt.Errorf("context error: %w", ctx.Err())}

				return
			case <-time.After(defaultDelay):
			}

			defaultDelay += time.Second

			if defaultDelay > maxConnectDelay {
				dbc.Close()
				resCh <- connectResult[*pgxpool.Pool]{err: fmt.Errorf("cannot ping db error: %w", err)}

				return
			}
		}
	}()

	return awaitConnect(ctx, resCh)
}

type connectResult[C interface{ Close() }] struct {
	conn C
	err  error
}

// awaitConnect returns the first result from resCh. When ctx ends first, a
// connection that still arrives is closed.
func awaitConnect[C interface{ Close() }](ctx context.Context, resCh <-chan connectResult[C]) (C, error) {
	var zero C

	select {
	case <-ctx.Done():
		go func() {
			if res := <-resCh; res.err == nil {
				res.conn.Close()
			}
		}()

		return zero, fmt.Errorf("context error: %w", ctx.Err())
	case res := <-resCh:
		if res.err != nil {
			return zero, res.err
		}

		return res.conn, nil
	}
}

func ApplyMigration(cfg config.PostgresDB) error {
	defaultVersion := 0

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect error: %w", err)
	}

	dbM, err := goose.OpenDBWithDriver("pgx", ConnString(cfg))
	if err != nil {
		return fmt.Errorf("goose open pgx db error: %w", err)
	}
	defer dbM.Close()

	if cfg.Reload {
		if err := goose.DownTo(dbM, migrationsDir, int64(defaultVersion)); err != nil {
			return fmt.Errorf("goose down error: %w", err)
		}
	}

	if cfg.Version == 0 {
		if err := goose.Up(dbM, migrationsDir); err != nil {
			return fmt.Errorf("goose up error: %w", err)
		}

		return nil
	}

	if err := goose.UpTo(dbM, migrationsDir, int64(cfg.Version)); err != nil {
		return fmt.Errorf("goose up error: %w", err)
	}

	return nil
}

func CommitOrRollback(ctx context.Context, tx pgx.Tx, err error, where string) error {
	if err == nil {
		if errT := tx.Commit(ctx); errT != nil {
			err = fmt.Errorf("commit error: %w", errT)
		}
	} else {
		if errT := tx.Rollback(ctx); errT != nil {
			err = fmt.Errorf("%s error: %w rollback error: %w", where, err, errT)
		} else {
			err = fmt.Errorf("%s error: %w", where, err)
		}
	}

	return err
}
