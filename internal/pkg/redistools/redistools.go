package redistools

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const maxConnectDelay = time.Second * 10

// Connect waits until redis answers a ping.
func Connect(ctx context.Context, rdb *redis.Client) error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		defaultDelay := time.Second

		for {
			if err := rdb.Ping(ctx).Err(); err != nil {
				select {
				case <-ctx.Done():
					errCh <- fmt.Errorf("context error: %w", ctx.Err())

					return
				case <-time.After(defaultDelay):
				}

				defaultDelay += time.Second

				if defaultDelay > maxConnectDelay {
					errCh <- fmt.Errorf("cannot ping redis db error: %w", err)

					return
				}

				continue
			}

			break
		}
	}()
	select {
	case <-ctx.Done():
		return fmt.Errorf("context error: %w", ctx.Err())
	case err := <-errCh:
		return err
	}
}
