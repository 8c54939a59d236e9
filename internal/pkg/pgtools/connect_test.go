package pgtools

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	closed atomic.Bool
}

func (f *fakeConn) Close() {
	f.closed.Store(true)
}

func TestAwaitConnectClosesLateConnection(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	resCh := make(chan connectResult[*fakeConn], 1)

	cancel()

	_, err := awaitConnect(ctx, resCh)
	require.ErrorIs(t, err, context.Canceled)

	conn := &fakeConn{}
	resCh <- connectResult[*fakeConn]{conn: conn}

	require.Eventually(t, conn.closed.Load, time.Second, 10*time.Millisecond)
}

func TestAwaitConnect(t *testing.T) {
	resCh := make(chan connectResult[*fakeConn], 1)
	conn := &fakeConn{}
	resCh <- connectResult[*fakeConn]{conn: conn}

	got, err := awaitConnect(context.Background(), resCh)
	require.NoError(t, err)
	require.Same(t, conn, got)
	require.False(t, conn.closed.Load())

	errPing := errors.New("ping failed")
	resCh <- connectResult[*fakeConn]{err: errPing}

	_, err = awaitConnect(context.Background(), resCh)
	require.ErrorIs(t, err, errPing)
}
