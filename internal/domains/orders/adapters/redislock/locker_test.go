package redislock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"
)

func fixedToken() string { return "token-1" }

func TestLock_AcquiresAndReleasesWithToken(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := New(db, WithTokenSource(fixedToken), WithTTL(time.Second))

	mock.ExpectSetNX("backoffice:lock:order:7", "token-1", time.Second).SetVal(true)
	mock.ExpectEvalSha(releaseScript.Hash(), []string{"backoffice:lock:order:7"}, "token-1").SetVal(int64(1))

	unlock, err := locker.Lock(context.Background(), "order:7")
	require.NoError(t, err)
	unlock()
	unlock()

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLock_RetriesUntilFree(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := New(db, WithTokenSource(fixedToken), WithTTL(time.Second), WithRetryInterval(time.Millisecond))

	mock.ExpectSetNX("backoffice:lock:order:7", "token-1", time.Second).SetVal(false)
	mock.ExpectSetNX("backoffice:lock:order:7", "token-1", time.Second).SetVal(true)

	_, err := locker.Lock(context.Background(), "order:7")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLock_HonoursContextWhileWaiting(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := New(db, WithTokenSource(fixedToken), WithTTL(time.Second), WithRetryInterval(time.Hour))

	mock.ExpectSetNX("backoffice:lock:order:7", "token-1", time.Second).SetVal(false)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := locker.Lock(ctx, "order:7")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLock_PropagatesRedisErrors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := New(db, WithTokenSource(fixedToken), WithTTL(time.Second))

	mock.ExpectSetNX("backoffice:lock:order:7", "token-1", time.Second).SetErr(errors.New("connection refused"))

	_, err := locker.Lock(context.Background(), "order:7")
	require.ErrorContains(t, err, "connection refused")
}
