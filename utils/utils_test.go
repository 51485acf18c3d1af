package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_ExecutePassesThrough(t *testing.T) {
	cb := NewCircuitBreaker("test")

	err := cb.Execute(func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())

	wantErr := errors.New("connection refused")
	err = cb.Execute(func() error { return wantErr })
	assert.Equal(t, wantErr, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_TripsAfterFailureRatio(t *testing.T) {
	cb := NewCircuitBreaker("test", WithMinRequests(5))

	failure := errors.New("connection refused")
	for i := 0; i < 5; i++ {
		_ = cb.Execute(func() error { return failure })
	}
	assert.Equal(t, StateOpen, cb.State())

	err := cb.Execute(func() error {
		t.Fatal("request must not run while the breaker is open")
		return nil
	})
	assert.True(t, errors.Is(err, ErrBreakerOpen))
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker("test", WithMinRequests(3), WithTimeout(20*time.Millisecond))

	failure := errors.New("connection refused")
	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return failure })
	}
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(30 * time.Millisecond)
	require.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker("test", WithMinRequests(3), WithTimeout(20*time.Millisecond))

	failure := errors.New("connection refused")
	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return failure })
	}
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(30 * time.Millisecond)
	_ = cb.Execute(func() error { return failure })
	assert.Equal(t, StateOpen, cb.State())
}

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(4)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	assert.Equal(t, code, strings.ToUpper(code))

	other, err := GenerateCode(4)
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestRedisHealthCheck(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, RedisHealthCheck(client))

	client, mock = redismock.NewClientMock()
	mock.ExpectPing().SetErr(errors.New("connection refused"))
	err := RedisHealthCheck(client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis health check failed")
}
