package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/careguard/careguard-backend/internal/repositories"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fakeCompletionBody = `{
	"id": "chatcmpl-test",
	"object": "chat.completion",
	"choices": [
		{
			"index": 0,
			"message": {"role": "assistant", "content": "Medicine: Dolo\n\nUses:\n- fever"},
			"finish_reason": "stop"
		}
	]
}`

func TestExplainService_CachesProviderResponses(t *testing.T) {
	var providerCalls int64
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&providerCalls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fakeCompletionBody))
	}))
	defer provider.Close()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	cache := repositories.NewRedisExplanationCache(client)

	service := NewExplainService("test-key", provider.URL, "test-model", cache, zap.NewNop())
	ctx := context.Background()

	explanation, err := service.Explain(ctx, "Dolo 650")
	require.NoError(t, err)
	assert.Contains(t, explanation, "Medicine: Dolo")
	assert.EqualValues(t, 1, atomic.LoadInt64(&providerCalls))

	// Second lookup of the same name is served from the cache
	explanation, err = service.Explain(ctx, "Dolo 650")
	require.NoError(t, err)
	assert.Contains(t, explanation, "Medicine: Dolo")
	assert.EqualValues(t, 1, atomic.LoadInt64(&providerCalls), "provider should not be hit again")
}

func TestExplainService_UnconfiguredProvider(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	cache := repositories.NewRedisExplanationCache(client)

	service := NewExplainService("", "", "test-model", cache, zap.NewNop())

	_, err := service.Explain(context.Background(), "Dolo 650")
	assert.ErrorIs(t, err, ErrExplainUnavailable)
}
