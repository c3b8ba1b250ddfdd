package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Cache = (*RecipeCache)(nil)

func TestKey(t *testing.T) {
	a := Key("ingredients", "Available Ingredients: eggs")
	b := Key("ingredients", "Available Ingredients: eggs")
	c := Key("popular", "Available Ingredients: eggs")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "ingredients:"))
	assert.Len(t, strings.TrimPrefix(a, "ingredients:"), 64)
}

func TestRecipeCache_NilClient(t *testing.T) {
	c := NewRecipeCache(nil)
	ctx := context.Background()

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(ctx, "k", []byte("{}"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))
}

func TestRecipeCache_UnreachableRedisIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRecipeCache(client)
	got, err := c.Get(context.Background(), "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(context.Background(), "k", []byte("{}"), time.Minute))
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient("redis://:secret@localhost:6380/2")
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, "localhost:6380", client.Options().Addr)
	assert.Equal(t, 2, client.Options().DB)

	_, err = NewRedisClient("://bad")
	assert.Error(t, err)
}
