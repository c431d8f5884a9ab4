package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects zero capacity", func(t *testing.T) {
		c, err := New[string, string](0)

		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		c, err := New[string, string](-1)

		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("success", func(t *testing.T) {
		c, err := New[string, string](1)

		assert.NoError(t, err)
		assert.NotNil(t, c)
		assert.Zero(t, c.Len())
	})
}

func TestLRU_Get(t *testing.T) {
	t.Run("miss on empty cache", func(t *testing.T) {
		c, err := New[string, string](2)
		require.NoError(t, err)

		v, ok := c.Get("a")

		assert.False(t, ok)
		assert.Empty(t, v)
		assert.Zero(t, c.Len())
	})

	t.Run("miss has no side effect on recency", func(t *testing.T) {
		c, err := New[string, int](2)
		require.NoError(t, err)

		c.Put("a", 1)
		c.Put("b", 2)

		_, ok := c.Get("missing")
		assert.False(t, ok)

		// "a" is still the LRU entry, so the next insertion evicts it.
		c.Put("c", 3)

		_, ok = c.Get("a")
		assert.False(t, ok)

		v, ok := c.Get("b")
		assert.True(t, ok)
		assert.Equal(t, 2, v)
	})

	t.Run("hit promotes entry", func(t *testing.T) {
		c, err := New[string, int](2)
		require.NoError(t, err)

		c.Put("a", 1)
		c.Put("b", 2)

		v, ok := c.Get("a")
		require.True(t, ok)
		require.Equal(t, 1, v)

		// "b" became the LRU entry after the hit on "a".
		c.Put("c", 3)

		_, ok = c.Get("b")
		assert.False(t, ok)

		_, ok = c.Get("a")
		assert.True(t, ok)
	})
}

func TestLRU_Put(t *testing.T) {
	t.Run("replaces value and promotes existing key", func(t *testing.T) {
		c, err := New[string, int](2)
		require.NoError(t, err)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("a", 10)

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 10, v)
		assert.Equal(t, 2, c.Len())

		// "b" is evicted, not "a", since the re-put promoted "a".
		c.Put("c", 3)

		_, ok = c.Get("b")
		assert.False(t, ok)
	})

	t.Run("evicts exactly the least recently used", func(t *testing.T) {
		const capacity = 3

		c, err := New[string, int](capacity)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			c.Put(fmt.Sprintf("k%d", i), i)
			assert.LessOrEqual(t, c.Len(), capacity)
		}

		// Only the last 3 touched keys survive.
		for i := 0; i < 7; i++ {
			_, ok := c.Get(fmt.Sprintf("k%d", i))
			assert.False(t, ok, "k%d should have been evicted", i)
		}
		for i := 7; i < 10; i++ {
			v, ok := c.Get(fmt.Sprintf("k%d", i))
			assert.True(t, ok, "k%d should still be cached", i)
			assert.Equal(t, i, v)
		}
	})

	t.Run("capacity one", func(t *testing.T) {
		c, err := New[string, string](1)
		require.NoError(t, err)

		c.Put("a", "1")
		c.Put("b", "2")

		_, ok := c.Get("a")
		assert.False(t, ok)

		v, ok := c.Get("b")
		assert.True(t, ok)
		assert.Equal(t, "2", v)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("evicted slot is reused", func(t *testing.T) {
		c, err := New[string, int](2)
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			c.Put(fmt.Sprintf("k%d", i), i)
		}

		assert.Equal(t, 2, c.Len())
		// Arena holds the two sentinels plus one slot per live entry,
		// and at most one spare freed by the last eviction.
		assert.LessOrEqual(t, len(c.arena), 2+2+1)
	})
}
