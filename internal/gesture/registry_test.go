package gesture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCarousel() (*Carousel[string], error) {
	cfg := DefaultConfig[string]()
	cfg.Scheduler = newClock()
	return New([]string{"a", "b"}, func() float64 { return 80 }, &fakeRenderer{}, cfg), nil
}

func TestRegistryLookupOrCreateIsIdempotent(t *testing.T) {
	r := NewRegistry[string, string]()
	calls := 0
	create := func() (*Carousel[string], error) {
		calls++
		return newTestCarousel()
	}

	first, created, err := r.LookupOrCreate("deck.toml", create)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := r.LookupOrCreate("deck.toml", create)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	got, ok := r.Lookup("deck.toml")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestRegistryRemoveDisposes(t *testing.T) {
	r := NewRegistry[string, string]()
	c, _, err := r.LookupOrCreate("a", newTestCarousel)
	require.NoError(t, err)

	assert.True(t, r.Remove("a"))
	assert.True(t, c.Disposed())
	assert.False(t, r.Remove("a"))
	assert.Zero(t, r.Len())

	_, ok := r.Lookup("a")
	assert.False(t, ok)

	again, created, err := r.LookupOrCreate("a", newTestCarousel)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotSame(t, c, again)
}

func TestRegistryReplacesDisposedInstance(t *testing.T) {
	r := NewRegistry[string, string]()
	c, _, err := r.LookupOrCreate("a", newTestCarousel)
	require.NoError(t, err)

	c.Dispose()
	_, ok := r.Lookup("a")
	assert.False(t, ok)

	fresh, created, err := r.LookupOrCreate("a", newTestCarousel)
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, fresh.Disposed())
}

func TestRegistryCreateError(t *testing.T) {
	r := NewRegistry[string, string]()
	boom := errors.New("boom")

	c, created, err := r.LookupOrCreate("a", func() (*Carousel[string], error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, c)
	assert.False(t, created)
	assert.Zero(t, r.Len())
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry[int, string]()
	a, _, _ := r.LookupOrCreate(1, newTestCarousel)
	b, _, _ := r.LookupOrCreate(2, newTestCarousel)
	require.Equal(t, 2, r.Len())

	r.Close()
	assert.Zero(t, r.Len())
	assert.True(t, a.Disposed())
	assert.True(t, b.Disposed())
}
