package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestRegistry(t *testing.T) (*SessionRegistry, *time.Time) {
	t.Helper()
	now := time.Date(2024, 11, 2, 12, 0, 0, 0, time.UTC)
	r := NewSessionRegistry(StorefrontDeps{Catalog: newTestCatalog(t), Cards: NewCardValidator()})
	r.now = func() time.Time { return now }
	return r, &now
}

func TestSessionRegistry_Resolve(t *testing.T) {
	r, _ := newTestRegistry(t)

	first := r.Resolve("")
	assert.NotEmpty(t, first.ID())
	assert.Same(t, first, r.Resolve(first.ID()))

	unknown := r.Resolve("does-not-exist")
	assert.NotEqual(t, "does-not-exist", unknown.ID())
	assert.NotEqual(t, first.ID(), unknown.ID())
	assert.Equal(t, 2, r.Len())
}

func TestSessionRegistry_SessionsAreIsolated(t *testing.T) {
	r, _ := newTestRegistry(t)

	a := r.Resolve("")
	b := r.Resolve("")
	a.TopUp(100)

	assert.Equal(t, 100, a.State().Balance)
	assert.Equal(t, 0, b.State().Balance)
}

func TestSessionRegistry_Sweep(t *testing.T) {
	r, now := newTestRegistry(t)

	idle := r.Resolve("")
	*now = now.Add(90 * time.Minute)
	active := r.Resolve("")
	*now = now.Add(45 * time.Minute)

	removed := r.Sweep(2 * time.Hour)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, r.Len())
	assert.Same(t, active, r.Resolve(active.ID()))
	assert.NotEqual(t, idle.ID(), r.Resolve(idle.ID()).ID())
}
