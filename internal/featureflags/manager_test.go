package featureflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabled_BooleanValues(t *testing.T) {
	m := NewManager("a=on,b=off,c=true,d=false,e=1,f=0")

	assert.True(t, m.Enabled("a", 1))
	assert.True(t, m.Enabled("c", 1))
	assert.True(t, m.Enabled("e", 1))
	assert.False(t, m.Enabled("b", 1))
	assert.False(t, m.Enabled("d", 1))
	assert.False(t, m.Enabled("f", 1))
	assert.False(t, m.Enabled("unknown", 1))
}

func TestEnabled_PercentageRollout(t *testing.T) {
	m := NewManager("always=100%,never=0%,canary=25%")

	assert.True(t, m.Enabled("always", 1))
	assert.False(t, m.Enabled("never", 1))

	// Rollout evaluation must be deterministic per user.
	first := m.Enabled("canary", 42)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, m.Enabled("canary", 42))
	}

	// Anonymous requests stay outside a partial rollout.
	assert.False(t, m.Enabled("canary", 0))
}

func TestNewManager_LayersOverDefaults(t *testing.T) {
	m := NewManager("")
	assert.True(t, m.Enabled("metrics_dashboard", 0),
		"built-in defaults apply when FEATURE_FLAGS is empty")

	m = NewManager("metrics_dashboard=off,beta_compose=on")
	assert.False(t, m.Enabled("metrics_dashboard", 0))
	assert.True(t, m.Enabled("beta_compose", 1))
}

func TestNewManager_SkipsMalformedPairs(t *testing.T) {
	m := NewManager(" bad ,x=on, y = 20% ,z=off,=,noval=")

	snap := m.Snapshot(123)
	require.Len(t, snap, 3+len(Defaults))
	assert.True(t, snap["x"])
	assert.False(t, snap["z"])
}

func TestSnapshot_NilManager(t *testing.T) {
	var m *Manager
	assert.False(t, m.Enabled("anything", 1))
	assert.Empty(t, m.Snapshot(1))
}
