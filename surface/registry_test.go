// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonnontrivial/mutpoint"
)

func svgFactory(opts Options) (mutpoint.Surface, error) {
	return NewSVGSurface(opts.Writer), nil
}

// TestRegistryRegister tests backend registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("Test", 50, svgFactory, nil)

	entry, ok := r.Get("test")
	require.True(t, ok, "registered backend not found")
	assert.Equal(t, "test", entry.Name)
	assert.Equal(t, 50, entry.Priority)
	assert.True(t, entry.Available(), "nil Available func means always available")
}

// TestRegistryUnregister tests backend removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, svgFactory, nil)

	_, ok := r.Get("temp")
	require.True(t, ok)

	r.Unregister("temp")
	_, ok = r.Get("temp")
	assert.False(t, ok)
}

// TestRegistryList tests priority ordering.
func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, svgFactory, nil)
	r.Register("high", 100, svgFactory, nil)
	r.Register("mid", 50, svgFactory, nil)
	r.Register("also-mid", 50, svgFactory, nil)

	assert.Equal(t, []string{"high", "also-mid", "mid", "low"}, r.List())
}

// TestRegistryAvailable tests filtering by availability.
func TestRegistryAvailable(t *testing.T) {
	r := NewRegistry()
	r.Register("available", 100, svgFactory, func() bool { return true })
	r.Register("unavailable", 200, svgFactory, func() bool { return false })

	assert.Equal(t, []string{"available"}, r.Available())
}

// TestRegistryNewSurfaceFallback tests that a failing factory falls back
// to the next backend.
func TestRegistryNewSurfaceFallback(t *testing.T) {
	errBroken := errors.New("broken")
	r := NewRegistry()
	r.Register("broken", 100, func(Options) (mutpoint.Surface, error) { return nil, errBroken }, nil)
	r.Register("svg", 50, svgFactory, nil)

	s, err := r.NewSurface(Options{})
	require.NoError(t, err)
	assert.IsType(t, &SVGSurface{}, s)

	r.Unregister("svg")
	_, err = r.NewSurface(Options{})
	assert.ErrorIs(t, err, errBroken)
}

// TestRegistryNewSurfaceByNameNotFound tests error for unknown backend.
func TestRegistryNewSurfaceByNameNotFound(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewSurfaceByName("nonexistent", Options{})
	require.Error(t, err)

	var notFound *BackendNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nonexistent", notFound.Name)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

// TestRegistryNewSurfaceByNameUnavailable tests error for unavailable backend.
func TestRegistryNewSurfaceByNameUnavailable(t *testing.T) {
	r := NewRegistry()
	r.Register("unavailable", 50, svgFactory, func() bool { return false })

	_, err := r.NewSurfaceByName("unavailable", Options{})
	var unavailable *BackendUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

// TestRegistryNoBackend tests error when no backends are available.
func TestRegistryNoBackend(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewSurface(Options{})
	assert.ErrorIs(t, err, ErrNoBackendAvailable)
}

// TestBuiltinBackends tests the backends registered by the package.
func TestBuiltinBackends(t *testing.T) {
	assert.Equal(t, []string{"svg", "png", "term"}, List())

	tests := []struct {
		name string
		want any
	}{
		{"svg", &SVGSurface{}},
		{"PNG", &ImageSurface{}},
		{"term", &TermSurface{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSurfaceByName(tt.name, Options{Columns: 20})
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
		})
	}

	s, err := NewSurface(Options{})
	require.NoError(t, err)
	assert.IsType(t, &SVGSurface{}, s)
}
