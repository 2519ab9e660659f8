// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/nonnontrivial/mutpoint"
)

// Options configures a surface created through the registry.
type Options struct {
	// Writer receives the finished document on End. It may be nil.
	Writer io.Writer

	// Scale multiplies the pixel size of raster output. Zero means 1.
	Scale float64

	// Columns and Rows size the terminal canvas in cells. Zero derives
	// them from the document size.
	Columns, Rows int

	// Color enables ANSI styling of terminal output.
	Color bool
}

// SurfaceFactory creates a new Surface with the given options.
// Implementations should validate options and return descriptive errors.
type SurfaceFactory func(opts Options) (mutpoint.Surface, error)

// RegistryEntry represents a registered surface backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Built-in priorities:
	//   - 100: svg (lossless, the default)
	//   - 50: png
	//   - 10: term
	Priority int

	// Factory creates surface instances.
	Factory SurfaceFactory

	// Available reports if the backend can be used.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered surface backends.
//
// Example registration:
//
//	func init() {
//	    surface.Register("pdf", 60, pdfFactory, nil)
//	}
//
// Example usage:
//
//	s, err := surface.NewSurfaceByName("pdf", surface.Options{Writer: w})
//	// or pick the best available:
//	s, err := surface.NewSurface(surface.Options{Writer: w})
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// Names are matched case-insensitively. If available is nil, the backend
// is assumed always available. Registering a name that already exists
// replaces the previous entry.
func Register(name string, priority int, factory SurfaceFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewSurface creates a surface using the best available backend.
func NewSurface(opts Options) (mutpoint.Surface, error) {
	return globalRegistry.NewSurface(opts)
}

// NewSurfaceByName creates a surface using a specific named backend.
func NewSurfaceByName(name string, opts Options) (mutpoint.Surface, error) {
	return globalRegistry.NewSurfaceByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory SurfaceFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	name = normalizeName(name)
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, normalizeName(name))
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[normalizeName(name)]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// NewSurface creates a surface using the best available backend.
// Backends whose factory fails are skipped; the last failure is returned
// when none succeeds.
func (r *Registry) NewSurface(opts Options) (mutpoint.Surface, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range available {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		mutpoint.Logger().Debug("surface backend failed", "backend", name, "err", err)
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackendAvailable
}

// NewSurfaceByName creates a surface using a specific backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (mutpoint.Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[normalizeName(name)]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	return entry.Factory(opts)
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. If onlyAvailable is true, filters to available
// backends only. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no surface backends are registered
	// or available.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	// ErrUnknownBackend matches every *BackendNotFoundError.
	ErrUnknownBackend = errors.New("surface: unknown backend")

	// ErrNotBegun is returned by End when Begin was never called or failed.
	ErrNotBegun = errors.New("surface: End without Begin")

	// ErrInvalidSize is returned by Begin for a document without area.
	ErrInvalidSize = errors.New("surface: invalid document size")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// Is reports whether target is ErrUnknownBackend.
func (e *BackendNotFoundError) Is(target error) bool {
	return target == ErrUnknownBackend
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// init registers the built-in backends.
func init() {
	Register("svg", 100, func(opts Options) (mutpoint.Surface, error) {
		return NewSVGSurface(opts.Writer), nil
	}, nil)
	Register("png", 50, func(opts Options) (mutpoint.Surface, error) {
		return NewImageSurface(opts.Writer, opts.Scale), nil
	}, nil)
	Register("term", 10, func(opts Options) (mutpoint.Surface, error) {
		s := NewTermSurface(opts.Writer, opts.Columns, opts.Rows)
		s.SetColor(opts.Color)
		return s, nil
	}, nil)
}
