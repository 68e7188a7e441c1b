// Package demo provides a catalog of ready-made scenes.
package demo

import (
	"fmt"
	"sort"

	"github.com/achilleasa/lumen/scene"
)

// The resolution used when the caller does not ask for one.
const (
	DefaultWidth  uint32 = 960
	DefaultHeight uint32 = 580
)

// Builds a scene and a camera for a frame of the given size.
type Builder func(width, height uint32) (*scene.Scene, *scene.Camera)

// A named catalog entry.
type Entry struct {
	Name        string
	Description string
	Build       Builder
}

var catalog = map[string]Entry{}

func register(name, description string, build Builder) {
	catalog[name] = Entry{Name: name, Description: description, Build: build}
}

// Get the sorted list of scene names.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get all catalog entries sorted by name.
func Entries() []Entry {
	entries := make([]Entry, 0, len(catalog))
	for _, name := range Names() {
		entries = append(entries, catalog[name])
	}
	return entries
}

// Find the builder for a named scene.
func Lookup(name string) (Builder, error) {
	entry, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return entry.Build, nil
}
