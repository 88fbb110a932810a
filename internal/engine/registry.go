package engine

import (
	"errors"
	"fmt"

	"github.com/username/vikey/internal/plugin"
)

// Sentinel errors identify the three ways a registry operation can fail;
// callers compare with errors.Is rather than matching on string content.
var (
	ErrDuplicateID         = errors.New("engine: plugin with this ID already registered")
	ErrLanguageNotFound    = errors.New("engine: language not found")
	ErrInputMethodNotFound = errors.New("engine: input method not found")
)

// registryError wraps a sentinel with the offending ID for a useful message
// while still satisfying errors.Is against the sentinel.
type registryError struct {
	sentinel error
	id       string
}

func (e *registryError) Error() string {
	return fmt.Sprintf("%s: %q", e.sentinel.Error(), e.id)
}

func (e *registryError) Unwrap() error {
	return e.sentinel
}

// registry tracks registered language plugins and which (language, input
// method) pair is currently active.
type registry struct {
	plugins            map[string]plugin.LanguagePlugin
	currentLanguage    string
	currentInputMethod string
}

func newRegistry() *registry {
	return &registry{plugins: make(map[string]plugin.LanguagePlugin)}
}

func (r *registry) register(p plugin.LanguagePlugin) error {
	id := p.ID()
	if _, exists := r.plugins[id]; exists {
		return &registryError{sentinel: ErrDuplicateID, id: id}
	}
	r.plugins[id] = p
	return nil
}

func (r *registry) languages() []string {
	ids := make([]string, 0, len(r.plugins))
	for id := range r.plugins {
		ids = append(ids, id)
	}
	return ids
}

func (r *registry) currentPlugin() (plugin.LanguagePlugin, bool) {
	p, ok := r.plugins[r.currentLanguage]
	return p, ok
}

// setLanguage activates a registered language and auto-selects its first
// input method, mirroring how a freshly switched language starts from a
// known default rather than an undefined one.
func (r *registry) setLanguage(id string) error {
	p, ok := r.plugins[id]
	if !ok {
		return &registryError{sentinel: ErrLanguageNotFound, id: id}
	}
	r.currentLanguage = id
	r.currentInputMethod = ""
	if methods := p.InputMethods(); len(methods) > 0 {
		r.currentInputMethod = methods[0]
	}
	return nil
}

// setInputMethod switches the input method within the current language.
func (r *registry) setInputMethod(id string) error {
	p, ok := r.currentPlugin()
	if !ok {
		return &registryError{sentinel: ErrInputMethodNotFound, id: id}
	}
	for _, m := range p.InputMethods() {
		if m == id {
			r.currentInputMethod = id
			return nil
		}
	}
	return &registryError{sentinel: ErrInputMethodNotFound, id: id}
}
