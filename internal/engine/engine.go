// Package engine wires a keystroke buffer, a plugin registry, and the
// active input method together into the single entry point the rest of
// the system drives. It is the orchestrator: it holds no transformation
// logic of its own, delegating every keystroke to whichever
// plugin.InputMethod the registry currently has selected.
package engine

import (
	"github.com/username/vikey/internal/buffer"
	"github.com/username/vikey/internal/plugin"
)

// Engine is the main composition entry point: a registry of language
// plugins, a shared keystroke buffer, and the currently active method.
type Engine struct {
	registry      *registry
	buf           *buffer.Buffer
	config        *Config
	currentMethod plugin.InputMethod
}

// New returns an engine with an empty registry and default configuration.
func New() *Engine {
	return &Engine{
		registry: newRegistry(),
		buf:      buffer.New(),
		config:   DefaultConfig(),
	}
}

// NewWithConfig returns an engine using the given configuration; a nil
// config falls back to DefaultConfig.
func NewWithConfig(cfg *Config) *Engine {
	e := New()
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e.config = cfg
	return e
}

// Register adds a language plugin to the engine.
func (e *Engine) Register(p plugin.LanguagePlugin) error {
	return e.registry.register(p)
}

// Languages returns the IDs of every registered language plugin.
func (e *Engine) Languages() []string {
	return e.registry.languages()
}

// SetLanguage activates a registered language, auto-selecting its first
// input method, and instantiates a fresh method so no state from a
// previous language leaks across the switch.
func (e *Engine) SetLanguage(id string) error {
	if err := e.registry.setLanguage(id); err != nil {
		return err
	}
	e.refreshMethod()
	return nil
}

// SetInputMethod switches the input method within the current language.
func (e *Engine) SetInputMethod(id string) error {
	if err := e.registry.setInputMethod(id); err != nil {
		return err
	}
	e.refreshMethod()
	return nil
}

// refreshMethod instantiates a brand new InputMethod for whatever the
// registry currently has selected, discarding any prior instance. A fresh
// instance per switch means switching languages or methods mid-word
// always starts that method's internal state (e.g. Telex's
// lastRenderedLen) from zero.
func (e *Engine) refreshMethod() {
	e.currentMethod = nil

	p, ok := e.registry.currentPlugin()
	if !ok {
		return
	}
	methodID := e.registry.currentInputMethod
	if methodID == "" {
		return
	}
	method, ok := p.CreateInputMethod(methodID)
	if !ok {
		return
	}
	e.currentMethod = method
}

// CurrentLanguage returns the ID of the active language, or "" if none.
func (e *Engine) CurrentLanguage() string {
	return e.registry.currentLanguage
}

// CurrentInputMethod returns the ID of the active input method, or "" if
// none.
func (e *Engine) CurrentInputMethod() string {
	return e.registry.currentInputMethod
}

// InputMethods returns the input method IDs available under the active
// language, or nil if no language is active.
func (e *Engine) InputMethods() []string {
	p, ok := e.registry.currentPlugin()
	if !ok {
		return nil
	}
	return p.InputMethods()
}

// Process feeds one keystroke to the active input method. With no active
// language or method, it passes the keystroke through untouched.
func (e *Engine) Process(key rune) plugin.Action {
	p, ok := e.registry.currentPlugin()
	if !ok || e.currentMethod == nil {
		return plugin.NoAction
	}
	return e.currentMethod.Process(key, e.buf, p.Lookup())
}

// ProcessBackspace feeds a backspace to the active input method.
func (e *Engine) ProcessBackspace() plugin.Action {
	if e.currentMethod == nil {
		return plugin.NoAction
	}
	return e.currentMethod.ProcessBackspace(e.buf)
}

// Reset clears the keystroke buffer and the active method's transient
// state, starting the next word from a clean slate.
func (e *Engine) Reset() {
	e.buf.Clear()
	if e.currentMethod != nil {
		e.currentMethod.Reset()
	}
}

// BufferContent returns the raw keystrokes accumulated for the word in
// progress.
func (e *Engine) BufferContent() string {
	return e.buf.String()
}

// Config returns the engine's active configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// SetConfig replaces the engine's configuration. It does not by itself
// change the active language or method; call SetLanguage/SetInputMethod
// to apply cfg.Language/cfg.InputMethod.
func (e *Engine) SetConfig(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e.config = cfg
}
