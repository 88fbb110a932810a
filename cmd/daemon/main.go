// Command daemon exports the Vietnamese composition engine as a D-Bus
// object on the session bus, for frontends (e.g. an Fcitx5 module) that
// expect the same ProcessKey/Reset/SetEnabled/GetPreedit surface the
// original goviet-ime backend exposed, now backed by internal/engine
// instead of a single hardcoded CompositionEngine.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"

	"github.com/username/vikey/internal/engine"
	"github.com/username/vikey/internal/plugin"
	"github.com/username/vikey/internal/vietnamese"
)

const (
	serviceName = "com.github.username.vikey"
	objectPath  = "/Engine"
)

// Modifier flags mirrored from the X11 keysym convention the frontend
// speaks; kept local to this binary since nothing else needs them.
const (
	modShift   uint32 = 1 << 0
	modControl uint32 = 1 << 2
	modMod1    uint32 = 1 << 3
)

const (
	keyBackspace uint32 = 0xff08
	keyReturn    uint32 = 0xff0d
	keySpace     uint32 = 0x0020
)

// keysymToRune converts the common subset of X11 keysyms this engine
// cares about to a rune. Printable ASCII keysyms equal their ASCII
// codepoint, which covers every character the Vietnamese input methods
// consume; anything outside that range is reported as unhandled.
func keysymToRune(keysym uint32) (rune, bool) {
	if keysym >= 0x20 && keysym <= 0x7e {
		return rune(keysym), true
	}
	return 0, false
}

// InputEngine is the D-Bus object frontends talk to. It wraps an
// engine.Engine with the preedit bookkeeping the D-Bus surface needs:
// engine.Engine reports each keystroke's edit against the previous
// render, but D-Bus callers expect the accumulated preedit string itself.
type InputEngine struct {
	eng     *engine.Engine
	enabled bool
	preedit string
	logger  *log.Logger
}

// NewInputEngine creates an InputEngine with Vietnamese/Telex active.
func NewInputEngine(logger *log.Logger) *InputEngine {
	cfg := engine.DefaultConfig()
	eng := engine.NewWithConfig(cfg)
	p := vietnamese.NewWithConfig(cfg.Orthography, cfg.AllowZFWJConsonants)
	if err := eng.Register(p); err != nil {
		panic(err)
	}
	if err := eng.SetLanguage("vietnamese"); err != nil {
		panic(err)
	}
	return &InputEngine{eng: eng, enabled: true, logger: logger}
}

// applyAction folds a plugin.Action into the running preedit string
// (e.preedit) and returns the commit text, if any.
func (e *InputEngine) applyAction(a plugin.Action) (commitText string) {
	switch a.Kind {
	case plugin.Replace:
		runes := []rune(e.preedit)
		if a.Delete > 0 && a.Delete <= len(runes) {
			runes = runes[:len(runes)-a.Delete]
		}
		e.preedit = string(runes) + a.Insert
		return ""
	case plugin.Commit:
		// Delete is how many runes of the method's own (not yet
		// committed) render to drop, but the host never saw that
		// render as committed text in the first place, so there's
		// nothing of this engine's preedit to splice against; the
		// whole preedit is simply replaced by the commit text.
		e.preedit = ""
		return a.Insert
	default:
		return ""
	}
}

// ProcessKey handles key events from the frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl/Alt state).
// Output: handled (was key consumed), commitText (text to commit),
// preeditText (composition in progress).
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, string, string, *dbus.Error) {
	if !e.enabled {
		return false, "", "", nil
	}

	if modifiers&(modControl|modMod1) != 0 {
		// Vietnamese input methods don't consume control/alt chords.
		return false, "", e.preedit, nil
	}

	var action plugin.Action
	switch keysym {
	case keyBackspace:
		action = e.eng.ProcessBackspace()
	default:
		ch, ok := keysymToRune(keysym)
		if !ok {
			return false, "", e.preedit, nil
		}
		if modifiers&modShift != 0 && ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		action = e.eng.Process(ch)
	}

	commit := e.applyAction(action)
	handled := action.Kind != plugin.DoNothing

	if e.logger != nil {
		e.logger.Printf("key=0x%x mods=0x%x -> preedit=%q commit=%q handled=%v",
			keysym, modifiers, e.preedit, commit, handled)
	}

	return handled, commit, e.preedit, nil
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	e.eng.Reset()
	e.preedit = ""
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.enabled = enabled
	if !enabled {
		e.eng.Reset()
		e.preedit = ""
	}
	return nil
}

// GetPreedit returns the current preedit string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.preedit, nil
}

func main() {
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "name already taken - another instance may be running")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("vikey.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		defer logFile.Close()
	} else {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
	}

	inputEngine := NewInputEngine(logger)
	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("vikey D-Bus backend is running")
	fmt.Printf("  service:     %s\n", serviceName)
	fmt.Printf("  object path: %s\n", objectPath)
	fmt.Printf("  languages:   %v\n", inputEngine.eng.Languages())
	fmt.Println("waiting for key events...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("shutting down")
}
