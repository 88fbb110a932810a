// Package plugin defines the capability interfaces a (language, input
// method) pair implements so the engine can dispatch keystrokes without
// knowing which language or method is active.
package plugin

import "github.com/username/vikey/internal/buffer"

// ActionKind discriminates the three shapes an Action can take.
type ActionKind int

const (
	// DoNothing means the keystroke was not consumed; the host should
	// forward it unmodified.
	DoNothing ActionKind = iota
	// Replace means the host should delete Delete runes immediately
	// before the cursor and insert Insert in their place.
	Replace
	// Commit means the current word is finished; Insert is the final
	// text and the input method resets for the next word.
	Commit
)

// Action is the tagged result of processing one keystroke or backspace.
type Action struct {
	Kind   ActionKind
	Delete int
	Insert string
}

// NoAction is the canonical DoNothing action.
var NoAction = Action{Kind: DoNothing}

// ReplaceAction builds a Replace action.
func ReplaceAction(deleteCount int, insert string) Action {
	return Action{Kind: Replace, Delete: deleteCount, Insert: insert}
}

// CommitAction builds a Commit action. deleteCount is how many runes of
// the method's own previously rendered (not-yet-committed) text must be
// deleted before splicing in text; it has nothing to do with the host
// document and is 0 whenever nothing was rendered yet.
func CommitAction(deleteCount int, text string) Action {
	return Action{Kind: Commit, Delete: deleteCount, Insert: text}
}

// InputMethod transforms a stream of keystrokes for one (language, method)
// pair. Implementations keep whatever internal state they need to support
// Undo; the engine never inspects that state directly.
type InputMethod interface {
	Name() string
	ID() string

	// Process handles one typed character against the shared keystroke
	// buffer and the language's lookup table.
	Process(key rune, buf *buffer.Buffer, lookup LookupProvider) Action

	// ProcessBackspace handles a backspace keystroke.
	ProcessBackspace(buf *buffer.Buffer) Action

	// Reset clears any transformation state the method has accumulated,
	// without touching buf.
	Reset()

	// CanUndo reports whether the most recent transformation can be
	// rolled back to its pre-transformation keystrokes.
	CanUndo(buf *buffer.Buffer) bool

	// Undo reverts the most recent transformation.
	Undo(buf *buffer.Buffer) Action
}

// LookupProvider answers per-character classification questions for one
// language's character set.
type LookupProvider interface {
	IsValidChar(r rune) bool
	IsVowel(r rune) bool
	IsConsonant(r rune) bool
	IsSeparator(r rune) bool
}

// LanguageRules captures a language's spelling validity rules.
type LanguageRules interface {
	IsValidWord(word string) bool
	IsValidSyllable(syllable string) bool
	// Suggest returns spelling corrections for word; an empty slice
	// means no suggestions are offered.
	Suggest(word string) []string
	// FindTonePosition returns the rune index within syllable where a
	// tone mark belongs, or -1 if the syllable takes no tone.
	FindTonePosition(syllable string) int
}

// LanguagePlugin is the top-level capability object a language
// implementation registers with the engine.
type LanguagePlugin interface {
	Name() string
	ID() string
	InputMethods() []string
	CreateInputMethod(id string) (InputMethod, bool)
	Lookup() LookupProvider
	Rules() LanguageRules
}

// PermissiveRules is a LanguageRules that accepts everything and offers no
// suggestions or tone placement; languages without spelling validation can
// embed it to satisfy the interface.
type PermissiveRules struct{}

func (PermissiveRules) IsValidWord(string) bool     { return true }
func (PermissiveRules) IsValidSyllable(string) bool { return true }
func (PermissiveRules) Suggest(string) []string     { return nil }
func (PermissiveRules) FindTonePosition(string) int { return -1 }
