// Package telex implements the Telex input method: letter doubling (aa,
// ee, oo -> circumflex; aw, ow, uw -> breve/horn; dd -> đ) and tone keys
// (s f r x j) layered on a history-replay parser. Every keystroke and
// backspace reparses the buffered raw keystroke history from scratch
// rather than mutating a running syllable in place, so undo and
// double-key revert fall out of the parser instead of needing separate
// bookkeeping.
package telex

import (
	"unicode"

	"github.com/username/vikey/internal/buffer"
	"github.com/username/vikey/internal/lookup"
	"github.com/username/vikey/internal/plugin"
	"github.com/username/vikey/internal/syllable"
	"github.com/username/vikey/internal/validate"
)

// Method is the Telex plugin.InputMethod implementation.
type Method struct {
	table           *lookup.Table
	orthography     syllable.Orthography
	allowZFWJ       bool
	lastRenderedLen int
}

// New returns a Telex method using the modern orthography's tone
// placement on oa/oe/uy-style clusters.
func New() *Method {
	return NewWithOrthography(syllable.Modern)
}

// NewWithOrthography returns a Telex method with an explicit tone-
// placement style.
func NewWithOrthography(style syllable.Orthography) *Method {
	return NewWithConfig(style, false)
}

// NewWithConfig returns a Telex method with an explicit tone-placement
// style and z/f/w/j-as-consonants setting.
func NewWithConfig(style syllable.Orthography, allowZFWJ bool) *Method {
	return &Method{table: lookup.NewTelex(), orthography: style, allowZFWJ: allowZFWJ}
}

func (m *Method) Name() string { return "Telex" }
func (m *Method) ID() string   { return "telex" }

// isWordBreak reports whether key ends the current word: whitespace
// commits by definition, and Telex treats ordinary punctuation as a soft
// separator that also commits (per the chosen default over leaving the
// word open).
func (m *Method) isWordBreak(key rune) bool {
	info := m.table.Lookup(key)
	return info.IsSeparator || info.IsSoftSeparator
}

// Process appends key to the buffer's history, reparses the whole
// history into a syllable, and emits the diff against the previously
// rendered text. A key that would make the history an impermissible
// Vietnamese prefix is rejected: if a word was already in progress it is
// broken off (committed as-is) and the rejected key starts a fresh one.
func (m *Method) Process(key rune, buf *buffer.Buffer, _ plugin.LookupProvider) plugin.Action {
	if m.isWordBreak(key) {
		return m.commit(buf, key)
	}

	hadPriorWord := !buf.IsEmpty()
	buf.Push(key, unicode.IsLower(key))
	syl := Parse([]rune(buf.String()), m.table)

	if !m.isPermissible(syl) {
		buf.Pop()
		if !hadPriorWord {
			return plugin.NoAction
		}
		return m.wordBreak(buf, key)
	}

	return m.reparse(buf)
}

// isPermissible reports whether syl's components are still a valid
// prefix of some Vietnamese syllable.
func (m *Method) isPermissible(syl *syllable.Syllable) bool {
	return validate.IsPermissible(syl.Initial, string(syl.Vowel), syl.Final, m.allowZFWJ)
}

// wordBreak finalizes buf's current (pre-key) history as a committed
// word and starts a new one-key history with the rejected key. The
// committed text becomes static; lastRenderedLen tracks only the new
// word's rendered length from here on.
func (m *Method) wordBreak(buf *buffer.Buffer, key rune) plugin.Action {
	priorSyl := Parse([]rune(buf.String()), m.table)
	priorRendered := priorSyl.Render(m.orthography)

	buf.Clear()
	buf.Push(key, unicode.IsLower(key))
	newSyl := Parse([]rune(buf.String()), m.table)
	newRendered := newSyl.Render(m.orthography)

	action := plugin.ReplaceAction(m.lastRenderedLen, priorRendered+newRendered)
	m.lastRenderedLen = len([]rune(newRendered))
	return action
}

// commit finalizes the current word, clears the buffer, and returns the
// Commit action that turns the previously rendered text into the
// finished word plus the separator itself. It must carry the previously
// rendered length as Delete, since the in-progress syllable is already
// showing on screen and would otherwise be duplicated instead of
// replaced; a bare CommitAction(0, ...) is only correct when the buffer
// was already empty and nothing is on screen to delete.
func (m *Method) commit(buf *buffer.Buffer, separator rune) plugin.Action {
	if buf.IsEmpty() {
		return plugin.CommitAction(0, string(separator))
	}
	syl := Parse([]rune(buf.String()), m.table)
	rendered := syl.Render(m.orthography)
	buf.Clear()
	action := plugin.CommitAction(m.lastRenderedLen, rendered+string(separator))
	m.lastRenderedLen = 0
	return action
}

// reparse rebuilds the syllable from the buffer's full raw history and
// returns the Replace action that turns the previously emitted text into
// the freshly rendered one.
func (m *Method) reparse(buf *buffer.Buffer) plugin.Action {
	syl := Parse([]rune(buf.String()), m.table)
	rendered := syl.Render(m.orthography)
	renderedLen := len([]rune(rendered))

	action := plugin.ReplaceAction(m.lastRenderedLen, rendered)
	m.lastRenderedLen = renderedLen
	return action
}

// ProcessBackspace drops the most recent raw keystroke and reparses.
func (m *Method) ProcessBackspace(buf *buffer.Buffer) plugin.Action {
	if buf.IsEmpty() {
		return plugin.NoAction
	}
	buf.Pop()
	if buf.IsEmpty() {
		action := plugin.ReplaceAction(m.lastRenderedLen, "")
		m.lastRenderedLen = 0
		return action
	}
	return m.reparse(buf)
}

// Reset clears transient rendering state; the buffer itself is owned by
// the engine and cleared separately.
func (m *Method) Reset() {
	m.lastRenderedLen = 0
}

// CanUndo reports whether there is a rendered word to roll back.
func (m *Method) CanUndo(buf *buffer.Buffer) bool {
	return !buf.IsEmpty()
}

// Undo is equivalent to a single backspace: history-replay means there is
// no separate "last transformation" to peel off, only the last keystroke.
func (m *Method) Undo(buf *buffer.Buffer) plugin.Action {
	return m.ProcessBackspace(buf)
}

var _ plugin.InputMethod = (*Method)(nil)

// Parse rebuilds a syllable from scratch given the complete raw keystroke
// history of the current word. It is the single source of truth for
// Telex transformation semantics; Process and ProcessBackspace both call
// it instead of mutating a running syllable.
func Parse(history []rune, table *lookup.Table) *syllable.Syllable {
	syl := &syllable.Syllable{}

	for _, ch := range history {
		lower := unicode.ToLower(ch)
		upper := unicode.IsUpper(ch)
		info := table.Lookup(ch)

		if lower == 'z' && len(syl.Vowel) > 0 {
			syl.Tone = syllable.ToneNone
			continue
		}

		if info.ToneIndex != lookup.ToneIndexNone && len(syl.Vowel) > 0 {
			syl.Tone = toneFromIndex(info.ToneIndex)
			continue
		}

		if applyDoubling(syl, lower, ch) {
			continue
		}

		if lower == 'w' {
			if applyWMark(syl, ch) {
				continue
			}
			if len(syl.Vowel) == 0 {
				syl.Vowel = append(syl.Vowel, caseAs('ư', upper))
				continue
			}
		}

		if lower == 'd' && applyDStroke(syl, ch) {
			continue
		}

		if info.IsVowel() {
			syl.Vowel = append(syl.Vowel, ch)
			continue
		}

		if len(syl.Vowel) == 0 {
			syl.Initial += string(ch)
		} else {
			syl.Final += string(ch)
		}
	}

	return syl
}

// applyDoubling handles aa->â, ee->ê, oo->ô, and their double-key revert
// (a third matching keystroke strips the modification and appends the
// literal letter instead).
func applyDoubling(syl *syllable.Syllable, lower, raw rune) bool {
	if lower != 'a' && lower != 'e' && lower != 'o' {
		return false
	}
	if len(syl.Vowel) == 0 {
		return false
	}
	last := unicode.ToLower(syl.Vowel[len(syl.Vowel)-1])
	if last != lower {
		return false
	}

	mod := syllable.ModCircumflex
	if syl.HasModification(mod) {
		syl.RemoveModification(mod)
		syl.Vowel = append(syl.Vowel, raw)
		return true
	}
	syl.AddModification(mod)
	return true
}

// applyWMark handles aw->ă (breve) and ow/uw->ơ/ư (horn), along with each
// mark's double-key revert, based on the vowel character immediately
// preceding the 'w'.
func applyWMark(syl *syllable.Syllable, raw rune) bool {
	if len(syl.Vowel) == 0 {
		return false
	}
	last := unicode.ToLower(syl.Vowel[len(syl.Vowel)-1])

	var mod syllable.Modification
	switch last {
	case 'a':
		mod = syllable.ModBreve
	case 'o', 'u':
		mod = syllable.ModHorn
	default:
		return false
	}

	if syl.HasModification(mod) {
		syl.RemoveModification(mod)
		syl.Vowel = append(syl.Vowel, raw)
		return true
	}
	syl.AddModification(mod)
	return true
}

// applyDStroke handles dd->đ on the initial consonant.
func applyDStroke(syl *syllable.Syllable, raw rune) bool {
	if len(syl.Initial) == 0 {
		return false
	}
	runes := []rune(syl.Initial)
	last := unicode.ToLower(runes[len(runes)-1])
	if last != 'd' {
		return false
	}

	if syl.HasModification(syllable.ModDStroke) {
		syl.RemoveModification(syllable.ModDStroke)
		syl.Initial += string(raw)
		return true
	}
	syl.AddModification(syllable.ModDStroke)
	return true
}

func caseAs(r rune, upper bool) rune {
	if upper {
		return unicode.ToUpper(r)
	}
	return r
}

func toneFromIndex(idx lookup.ToneIndex) syllable.Tone {
	switch idx {
	case lookup.ToneIndexAcute:
		return syllable.ToneAcute
	case lookup.ToneIndexGrave:
		return syllable.ToneGrave
	case lookup.ToneIndexHook:
		return syllable.ToneHook
	case lookup.ToneIndexTilde:
		return syllable.ToneTilde
	case lookup.ToneIndexUnderdot:
		return syllable.ToneUnderdot
	default:
		return syllable.ToneNone
	}
}
