// Package vni implements the VNI input method: digits 1-5 place a tone
// directly, 0 removes it, and 6-9 apply a letter modification directly
// (6=circumflex, 7=horn, 8=breve, 9=d-stroke) to the most recent
// compatible vowel or consonant. Unlike Telex, VNI marks never depend on
// matching a repeated letter, so a digit either applies or is rejected in
// one step; Parse still replays the complete raw history from scratch on
// every keystroke for the same reasons Telex does.
package vni

import (
	"unicode"

	"github.com/username/vikey/internal/buffer"
	"github.com/username/vikey/internal/lookup"
	"github.com/username/vikey/internal/plugin"
	"github.com/username/vikey/internal/syllable"
	"github.com/username/vikey/internal/validate"
)

// Method is the VNI plugin.InputMethod implementation.
type Method struct {
	table           *lookup.Table
	orthography     syllable.Orthography
	allowZFWJ       bool
	lastRenderedLen int
}

// New returns a VNI method using modern orthography.
func New() *Method {
	return NewWithOrthography(syllable.Modern)
}

// NewWithOrthography returns a VNI method with an explicit tone-placement
// style.
func NewWithOrthography(style syllable.Orthography) *Method {
	return NewWithConfig(style, false)
}

// NewWithConfig returns a VNI method with an explicit tone-placement
// style and z/f/w/j-as-consonants setting.
func NewWithConfig(style syllable.Orthography, allowZFWJ bool) *Method {
	return &Method{table: lookup.NewVNI(), orthography: style, allowZFWJ: allowZFWJ}
}

func (m *Method) Name() string { return "VNI" }
func (m *Method) ID() string   { return "vni" }

func (m *Method) isWordBreak(key rune) bool {
	info := m.table.Lookup(key)
	return info.IsSeparator || info.IsSoftSeparator
}

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

func (m *Method) isPermissible(syl *syllable.Syllable) bool {
	return validate.IsPermissible(syl.Initial, string(syl.Vowel), syl.Final, m.allowZFWJ)
}

// wordBreak commits buf's pre-key history and starts a fresh one-key
// history with the rejected key, same as Telex's word-break.
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

func (m *Method) reparse(buf *buffer.Buffer) plugin.Action {
	syl := Parse([]rune(buf.String()), m.table)
	rendered := syl.Render(m.orthography)
	renderedLen := len([]rune(rendered))
	action := plugin.ReplaceAction(m.lastRenderedLen, rendered)
	m.lastRenderedLen = renderedLen
	return action
}

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

func (m *Method) Reset() {
	m.lastRenderedLen = 0
}

func (m *Method) CanUndo(buf *buffer.Buffer) bool {
	return !buf.IsEmpty()
}

func (m *Method) Undo(buf *buffer.Buffer) plugin.Action {
	return m.ProcessBackspace(buf)
}

var _ plugin.InputMethod = (*Method)(nil)

// Parse rebuilds a syllable from scratch given the complete raw keystroke
// history of the current word.
func Parse(history []rune, table *lookup.Table) *syllable.Syllable {
	syl := &syllable.Syllable{}

	for _, ch := range history {
		info := table.Lookup(ch)

		if ch == '0' && len(syl.Vowel) > 0 {
			syl.Tone = syllable.ToneNone
			continue
		}

		if info.ToneIndex != lookup.ToneIndexNone && len(syl.Vowel) > 0 {
			syl.Tone = toneFromIndex(info.ToneIndex)
			continue
		}

		if info.MarkIndex != lookup.MarkNone {
			if applyMark(syl, info.MarkIndex) {
				continue
			}
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

// applyMark applies digit-selected modification mark to the appropriate
// target: 9 (d-stroke) targets the trailing 'd' of the initial consonant,
// the rest target the most recent vowel letter. A second press of the
// same digit toggles the mark back off.
func applyMark(syl *syllable.Syllable, mark lookup.MarkIndex) bool {
	if mark == lookup.MarkDStroke {
		if len(syl.Initial) == 0 {
			return false
		}
		runes := []rune(syl.Initial)
		if unicode.ToLower(runes[len(runes)-1]) != 'd' {
			return false
		}
		toggleModification(syl, syllable.ModDStroke)
		return true
	}

	if len(syl.Vowel) == 0 {
		return false
	}
	last := unicode.ToLower(syl.Vowel[len(syl.Vowel)-1])

	var mod syllable.Modification
	switch mark {
	case lookup.MarkCircumflex:
		if last != 'a' && last != 'e' && last != 'o' {
			return false
		}
		mod = syllable.ModCircumflex
	case lookup.MarkHorn:
		if last != 'o' && last != 'u' {
			return false
		}
		mod = syllable.ModHorn
	case lookup.MarkBreve:
		if last != 'a' {
			return false
		}
		mod = syllable.ModBreve
	default:
		return false
	}

	toggleModification(syl, mod)
	return true
}

func toggleModification(syl *syllable.Syllable, mod syllable.Modification) {
	if syl.HasModification(mod) {
		syl.RemoveModification(mod)
		return
	}
	syl.AddModification(mod)
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
