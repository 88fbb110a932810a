// Package lookup builds per-input-method character classification tables:
// a flat 256-entry array keyed by the ASCII codepoint of a keystroke, with
// non-ASCII keys falling back to the zero value.
package lookup

// VowelIndex identifies which base vowel (if any) a keystroke represents.
type VowelIndex int

const (
	VowelNone VowelIndex = iota
	VowelA
	VowelE
	VowelI
	VowelO
	VowelU
	VowelY
)

// ToneIndex identifies which tone (if any) a keystroke marks.
type ToneIndex int

const (
	ToneIndexNone ToneIndex = iota
	ToneIndexAcute
	ToneIndexGrave
	ToneIndexHook
	ToneIndexTilde
	ToneIndexUnderdot
)

// MarkIndex identifies the VNI-style compound mark a digit keystroke
// represents (6=circumflex, 7=horn, 8=breve, 9=d-stroke).
type MarkIndex int

const (
	MarkNone MarkIndex = iota
	MarkCircumflex
	MarkHorn
	MarkBreve
	MarkDStroke
)

// CharInfo is the per-character classification an input method needs: is
// it a vowel, does it carry a tone or mark assignment, is it a word
// separator.
type CharInfo struct {
	VowelIndex       VowelIndex
	ToneIndex        ToneIndex
	IsBreve          bool // 'w'/'W' in Telex
	MarkIndex        MarkIndex
	IsSeparator      bool // whitespace: hard word boundary
	IsSoftSeparator  bool // punctuation: commits the word but isn't whitespace
	IsVowelModifier  bool // a/e/o/w/d in Telex-style doubling
	IsConsonantStart bool
}

// Table is a per-input-method classification table, built once.
type Table struct {
	entries [256]CharInfo
}

// Lookup returns the classification for a keystroke rune. Non-ASCII
// keystrokes return the zero CharInfo.
func (t *Table) Lookup(r rune) CharInfo {
	if r < 0 || r > 255 {
		return CharInfo{}
	}
	return t.entries[r]
}

// IsVowel reports whether the classified character is a vowel.
func (c CharInfo) IsVowel() bool { return c.VowelIndex != VowelNone }

// build is the shared scaffolding: vowels, consonants, separators and soft
// separators are the same across Telex/VNI/VIQR; only tone/mark key
// assignment differs per method.
func build() *Table {
	tbl := &Table{}

	vowels := []struct {
		lower rune
		idx   VowelIndex
	}{
		{'a', VowelA}, {'e', VowelE}, {'i', VowelI},
		{'o', VowelO}, {'u', VowelU}, {'y', VowelY},
	}
	for _, v := range vowels {
		upper := v.lower - 'a' + 'A'
		tbl.entries[v.lower].VowelIndex = v.idx
		tbl.entries[upper].VowelIndex = v.idx
	}

	for c := rune('a'); c <= 'z'; c++ {
		if tbl.entries[c].VowelIndex == VowelNone {
			tbl.entries[c].IsConsonantStart = true
			tbl.entries[c-'a'+'A'].IsConsonantStart = true
		}
	}

	for _, c := range []rune{' ', '\n', '\t', '\r'} {
		tbl.entries[c].IsSeparator = true
	}
	for _, c := range []rune{',', '.', ';', ':', '!', '?', '-', '_',
		'(', ')', '[', ']', '{', '}', '"', '\''} {
		tbl.entries[c].IsSoftSeparator = true
	}

	return tbl
}

// NewTelex builds the classification table for the Telex input method:
// s f r x j mark tones, w marks breve/horn, a/e/o/d are vowel modifiers.
func NewTelex() *Table {
	tbl := build()

	tones := []struct {
		lower rune
		idx   ToneIndex
	}{
		{'s', ToneIndexAcute}, {'f', ToneIndexGrave}, {'r', ToneIndexHook},
		{'x', ToneIndexTilde}, {'j', ToneIndexUnderdot},
	}
	for _, tn := range tones {
		upper := tn.lower - 'a' + 'A'
		tbl.entries[tn.lower].ToneIndex = tn.idx
		tbl.entries[upper].ToneIndex = tn.idx
	}
	// z is the tone-remove key; it carries no ToneIndex or other flag in
	// this table (the Telex method special-cases it by letter).
	for _, c := range []rune{'w', 'W', 'a', 'A', 'e', 'E', 'o', 'O', 'd', 'D'} {
		tbl.entries[c].IsVowelModifier = true
	}
	tbl.entries['w'].IsBreve = true
	tbl.entries['W'].IsBreve = true

	return tbl
}

// NewVNI builds the classification table for the VNI input method: digits
// 1-5 mark tones, 0 removes a tone, 6-9 mark compound marks.
func NewVNI() *Table {
	tbl := build()

	tones := []struct {
		digit rune
		idx   ToneIndex
	}{
		{'1', ToneIndexAcute}, {'2', ToneIndexGrave}, {'3', ToneIndexHook},
		{'4', ToneIndexTilde}, {'5', ToneIndexUnderdot},
	}
	for _, tn := range tones {
		tbl.entries[tn.digit].ToneIndex = tn.idx
	}

	marks := []struct {
		digit rune
		idx   MarkIndex
	}{
		{'6', MarkCircumflex}, {'7', MarkHorn}, {'8', MarkBreve}, {'9', MarkDStroke},
	}
	for _, m := range marks {
		tbl.entries[m.digit].MarkIndex = m.idx
	}

	return tbl
}

// NewVIQR builds the classification table for the VIQR input method:
// ASCII punctuation marks tones and compound marks directly.
func NewVIQR() *Table {
	tbl := build()

	tones := []struct {
		key rune
		idx ToneIndex
	}{
		{'\'', ToneIndexAcute}, {'`', ToneIndexGrave}, {'?', ToneIndexHook},
		{'~', ToneIndexTilde}, {'.', ToneIndexUnderdot},
	}
	for _, tn := range tones {
		tbl.entries[tn.key].ToneIndex = tn.idx
		// '\'', '?' and '.' double as soft separators in the shared
		// scaffolding; VIQR repurposes them as tone keys, so clear that flag.
		tbl.entries[tn.key].IsSoftSeparator = false
	}

	marks := []struct {
		key rune
		idx MarkIndex
	}{
		{'^', MarkCircumflex}, {'+', MarkHorn}, {'(', MarkBreve},
	}
	for _, m := range marks {
		tbl.entries[m.key].MarkIndex = m.idx
		tbl.entries[m.key].IsVowelModifier = true
	}
	tbl.entries['('].IsSoftSeparator = false

	return tbl
}
