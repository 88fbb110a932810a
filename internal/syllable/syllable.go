// Package syllable models a Vietnamese syllable as (initial, vowel, final)
// plus an optional tone and a set of letter modifications, and renders it
// to NFC-composed Unicode text.
package syllable

import "golang.org/x/text/unicode/norm"

// Tone is a Vietnamese tone mark.
type Tone int

const (
	ToneNone Tone = iota
	ToneAcute
	ToneGrave
	ToneHook
	ToneTilde
	ToneUnderdot
)

// Modification is a letter modification applied to a base vowel or consonant.
type Modification int

const (
	ModCircumflex Modification = iota // a->â, e->ê, o->ô
	ModBreve                          // a->ă
	ModHorn                            // o->ơ, u->ư
	ModDStroke                         // d->đ
)

// Syllable is the (initial, vowel, final) triple the engine assembles from
// a keystroke history, plus the tone and modifications applied to it.
type Syllable struct {
	Initial string
	Vowel   []rune
	Final   string
	Tone    Tone
	Mods    []Modification
}

// IsEmpty reports whether the syllable carries no text at all.
func (s *Syllable) IsEmpty() bool {
	return s.Initial == "" && len(s.Vowel) == 0 && s.Final == ""
}

// Reset clears the syllable back to empty.
func (s *Syllable) Reset() {
	s.Initial = ""
	s.Vowel = s.Vowel[:0]
	s.Final = ""
	s.Tone = ToneNone
	s.Mods = s.Mods[:0]
}

// HasModification reports whether m has already been applied.
func (s *Syllable) HasModification(m Modification) bool {
	for _, existing := range s.Mods {
		if existing == m {
			return true
		}
	}
	return false
}

// AddModification records m if it isn't already present.
func (s *Syllable) AddModification(m Modification) {
	if !s.HasModification(m) {
		s.Mods = append(s.Mods, m)
	}
}

// RemoveModification drops m if present, reporting whether it was removed.
func (s *Syllable) RemoveModification(m Modification) bool {
	for i, existing := range s.Mods {
		if existing == m {
			s.Mods = append(s.Mods[:i], s.Mods[i+1:]...)
			return true
		}
	}
	return false
}

// modifiedVowel applies every recorded modification to the raw vowel
// cluster, left to right, returning the resulting runes.
func (s *Syllable) modifiedVowel() []rune {
	out := make([]rune, len(s.Vowel))
	copy(out, s.Vowel)
	for i, r := range out {
		for _, m := range s.Mods {
			if mod, ok := vowelMarkTable[r][m]; ok {
				r = mod
			}
		}
		out[i] = r
	}
	return out
}

// Render composes the syllable into its final NFC-normalized text,
// placing the tone mark according to style.
func (s *Syllable) Render(style Orthography) string {
	vowel := s.modifiedVowel()
	pos := PlaceTone(vowel, s.Final, style)

	initial := s.Initial
	if s.HasModification(ModDStroke) {
		initial = applyDStroke(initial)
	}

	var out []rune
	out = append(out, []rune(initial)...)
	for i, r := range vowel {
		if i == pos && s.Tone != ToneNone {
			r = ApplyToneToRune(r, s.Tone)
		}
		out = append(out, r)
	}
	out = append(out, []rune(s.Final)...)

	return norm.NFC.String(string(out))
}

// applyDStroke replaces every d/D in the initial consonant with đ/Đ.
func applyDStroke(initial string) string {
	out := make([]rune, 0, len(initial))
	for _, r := range initial {
		switch r {
		case 'd':
			out = append(out, 'đ')
		case 'D':
			out = append(out, 'Đ')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// vowelMarkTable maps a base vowel rune to the rune it becomes under each
// modification. Entries absent from the inner map mean the modification
// does not apply to that vowel.
var vowelMarkTable = map[rune]map[Modification]rune{
	'a': {ModCircumflex: 'â', ModBreve: 'ă'},
	'A': {ModCircumflex: 'Â', ModBreve: 'Ă'},
	'e': {ModCircumflex: 'ê'},
	'E': {ModCircumflex: 'Ê'},
	'o': {ModCircumflex: 'ô', ModHorn: 'ơ'},
	'O': {ModCircumflex: 'Ô', ModHorn: 'Ơ'},
	'u': {ModHorn: 'ư'},
	'U': {ModHorn: 'Ư'},
}

// IsMarkedVowel reports whether r already carries a circumflex, breve or
// horn (â ă ê ô ơ ư), independent of any tone mark.
func IsMarkedVowel(r rune) bool {
	switch r {
	case 'ă', 'Ă', 'â', 'Â', 'ê', 'Ê', 'ô', 'Ô', 'ơ', 'Ơ', 'ư', 'Ư':
		return true
	}
	return false
}

// IsVowel reports whether r is a Vietnamese vowel letter, base or marked.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'A', 'ă', 'Ă', 'â', 'Â',
		'e', 'E', 'ê', 'Ê',
		'i', 'I', 'y', 'Y',
		'o', 'O', 'ô', 'Ô', 'ơ', 'Ơ',
		'u', 'U', 'ư', 'Ư':
		return true
	}
	return false
}
