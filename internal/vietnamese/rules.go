package vietnamese

import (
	"strings"

	"github.com/username/vikey/internal/syllable"
	"github.com/username/vikey/internal/validate"
)

// rules is the Vietnamese plugin.LanguageRules implementation: spelling
// validity delegates to the prefix/group tables in internal/validate, and
// tone placement delegates to the same PlaceTone rule the input methods
// render with.
type rules struct {
	orthography syllable.Orthography
	allowZFWJ   bool
}

func newRules(style syllable.Orthography, allowZFWJ bool) rules {
	return rules{orthography: style, allowZFWJ: allowZFWJ}
}

// splitSyllable breaks a plain (untoned) syllable into its initial
// consonant, vowel cluster and final consonant by locating the single run
// of vowel runes within it. A syllable with no vowel run, or more than
// one, is not decomposable and splitSyllable reports false.
func splitSyllable(s string) (initial string, vowel []rune, final string, ok bool) {
	runes := []rune(s)
	start, end := -1, -1
	for i, r := range runes {
		if syllable.IsVowel(r) {
			if start == -1 {
				start = i
			}
			end = i
		} else if start != -1 && end != -1 && i > end {
			// a consonant after the vowel run began means we've left it;
			// anything beyond belongs to final, handled below
			break
		}
	}
	if start == -1 {
		return "", nil, "", false
	}
	// verify the vowel run is contiguous
	for i := start; i <= end; i++ {
		if !syllable.IsVowel(runes[i]) {
			return "", nil, "", false
		}
	}
	// a second vowel run after the consonants that follow the first one
	for _, r := range runes[end+1:] {
		if syllable.IsVowel(r) {
			return "", nil, "", false
		}
	}
	return string(runes[:start]), runes[start : end+1], string(runes[end+1:]), true
}

func (r rules) IsValidSyllable(s string) bool {
	initial, vowel, final, ok := splitSyllable(strings.ToLower(s))
	if !ok {
		return false
	}
	return validate.IsValid(initial, string(vowel), final, r.allowZFWJ)
}

func (r rules) IsValidWord(word string) bool {
	syllables := strings.Fields(word)
	if len(syllables) == 0 {
		return false
	}
	for _, s := range syllables {
		if !r.IsValidSyllable(s) {
			return false
		}
	}
	return true
}

// Suggest offers no spelling corrections; the validator only distinguishes
// valid/permissible from invalid, it does not propose alternatives.
func (r rules) Suggest(string) []string {
	return nil
}

// FindTonePosition returns the rune index within syllable (assumed already
// fully formed, untoned) where a tone mark belongs, or -1 if the syllable
// has no vowel to carry one.
func (r rules) FindTonePosition(s string) int {
	initial, vowel, final, ok := splitSyllable(s)
	if !ok || len(vowel) == 0 {
		return -1
	}
	offset := syllable.PlaceTone(vowel, final, r.orthography)
	return len([]rune(initial)) + offset
}
