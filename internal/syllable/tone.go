package syllable

// toneTable maps every vowel letter (base and marked, both cases) to the
// rune produced by each tone. Reused wholesale from the engine's original
// tone grid; only the key type changed from a named ToneMark to Tone.
var toneTable = map[rune]map[Tone]rune{
	'a': {ToneAcute: 'á', ToneGrave: 'à', ToneHook: 'ả', ToneTilde: 'ã', ToneUnderdot: 'ạ'},
	'A': {ToneAcute: 'Á', ToneGrave: 'À', ToneHook: 'Ả', ToneTilde: 'Ã', ToneUnderdot: 'Ạ'},
	'ă': {ToneAcute: 'ắ', ToneGrave: 'ằ', ToneHook: 'ẳ', ToneTilde: 'ẵ', ToneUnderdot: 'ặ'},
	'Ă': {ToneAcute: 'Ắ', ToneGrave: 'Ằ', ToneHook: 'Ẳ', ToneTilde: 'Ẵ', ToneUnderdot: 'Ặ'},
	'â': {ToneAcute: 'ấ', ToneGrave: 'ầ', ToneHook: 'ẩ', ToneTilde: 'ẫ', ToneUnderdot: 'ậ'},
	'Â': {ToneAcute: 'Ấ', ToneGrave: 'Ầ', ToneHook: 'Ẩ', ToneTilde: 'Ẫ', ToneUnderdot: 'Ậ'},
	'e': {ToneAcute: 'é', ToneGrave: 'è', ToneHook: 'ẻ', ToneTilde: 'ẽ', ToneUnderdot: 'ẹ'},
	'E': {ToneAcute: 'É', ToneGrave: 'È', ToneHook: 'Ẻ', ToneTilde: 'Ẽ', ToneUnderdot: 'Ẹ'},
	'ê': {ToneAcute: 'ế', ToneGrave: 'ề', ToneHook: 'ể', ToneTilde: 'ễ', ToneUnderdot: 'ệ'},
	'Ê': {ToneAcute: 'Ế', ToneGrave: 'Ề', ToneHook: 'Ể', ToneTilde: 'Ễ', ToneUnderdot: 'Ệ'},
	'i': {ToneAcute: 'í', ToneGrave: 'ì', ToneHook: 'ỉ', ToneTilde: 'ĩ', ToneUnderdot: 'ị'},
	'I': {ToneAcute: 'Í', ToneGrave: 'Ì', ToneHook: 'Ỉ', ToneTilde: 'Ĩ', ToneUnderdot: 'Ị'},
	'o': {ToneAcute: 'ó', ToneGrave: 'ò', ToneHook: 'ỏ', ToneTilde: 'õ', ToneUnderdot: 'ọ'},
	'O': {ToneAcute: 'Ó', ToneGrave: 'Ò', ToneHook: 'Ỏ', ToneTilde: 'Õ', ToneUnderdot: 'Ọ'},
	'ô': {ToneAcute: 'ố', ToneGrave: 'ồ', ToneHook: 'ổ', ToneTilde: 'ỗ', ToneUnderdot: 'ộ'},
	'Ô': {ToneAcute: 'Ố', ToneGrave: 'Ồ', ToneHook: 'Ổ', ToneTilde: 'Ỗ', ToneUnderdot: 'Ộ'},
	'ơ': {ToneAcute: 'ớ', ToneGrave: 'ờ', ToneHook: 'ở', ToneTilde: 'ỡ', ToneUnderdot: 'ợ'},
	'Ơ': {ToneAcute: 'Ớ', ToneGrave: 'Ờ', ToneHook: 'Ở', ToneTilde: 'Ỡ', ToneUnderdot: 'Ợ'},
	'u': {ToneAcute: 'ú', ToneGrave: 'ù', ToneHook: 'ủ', ToneTilde: 'ũ', ToneUnderdot: 'ụ'},
	'U': {ToneAcute: 'Ú', ToneGrave: 'Ù', ToneHook: 'Ủ', ToneTilde: 'Ũ', ToneUnderdot: 'Ụ'},
	'ư': {ToneAcute: 'ứ', ToneGrave: 'ừ', ToneHook: 'ử', ToneTilde: 'ữ', ToneUnderdot: 'ự'},
	'Ư': {ToneAcute: 'Ứ', ToneGrave: 'Ừ', ToneHook: 'Ử', ToneTilde: 'Ữ', ToneUnderdot: 'Ự'},
	'y': {ToneAcute: 'ý', ToneGrave: 'ỳ', ToneHook: 'ỷ', ToneTilde: 'ỹ', ToneUnderdot: 'ỵ'},
	'Y': {ToneAcute: 'Ý', ToneGrave: 'Ỳ', ToneHook: 'Ỷ', ToneTilde: 'Ỹ', ToneUnderdot: 'Ỵ'},
}

// ApplyToneToRune returns the vowel rune r carries with tone applied, or r
// unchanged if r isn't a vowel or tone is ToneNone.
func ApplyToneToRune(r rune, tone Tone) rune {
	if tone == ToneNone {
		return r
	}
	if tones, ok := toneTable[r]; ok {
		if result, ok := tones[tone]; ok {
			return result
		}
	}
	return r
}

// StripTone returns the base vowel and tone that r carries, or (r,
// ToneNone) if r carries no tone mark of its own.
func StripTone(r rune) (rune, Tone) {
	for base, tones := range toneTable {
		for tone, marked := range tones {
			if marked == r {
				return base, tone
			}
		}
	}
	return r, ToneNone
}

// Orthography selects which historical convention governs tone placement
// on oa/oe/uy-style clusters.
type Orthography int

const (
	// Modern places the tone by syllable weight (hoà, thuý), matching
	// current Vietnamese orthography guidance.
	Modern Orthography = iota
	// Classical places the tone on the cluster's first vowel (hòa,
	// thúy), matching pre-1980s convention still common in print.
	Classical
)

// PlaceTone determines the index into vowel at which a tone mark belongs,
// following Vietnamese orthographic convention:
//  1. a vowel already carrying a circumflex/breve/horn mark always takes
//     the tone, regardless of cluster shape or position.
//  2. with a final consonant, the tone falls on the second vowel of the
//     cluster, which in a two-vowel cluster is the one right before the
//     final ("toán", "hoạt", "tuýt").
//  3. without a final consonant, two-vowel clusters take the tone on the
//     first vowel, except oa/oe/uy (second vowel in modern style, first in
//     classical) and ua (second vowel).
//  4. three or more vowels without a final consonant take the tone on the
//     second (middle) vowel.
//
// style only affects rule 3's unmarked, final-less oa/oe/uy clusters;
// closed syllables (rule 2) and three-or-more-vowel clusters (rule 4)
// don't disagree between Modern and Classical, so style goes unused on
// those paths.
func PlaceTone(vowel []rune, final string, style Orthography) int {
	n := len(vowel)
	if n <= 1 {
		return 0
	}

	// A marked vowel always takes the tone. When more than one vowel in
	// the cluster is marked (the ươ horn compound marks both letters),
	// the later one is the nucleus and wins: "mười" takes the tone on
	// ơ, not ư.
	markedPos := -1
	for i, r := range vowel {
		if IsMarkedVowel(r) {
			markedPos = i
		}
	}
	if markedPos >= 0 {
		return markedPos
	}

	hasFinal := final != ""

	if !hasFinal && n == 2 {
		first, second := lower(vowel[0]), lower(vowel[1])

		if (first == 'o' && (second == 'a' || second == 'ă' || second == 'e')) ||
			(first == 'u' && second == 'y') {
			if style == Classical {
				return 0
			}
			return 1
		}
		if (first == 'u' || first == 'ư') && second == 'a' {
			return 1
		}
		return 0
	}

	// With a final consonant, the tone lands on the second vowel: the one
	// right before the final in a two-vowel cluster ("toán", "hoạt",
	// "tuýt"), the middle one in a longer cluster.
	if hasFinal {
		return 1
	}

	return 1
}

func lower(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	case r == 'Ă':
		return 'ă'
	case r == 'Â':
		return 'â'
	case r == 'Ê':
		return 'ê'
	case r == 'Ô':
		return 'ô'
	case r == 'Ơ':
		return 'ơ'
	case r == 'Ư':
		return 'ư'
	}
	return r
}
