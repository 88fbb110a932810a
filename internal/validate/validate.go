// Package validate checks whether a syllable's (initial, vowel, final)
// triple is a permissible prefix of Vietnamese spelling, or fully valid
// Vietnamese spelling, using grouped consonant-vowel compatibility tables.
package validate

import "strings"

// initialConsonants lists every valid initial consonant sequence, plus the
// empty string (a syllable may start directly with its vowel).
var initialConsonants = []string{
	"b", "d", "đ", "g", "gh", "m", "n", "nh", "p", "ph", "r", "s", "t", "tr",
	"v", "c", "h", "k", "kh", "qu", "th", "ch", "gi", "l", "ng", "ngh", "x", "",
}

// vowels lists every valid vowel cluster Vietnamese spelling admits.
var vowels = []string{
	"ê", "i", "ua", "uê", "uy", "y", "a", "iê", "oa", "uyê", "yê", "â", "ă",
	"e", "o", "oo", "ô", "ơ", "oe", "u", "ư", "uâ", "uô", "ươ", "uo", "ie",
	"oă", "uơ", "ai", "ao", "au", "âu", "ay", "ây", "eo", "êu", "ia", "iêu",
	"iu", "oai", "oao", "oay", "oeo", "oi", "ôi", "ơi", "ưa", "uây", "ui",
	"ưi", "uôi", "ươi", "ươu", "ưu", "uya", "uyu", "yêu",
}

// finalConsonants lists every valid final consonant, plus the empty string
// (a syllable may end directly on its vowel).
var finalConsonants = []string{
	"ch", "nh", "c", "ng", "m", "n", "p", "t", "k", "",
}

// zfwjInitials lists the non-standard initial letters some IME
// configurations accept as shortcuts for sounds Vietnamese spelling
// otherwise writes with a digraph (z for gi/d, f for ph, w for qu/u, j for
// gi/d). Only consulted when a caller opts in via allowZFWJ.
var zfwjInitials = []string{"z", "f", "w", "j"}

func isZFWJInitial(initial string) bool {
	for _, z := range zfwjInitials {
		if initial == z {
			return true
		}
	}
	return false
}

// The CV/VC compatibility model groups each of the three component lists
// above into equivalence classes, then records which vowel-group a given
// initial-group may combine with, and which final-group a given
// vowel-group may combine with. A syllable is valid only if some member of
// its initial's group(s) is compatible with some member of its vowel's
// group(s), and likewise for vowel/final.
var firstConsonantGroups = [][]string{
	strings.Fields("b d đ g gh m n nh p ph r s t tr v"), // 0
	strings.Fields("c h k kh qu th"),                     // 1
	strings.Fields("ch gi l ng ngh x"),                   // 2
	strings.Fields("đ l"),                                // 3
	strings.Fields("h"),                                  // 4
}

var vowelGroups = [][]string{
	strings.Fields("ê i ua uê uy y"),                    // 0
	strings.Fields("a iê oa uyê yê ie"),                  // 1
	strings.Fields("â ă e o oo ô ơ oe u ư uâ uô ươ uo"),  // 2
	strings.Fields("oă"),                                 // 3
	strings.Fields("uơ"),                                 // 4
	strings.Fields("ai ao au âu ay ây eo êu ia iêu iu oai oao oay oeo oi ôi ơi ưa uây ui ưi uôi ươi ươu ưu uya uyu yêu"), // 5
	strings.Fields("ă"), // 6
	strings.Fields("i"), // 7
}

var lastConsonantGroups = [][]string{
	strings.Fields("ch nh"),   // 0
	strings.Fields("c ng"),    // 1
	strings.Fields("m n p t"), // 2
	strings.Fields("k"),       // 3
}

// cvMatrix[i] lists the vowel groups an initial-group-i consonant may
// combine with.
var cvMatrix = [][]int{
	{0, 1, 2, 5},
	{0, 1, 2, 3, 4, 5},
	{0, 1, 2, 3, 5},
	{6},
	{7},
}

// vcMatrix[v] lists the final-consonant groups a vowel-group-v cluster may
// combine with.
var vcMatrix = [][]int{
	{0, 2},
	{0, 1, 2},
	{1, 2},
	{1, 2},
	{},
	{},
	{3},
	{},
}

// findGroups returns the indices of every group in groups that contains
// target verbatim.
func findGroups(groups [][]string, target string) []int {
	var indices []int
	for i, group := range groups {
		for _, item := range group {
			if item == target {
				indices = append(indices, i)
				break
			}
		}
	}
	return indices
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func anyPairCompatible(aGroups, bGroups []int, matrix [][]int) bool {
	for _, a := range aGroups {
		for _, b := range bGroups {
			if containsInt(matrix[a], b) {
				return true
			}
		}
	}
	return false
}

// IsValid reports whether (initial, vowel, final) is a fully valid, fully
// spelled Vietnamese syllable: every component must itself be a known
// sequence and the CV/VC group matrices must accept the combination.
// allowZFWJ additionally accepts z, f, w, j as initial consonants (§6
// "Allow z/f/w/j as consonants"), skipping the CV compatibility check for
// them since they carry no group membership of their own.
func IsValid(initial, vowel, final string, allowZFWJ bool) bool {
	initial = strings.ToLower(initial)
	vowel = strings.ToLower(vowel)
	final = strings.ToLower(final)

	zfwj := allowZFWJ && isZFWJInitial(initial)

	iGroups := findGroups(firstConsonantGroups, initial)
	vGroups := findGroups(vowelGroups, vowel)
	var fGroups []int
	if final != "" {
		fGroups = findGroups(lastConsonantGroups, final)
	}

	initialOK := initial == "" || len(iGroups) > 0 || zfwj
	vowelOK := vowel != "" && len(vGroups) > 0
	finalOK := final == "" || len(fGroups) > 0
	if !initialOK || !vowelOK || !finalOK {
		return false
	}

	if initial != "" && !zfwj {
		if !anyPairCompatible(iGroups, vGroups, cvMatrix) {
			return false
		}
	}

	if final != "" {
		if !anyPairCompatible(vGroups, fGroups, vcMatrix) {
			return false
		}
	}

	return true
}

// hasPrefix reports whether any entry in list starts with target.
func hasPrefix(list []string, target string) bool {
	if target == "" {
		return true
	}
	for _, item := range list {
		if strings.HasPrefix(item, target) {
			return true
		}
	}
	return false
}

// IsPermissible reports whether (initial, vowel, final) could still grow
// into a valid syllable: each component must be a prefix of some known
// sequence, even if the triple as a whole isn't valid yet. This is the
// predicate the Telex, VNI and VIQR parsers use while a word is still
// being typed. allowZFWJ additionally permits z, f, w, j as initials.
func IsPermissible(initial, vowel, final string, allowZFWJ bool) bool {
	initial = strings.ToLower(initial)
	vowel = strings.ToLower(vowel)
	final = strings.ToLower(final)

	initialOK := hasPrefix(initialConsonants, initial) ||
		(allowZFWJ && isZFWJInitial(initial))

	return initialOK &&
		hasPrefix(vowels, vowel) &&
		hasPrefix(finalConsonants, final)
}
