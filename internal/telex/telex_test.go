package telex

import (
	"testing"

	"github.com/username/vikey/internal/buffer"
	"github.com/username/vikey/internal/lookup"
	"github.com/username/vikey/internal/plugin"
	"github.com/username/vikey/internal/syllable"
)

var tbl = lookup.NewTelex()

func render(word string) string {
	syl := Parse([]rune(word), tbl)
	return syl.Render(syllable.Modern)
}

func TestParseCircumflexDoubling(t *testing.T) {
	syl := Parse([]rune("aa"), tbl)
	if !syl.HasModification(syllable.ModCircumflex) {
		t.Fatal("aa should apply circumflex")
	}
	if string(syl.Vowel) != "a" {
		t.Fatalf("Vowel = %q, want %q", string(syl.Vowel), "a")
	}
}

// TestWordScenarios is a table of full Telex keystroke sequences for real
// words, each checked against the NFC text it should render to.
func TestWordScenarios(t *testing.T) {
	cases := []struct {
		name, input, want string
	}{
		{"plain word, no transforms", "ba", "ba"},
		{"aa circumflex plus tone", "maas", "mấ"},
		{"aw breve", "aw", "ă"},
		{"ow horn", "own", "ơn"},
		{"uw horn", "tuw", "tư"},
		{"dd stroke", "ddoong", "đông"},
		{"tone sac", "as", "á"},
		{"tone huyen", "af", "à"},
		{"tone hoi", "ar", "ả"},
		{"tone nga", "ax", "ã"},
		{"tone nang", "aj", "ạ"},
		{"full word toan", "toans", "toán"},
		{"full word nguyen", "nguyeen", "nguyên"},
		{"bare w is vowel u-horn", "w", "ư"},
		{"tone-key letter before any vowel stays literal", "xin", "xin"},
		{"third matching letter reverts circumflex", "maaa", "maa"},
		{"horn compound uow", "muow", "mươ"},
		{"dd then literal d reverts", "dddam", "ddam"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := render(c.input); got != c.want {
				t.Errorf("render(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestProcessIncrementalMatchesFinalParse(t *testing.T) {
	m := New()
	buf := buffer.New()

	var last plugin.Action
	for _, ch := range "toans" {
		last = m.Process(ch, buf, nil)
	}
	if last.Kind != plugin.Replace {
		t.Fatalf("final action kind = %v, want Replace", last.Kind)
	}
	if last.Insert != "toán" {
		t.Fatalf("final insert = %q, want %q", last.Insert, "toán")
	}
}

func TestProcessBackspaceReparses(t *testing.T) {
	m := New()
	buf := buffer.New()

	for _, ch := range "as" {
		m.Process(ch, buf, nil)
	}
	// buffer now holds raw "as" -> rendered "á"
	action := m.ProcessBackspace(buf)
	if action.Kind != plugin.Replace {
		t.Fatalf("backspace action kind = %v, want Replace", action.Kind)
	}
	if action.Insert != "a" {
		t.Fatalf("backspace insert = %q, want %q", action.Insert, "a")
	}
}

func TestProcessBackspaceToEmpty(t *testing.T) {
	m := New()
	buf := buffer.New()
	m.Process('a', buf, nil)
	action := m.ProcessBackspace(buf)
	if action.Insert != "" {
		t.Fatalf("backspace to empty insert = %q, want empty", action.Insert)
	}
	if !buf.IsEmpty() {
		t.Fatal("buffer should be empty after backspacing the only character")
	}
}

func TestProcessCommitOnSeparator(t *testing.T) {
	m := New()
	buf := buffer.New()
	for _, ch := range "as" {
		m.Process(ch, buf, nil)
	}
	action := m.Process(' ', buf, nil)
	// The already-rendered "á" is still showing, so the Commit must
	// carry its length as Delete or the finished word duplicates it
	// instead of replacing it; Kind stays Commit either way; that's
	// what tells the host to reset composition for the next word.
	if action.Kind != plugin.Commit {
		t.Fatalf("action kind = %v, want Commit", action.Kind)
	}
	if action.Delete != 1 {
		t.Fatalf("commit delete = %d, want 1 (the rendered \"á\")", action.Delete)
	}
	if action.Insert != "á " {
		t.Fatalf("commit insert = %q, want %q", action.Insert, "á ")
	}
	if !buf.IsEmpty() {
		t.Fatal("buffer should be cleared after commit")
	}
}

// applyToDocument simulates a host editor applying a over doc, the same
// delete-then-insert shim any real frontend performs: doc = doc[:len(doc)-
// Delete] + Insert. It is what TestSeparatorCommitAppliesCleanlyToDocument
// uses to catch any future action that announces a render without
// deleting the one it replaces.
func applyToDocument(doc string, a plugin.Action) string {
	runes := []rune(doc)
	if a.Delete > 0 && a.Delete <= len(runes) {
		runes = runes[:len(runes)-a.Delete]
	}
	return string(runes) + a.Insert
}

// TestSeparatorCommitAppliesCleanlyToDocument exercises the "Separator
// commits" property end to end: replaying every action's Delete/Insert
// against a simulated document must leave exactly the rendered word plus
// the separator, not a duplicate of the in-progress render.
func TestSeparatorCommitAppliesCleanlyToDocument(t *testing.T) {
	m := New()
	buf := buffer.New()
	var doc string
	for _, ch := range "as " {
		doc = applyToDocument(doc, m.Process(ch, buf, nil))
	}
	if doc != "á " {
		t.Fatalf("document after separator commit = %q, want %q", doc, "á ")
	}
}

func TestProcessWordBreakOnImpermissibleKey(t *testing.T) {
	m := New()
	buf := buffer.New()
	m.Process('t', buf, nil) // Initial "t": a valid prefix

	// "tv" is not a prefix of any Vietnamese initial consonant, so 'v'
	// breaks the word instead of extending it.
	action := m.Process('v', buf, nil)
	if action.Kind != plugin.Replace {
		t.Fatalf("action kind = %v, want Replace", action.Kind)
	}
	if action.Insert != "tv" {
		t.Fatalf("insert = %q, want %q", action.Insert, "tv")
	}
	if buf.String() != "v" {
		t.Fatalf("buffer = %q, want the rejected key to start a fresh history", buf.String())
	}
}

func TestProcessWordBreakWithNoPriorWordIsNoOp(t *testing.T) {
	m := New()
	buf := buffer.New()
	action := m.Process('f', buf, nil) // 'f' is not a Vietnamese initial
	if action.Kind != plugin.DoNothing {
		t.Fatalf("action kind = %v, want DoNothing", action.Kind)
	}
	if !buf.IsEmpty() {
		t.Fatal("buffer should stay empty after a rejected first key")
	}
}

func TestCanUndo(t *testing.T) {
	m := New()
	buf := buffer.New()
	if m.CanUndo(buf) {
		t.Fatal("CanUndo on empty buffer should be false")
	}
	m.Process('a', buf, nil)
	if !m.CanUndo(buf) {
		t.Fatal("CanUndo after typing should be true")
	}
}
