package engine

import (
	"errors"
	"testing"

	"github.com/username/vikey/internal/lookup"
	"github.com/username/vikey/internal/plugin"
	"github.com/username/vikey/internal/telex"
	"github.com/username/vikey/internal/vni"
)

// lookupAdapter adapts a lookup.Table to plugin.LookupProvider for tests;
// the real adapter lives in internal/vietnamese.
type lookupAdapter struct{ tbl *lookup.Table }

func (a lookupAdapter) IsValidChar(r rune) bool { return a.tbl.Lookup(r) != (lookup.CharInfo{}) }
func (a lookupAdapter) IsVowel(r rune) bool      { return a.tbl.Lookup(r).IsVowel() }
func (a lookupAdapter) IsConsonant(r rune) bool  { return a.tbl.Lookup(r).IsConsonantStart }
func (a lookupAdapter) IsSeparator(r rune) bool  { return a.tbl.Lookup(r).IsSeparator }

type fakePlugin struct {
	id      string
	methods map[string]func() plugin.InputMethod
	lookup  plugin.LookupProvider
}

func (p *fakePlugin) Name() string           { return p.id }
func (p *fakePlugin) ID() string             { return p.id }
func (p *fakePlugin) InputMethods() []string {
	ids := make([]string, 0, len(p.methods))
	for id := range p.methods {
		ids = append(ids, id)
	}
	// stable order: telex before vni for the tests that rely on
	// auto-selecting "the first" method
	ordered := []string{"telex", "vni"}
	out := make([]string, 0, len(ids))
	for _, id := range ordered {
		if _, ok := p.methods[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
func (p *fakePlugin) CreateInputMethod(id string) (plugin.InputMethod, bool) {
	ctor, ok := p.methods[id]
	if !ok {
		return nil, false
	}
	return ctor(), true
}
func (p *fakePlugin) Lookup() plugin.LookupProvider { return p.lookup }
func (p *fakePlugin) Rules() plugin.LanguageRules    { return plugin.PermissiveRules{} }

func newFakeVietnamese() *fakePlugin {
	return &fakePlugin{
		id: "vi",
		methods: map[string]func() plugin.InputMethod{
			"telex": func() plugin.InputMethod { return telex.New() },
			"vni":   func() plugin.InputMethod { return vni.New() },
		},
		lookup: lookupAdapter{tbl: lookup.NewTelex()},
	}
}

func TestRegisterDuplicateID(t *testing.T) {
	e := New()
	if err := e.Register(newFakeVietnamese()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := e.Register(newFakeVietnamese())
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("want ErrDuplicateID, got %v", err)
	}
}

func TestSetLanguageAutoSelectsFirstMethod(t *testing.T) {
	e := New()
	e.Register(newFakeVietnamese())
	if err := e.SetLanguage("vi"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if got := e.CurrentInputMethod(); got != "telex" {
		t.Fatalf("CurrentInputMethod = %q, want telex", got)
	}
}

func TestSetLanguageUnknown(t *testing.T) {
	e := New()
	err := e.SetLanguage("xx")
	if !errors.Is(err, ErrLanguageNotFound) {
		t.Fatalf("want ErrLanguageNotFound, got %v", err)
	}
}

func TestSetInputMethodSwitchesWithinLanguage(t *testing.T) {
	e := New()
	e.Register(newFakeVietnamese())
	e.SetLanguage("vi")
	if err := e.SetInputMethod("vni"); err != nil {
		t.Fatalf("SetInputMethod: %v", err)
	}
	if got := e.CurrentInputMethod(); got != "vni" {
		t.Fatalf("CurrentInputMethod = %q, want vni", got)
	}
}

func TestSetInputMethodUnknown(t *testing.T) {
	e := New()
	e.Register(newFakeVietnamese())
	e.SetLanguage("vi")
	err := e.SetInputMethod("bogus")
	if !errors.Is(err, ErrInputMethodNotFound) {
		t.Fatalf("want ErrInputMethodNotFound, got %v", err)
	}
}

func TestProcessWithoutActiveLanguageIsNoOp(t *testing.T) {
	e := New()
	action := e.Process('a')
	if action.Kind != plugin.DoNothing {
		t.Fatalf("action = %+v, want DoNothing", action)
	}
}

func TestProcessRoutesToActiveMethod(t *testing.T) {
	e := New()
	e.Register(newFakeVietnamese())
	e.SetLanguage("vi")

	e.Process('t')
	e.Process('o')
	action := e.Process('i')
	if action.Kind != plugin.Replace {
		t.Fatalf("action.Kind = %v, want Replace", action.Kind)
	}
	if action.Insert != "toi" {
		t.Fatalf("action.Insert = %q, want toi", action.Insert)
	}
}

func TestSwitchingInputMethodKeepsBuffer(t *testing.T) {
	e := New()
	e.Register(newFakeVietnamese())
	e.SetLanguage("vi")
	e.Process('t')
	e.Process('o')
	e.Process('o')

	// switching input methods mid-word discards the old method instance
	// (and its lastRenderedLen bookkeeping) without touching the buffer
	e.SetInputMethod("vni")
	if got := e.BufferContent(); got != "too" {
		t.Fatalf("BufferContent = %q, want too (buffer survives the switch)", got)
	}
}

func TestResetClearsBufferAndMethodState(t *testing.T) {
	e := New()
	e.Register(newFakeVietnamese())
	e.SetLanguage("vi")
	e.Process('b')
	e.Process('a')
	e.Reset()
	if got := e.BufferContent(); got != "" {
		t.Fatalf("BufferContent after Reset = %q, want empty", got)
	}
}

func TestProcessBackspaceWithoutMethodIsNoOp(t *testing.T) {
	e := New()
	action := e.ProcessBackspace()
	if action.Kind != plugin.DoNothing {
		t.Fatalf("action = %+v, want DoNothing", action)
	}
}

func TestDefaultConfigOrthographyModern(t *testing.T) {
	e := New()
	if e.Config().Orthography != 0 {
		t.Fatalf("default orthography = %v, want Modern (0)", e.Config().Orthography)
	}
}
