// Package vietnamese is the Vietnamese LanguagePlugin: it registers the
// Telex, VNI and VIQR input methods under a single language ID and wires
// each one to its own lookup table and shared spelling rules.
package vietnamese

import (
	"github.com/username/vikey/internal/lookup"
	"github.com/username/vikey/internal/plugin"
	"github.com/username/vikey/internal/syllable"
	"github.com/username/vikey/internal/telex"
	"github.com/username/vikey/internal/vni"
	"github.com/username/vikey/internal/viqr"
)

// Plugin implements plugin.LanguagePlugin for Vietnamese.
type Plugin struct {
	orthography syllable.Orthography
	allowZFWJ   bool

	telexTable *lookup.Table
	vniTable   *lookup.Table
	viqrTable  *lookup.Table

	rules rules
}

// New returns a Vietnamese plugin using modern orthography, with z/f/w/j
// disabled as consonants.
func New() *Plugin {
	return NewWithOrthography(syllable.Modern)
}

// NewWithOrthography returns a Vietnamese plugin with an explicit tone-
// placement style, applied to every input method it creates.
func NewWithOrthography(style syllable.Orthography) *Plugin {
	return NewWithConfig(style, false)
}

// NewWithConfig returns a Vietnamese plugin with an explicit tone-
// placement style and z/f/w/j-as-consonants setting, both applied to
// every input method and to the spelling rules it exposes.
func NewWithConfig(style syllable.Orthography, allowZFWJ bool) *Plugin {
	return &Plugin{
		orthography: style,
		allowZFWJ:   allowZFWJ,
		telexTable:  lookup.NewTelex(),
		vniTable:    lookup.NewVNI(),
		viqrTable:   lookup.NewVIQR(),
		rules:       newRules(style, allowZFWJ),
	}
}

func (p *Plugin) Name() string { return "Tiếng Việt" }
func (p *Plugin) ID() string   { return "vietnamese" }

func (p *Plugin) InputMethods() []string {
	return []string{"telex", "vni", "viqr"}
}

// CreateInputMethod returns a fresh instance of the requested method, each
// carrying the plugin's configured orthography.
func (p *Plugin) CreateInputMethod(id string) (plugin.InputMethod, bool) {
	switch id {
	case "telex":
		return telex.NewWithConfig(p.orthography, p.allowZFWJ), true
	case "vni":
		return vni.NewWithConfig(p.orthography, p.allowZFWJ), true
	case "viqr":
		return viqr.NewWithConfig(p.orthography, p.allowZFWJ), true
	default:
		return nil, false
	}
}

// Lookup returns the Telex classification table as the plugin's default
// LookupProvider; it covers the same vowel/consonant/separator surface
// the other two methods' tables do and only differs in tone/mark keys,
// which the engine never asks LookupProvider about directly.
func (p *Plugin) Lookup() plugin.LookupProvider {
	return lookupAdapter{tbl: p.telexTable}
}

// LookupFor returns the classification table backing a specific input
// method, for callers that need the exact table an active method is
// using.
func (p *Plugin) LookupFor(methodID string) plugin.LookupProvider {
	switch methodID {
	case "vni":
		return lookupAdapter{tbl: p.vniTable}
	case "viqr":
		return lookupAdapter{tbl: p.viqrTable}
	default:
		return lookupAdapter{tbl: p.telexTable}
	}
}

func (p *Plugin) Rules() plugin.LanguageRules {
	return p.rules
}

var _ plugin.LanguagePlugin = (*Plugin)(nil)
