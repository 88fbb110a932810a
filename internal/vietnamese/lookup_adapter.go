package vietnamese

import "github.com/username/vikey/internal/lookup"

// lookupAdapter exposes a lookup.Table as a plugin.LookupProvider; each
// input method keeps its own table (Telex's tone keys are letters, VNI's
// are digits) but the capability surface the engine needs is identical.
type lookupAdapter struct {
	tbl *lookup.Table
}

func (a lookupAdapter) IsValidChar(r rune) bool {
	info := a.tbl.Lookup(r)
	return info.IsVowel() || info.IsConsonantStart || info.ToneIndex != lookup.ToneIndexNone ||
		info.MarkIndex != lookup.MarkNone || info.IsSeparator || info.IsSoftSeparator
}

func (a lookupAdapter) IsVowel(r rune) bool {
	return a.tbl.Lookup(r).IsVowel()
}

func (a lookupAdapter) IsConsonant(r rune) bool {
	return a.tbl.Lookup(r).IsConsonantStart
}

func (a lookupAdapter) IsSeparator(r rune) bool {
	info := a.tbl.Lookup(r)
	return info.IsSeparator || info.IsSoftSeparator
}
