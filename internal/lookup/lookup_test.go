package lookup

import "testing"

func TestTelexToneKeys(t *testing.T) {
	tbl := NewTelex()
	cases := []struct {
		key  rune
		want ToneIndex
	}{
		{'s', ToneIndexAcute}, {'S', ToneIndexAcute},
		{'f', ToneIndexGrave}, {'r', ToneIndexHook},
		{'x', ToneIndexTilde}, {'j', ToneIndexUnderdot},
	}
	for _, c := range cases {
		if got := tbl.Lookup(c.key).ToneIndex; got != c.want {
			t.Errorf("Lookup(%q).ToneIndex = %v, want %v", c.key, got, c.want)
		}
	}
}

func TestTelexBreve(t *testing.T) {
	tbl := NewTelex()
	if !tbl.Lookup('w').IsBreve {
		t.Error("'w' should be a breve modifier in Telex")
	}
	if tbl.Lookup('s').IsBreve {
		t.Error("'s' should not be a breve modifier")
	}
}

func TestTelexVowels(t *testing.T) {
	tbl := NewTelex()
	for _, r := range []rune{'a', 'e', 'i', 'o', 'u', 'y', 'A', 'E'} {
		if !tbl.Lookup(r).IsVowel() {
			t.Errorf("Lookup(%q).IsVowel() = false, want true", r)
		}
	}
	for _, r := range []rune{'b', 'c', 'k'} {
		if tbl.Lookup(r).IsVowel() {
			t.Errorf("Lookup(%q).IsVowel() = true, want false", r)
		}
	}
}

func TestVNIToneAndMarkKeys(t *testing.T) {
	tbl := NewVNI()
	if got := tbl.Lookup('1').ToneIndex; got != ToneIndexAcute {
		t.Errorf("Lookup('1').ToneIndex = %v, want acute", got)
	}
	if got := tbl.Lookup('6').MarkIndex; got != MarkCircumflex {
		t.Errorf("Lookup('6').MarkIndex = %v, want circumflex", got)
	}
	if got := tbl.Lookup('9').MarkIndex; got != MarkDStroke {
		t.Errorf("Lookup('9').MarkIndex = %v, want d-stroke", got)
	}
}

func TestVIQRToneKeys(t *testing.T) {
	tbl := NewVIQR()
	if got := tbl.Lookup('\'').ToneIndex; got != ToneIndexAcute {
		t.Errorf("Lookup('\\'').ToneIndex = %v, want acute", got)
	}
	if got := tbl.Lookup('.').ToneIndex; got != ToneIndexUnderdot {
		t.Errorf("Lookup('.').ToneIndex = %v, want underdot", got)
	}
	if tbl.Lookup('.').IsSoftSeparator {
		t.Error("'.' should not be a soft separator in VIQR (repurposed as tone key)")
	}
}

func TestSeparators(t *testing.T) {
	tbl := NewTelex()
	if !tbl.Lookup(' ').IsSeparator {
		t.Error("space should be a separator")
	}
	if !tbl.Lookup(',').IsSoftSeparator {
		t.Error("comma should be a soft separator")
	}
}

func TestOutOfRangeLookup(t *testing.T) {
	tbl := NewTelex()
	if got := tbl.Lookup(-1); got != (CharInfo{}) {
		t.Errorf("Lookup(-1) = %+v, want zero value", got)
	}
	if got := tbl.Lookup(1000); got != (CharInfo{}) {
		t.Errorf("Lookup(1000) = %+v, want zero value", got)
	}
}
