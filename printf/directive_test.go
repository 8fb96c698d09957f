package printf

import "testing"

func TestParserFlagsWidthPrecision(t *testing.T) {
	p := newParser("%-+ #05.3hhd")
	d, ok, err := p.next()
	if err != nil || !ok {
		t.Fatalf("next() = %+v, %v, %v", d, ok, err)
	}
	if !d.Flags.LeftJustify || !d.Flags.AlwaysSign || !d.Flags.SpaceSign || !d.Flags.AlternateForm || !d.Flags.ZeroPad {
		t.Fatalf("flags not all set: %+v", d.Flags)
	}
	if d.width.literal != 5 {
		t.Fatalf("width literal = %d, want 5", d.width.literal)
	}
	if !d.hasPrecision || d.precision.literal != 3 {
		t.Fatalf("precision = %+v", d.precision)
	}
	if d.Length != LengthHH {
		t.Fatalf("length = %v, want hh (longest match should win over h)", d.Length)
	}
	if d.Type != VerbD {
		t.Fatalf("type = %v, want d", d.Type)
	}
}

func TestParserLeadingZeroIsFlagNotWidth(t *testing.T) {
	p := newParser("%05d")
	d, _, err := p.next()
	if err != nil {
		t.Fatal(err)
	}
	if !d.Flags.ZeroPad {
		t.Fatal("expected the leading 0 to be parsed as the zero-pad flag")
	}
	if d.width.literal != 5 {
		t.Fatalf("width literal = %d, want 5", d.width.literal)
	}
}

func TestParserPositionalWidthAndPrecision(t *testing.T) {
	p := newParser("%1$*2$.*3$d")
	d, _, err := p.next()
	if err != nil {
		t.Fatal(err)
	}
	if d.Position != 1 {
		t.Fatalf("position = %d, want 1", d.Position)
	}
	if !d.width.fromArg || d.width.argIndex != 2 {
		t.Fatalf("width = %+v", d.width)
	}
	if !d.precision.fromArg || d.precision.argIndex != 3 {
		t.Fatalf("precision = %+v", d.precision)
	}
}

func TestParserStarWithoutDollarInSequentialMode(t *testing.T) {
	p := newParser("%*d")
	d, _, err := p.next()
	if err != nil {
		t.Fatal(err)
	}
	if !d.width.fromArg || d.width.argIndex != 0 {
		t.Fatalf("width = %+v, want fromArg with argIndex 0", d.width)
	}
}

func TestParserPercentPercent(t *testing.T) {
	p := newParser("%%")
	d, ok, err := p.next()
	if err != nil || !ok {
		t.Fatalf("next() = %+v, %v, %v", d, ok, err)
	}
	if d.Type != VerbNone {
		t.Fatalf("type = %v, want VerbNone for '%%%%'", d.Type)
	}
	if d.Consumed != 2 {
		t.Fatalf("consumed = %d, want 2", d.Consumed)
	}
}

func TestParserUnknownTypeIsError(t *testing.T) {
	p := newParser("%k")
	if _, _, err := p.next(); err == nil {
		t.Fatal("expected an error for unknown conversion letter")
	}
}

func TestParserLengthLongestMatchWins(t *testing.T) {
	cases := map[string]Length{
		"%hd":  LengthH,
		"%hhd": LengthHH,
		"%ld":  LengthL,
		"%lld": LengthLL,
	}
	for tmpl, want := range cases {
		p := newParser(tmpl)
		d, _, err := p.next()
		if err != nil {
			t.Fatalf("%s: %v", tmpl, err)
		}
		if d.Length != want {
			t.Errorf("%s: length = %v, want %v", tmpl, d.Length, want)
		}
	}
}

func TestNormalizeRejectsIncompatibleLengthType(t *testing.T) {
	cases := []string{"%lp", "%lc", "%ls", "%Ld"}
	for _, tmpl := range cases {
		p := newParser(tmpl)
		d, _, err := p.next()
		if err != nil {
			t.Fatalf("%s: parse error: %v", tmpl, err)
		}
		if _, err := normalize(&d); err == nil {
			t.Errorf("%s: expected normalize to reject this length/type combination", tmpl)
		}
	}
}

func TestNormalizeClearsFlagsOnCSP(t *testing.T) {
	p := newParser("%+#0s")
	d, _, err := p.next()
	if err != nil {
		t.Fatal(err)
	}
	res, err := normalize(&d)
	if err != nil {
		t.Fatal(err)
	}
	if d.Flags.AlwaysSign || d.Flags.AlternateForm || d.Flags.ZeroPad {
		t.Fatalf("flags not cleared: %+v", d.Flags)
	}
	if len(res.warnings) == 0 {
		t.Fatal("expected a neutralization warning")
	}
}
