package mood

import "testing"

func TestParseNumbersAndNames(t *testing.T) {
	cases := []struct {
		in   string
		want Mood
	}{
		{"1", Sad},
		{"5", Great},
		{"neutral", Neutral},
		{"GOOD", Good},
		{" low ", Low},
		{"", Unset},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseRejectsOffScale(t *testing.T) {
	if _, err := Parse("6"); err == nil {
		t.Fatalf("expected error for 6")
	}
	if _, err := Parse("0"); err == nil {
		t.Fatalf("expected error for 0")
	}
	if _, err := Parse("ecstatic"); err == nil {
		t.Fatalf("expected error for unknown name")
	}
}

func TestUnsetHasNoGlyph(t *testing.T) {
	if Unset.Valid() {
		t.Fatalf("unset must not be valid")
	}
	if Unset.Emoji() != "" || Unset.String() != "" {
		t.Fatalf("unset should render empty")
	}
}

func TestScaleIsComplete(t *testing.T) {
	glyphs := DefaultGlyphs()
	if len(glyphs) != 5 {
		t.Fatalf("expected 5 moods, got %d", len(glyphs))
	}
	for i, g := range glyphs {
		if g.Mood != Mood(i+1) {
			t.Fatalf("glyph %d out of order: %v", i, g.Mood)
		}
		if g.Emoji == "" || g.Name == "" {
			t.Fatalf("glyph %v incomplete", g.Mood)
		}
	}
}
