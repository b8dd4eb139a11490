// Package mood defines the fixed mood scale attached to diary entries.
package mood

import (
	"fmt"
	"strconv"
	"strings"
)

// Mood is a point on the 1..5 scale. The zero value means no mood was
// recorded.
type Mood int

const (
	Unset Mood = iota
	Sad
	Low
	Neutral
	Good
	Great
)

// Glyph describes how a mood is presented.
type Glyph struct {
	Mood    Mood
	Emoji   string
	Name    string
	Meaning string
}

// DefaultGlyphs returns the presentation table for the scale, lowest first.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Mood:    Sad,
			Emoji:   "😢",
			Name:    "sad",
			Meaning: "feeling down or melancholy",
		}, {
			Mood:    Low,
			Emoji:   "😔",
			Name:    "low",
			Meaning: "not quite sad, but low energy",
		}, {
			Mood:    Neutral,
			Emoji:   "😐",
			Name:    "neutral",
			Meaning: "feeling okay, neither good nor bad",
		}, {
			Mood:    Good,
			Emoji:   "😊",
			Name:    "good",
			Meaning: "feeling positive and content",
		}, {
			Mood:    Great,
			Emoji:   "🤩",
			Name:    "great",
			Meaning: "feeling amazing and energetic",
		},
	}
}

// Valid reports whether m is on the scale. Unset is not valid.
func (m Mood) Valid() bool {
	return m >= Sad && m <= Great
}

// Glyph returns the presentation row for m, or a zero Glyph when unset.
func (m Mood) Glyph() Glyph {
	if !m.Valid() {
		return Glyph{}
	}
	return DefaultGlyphs()[m-1]
}

func (m Mood) String() string {
	return m.Glyph().Name
}

// Emoji returns the emoji for m, or the empty string when unset.
func (m Mood) Emoji() string {
	return m.Glyph().Emoji
}

// Parse accepts a scale number ("1".."5") or a mood name, case-insensitive.
func Parse(raw string) (Mood, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return Unset, nil
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		m := Mood(n)
		if !m.Valid() {
			return Unset, fmt.Errorf("mood: %d is outside the 1..5 scale", n)
		}
		return m, nil
	}
	for _, g := range DefaultGlyphs() {
		if g.Name == trimmed {
			return g.Mood, nil
		}
	}
	return Unset, fmt.Errorf("mood: unknown mood %q", raw)
}
