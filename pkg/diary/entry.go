// Package diary implements the date-keyed entry collection and its
// persistence over the key-value store.
package diary

import (
	"strings"

	"deardiary.dev/diary/pkg/mood"
)

// Entry is a single diary record. One entry exists per calendar day, keyed
// by its date key.
type Entry struct {
	Date      string    `json:"date,omitempty"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content,omitempty"`
	Mood      mood.Mood `json:"mood,omitempty"`
	WordCount int       `json:"wordCount,omitempty"`
	CreatedAt Timestamp `json:"createdAt,omitempty"`
	UpdatedAt Timestamp `json:"lastModified,omitempty"`
}

// Empty reports whether the entry carries nothing worth keeping: no trimmed
// content, no title, no mood. Empty entries are never persisted; this is the
// single predicate all callers share.
func (e Entry) Empty() bool {
	return strings.TrimSpace(e.Content) == "" &&
		strings.TrimSpace(e.Title) == "" &&
		!e.Mood.Valid()
}

// CountWords splits trimmed content on whitespace runs.
func CountWords(content string) int {
	return len(strings.Fields(content))
}
