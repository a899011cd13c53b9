package models

import (
	"strings"
	"time"
)

// Reflection is one day's journal entry.
type Reflection struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"` // moment of the last save; its calendar day is the identity key
	Question string    `json:"question"`
	Text     string    `json:"text"`
	Emojis   []string  `json:"emojis"`
}

// Day returns the calendar day this reflection belongs to.
func (r Reflection) Day() Day {
	return DayOf(r.Date)
}

// HasText reports whether the entry has non-blank text.
func (r Reflection) HasText() bool {
	return strings.TrimSpace(r.Text) != ""
}

// HasEmojis reports whether at least one emoji was chosen.
func (r Reflection) HasEmojis() bool {
	return len(r.Emojis) > 0
}
