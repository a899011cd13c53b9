// Package questions picks the daily reflection prompt.
package questions

import (
	"hash/fnv"
	"slices"

	"github.com/julianstephens/mindping/internal/models"
)

// DefaultPrompts is the built-in prompt list. Reordering or editing it
// changes which prompt every past and future day maps to.
var DefaultPrompts = []string{
	"What feeling accompanied you most often today?",
	"What made you smile today?",
	"What are you grateful for today?",
	"What drained your energy today, and what restored it?",
	"Which moment today would you like to remember in a year?",
	"What did you learn about yourself today?",
	"Who made a difference in your day?",
	"What would you do differently if you could replay today?",
	"What small win are you proud of today?",
	"What is one thing you want to let go of tonight?",
	"Where did you feel most like yourself today?",
	"What are you looking forward to tomorrow?",
}

// Selector maps a calendar day to one prompt from a fixed list.
type Selector struct {
	prompts []string
}

// New creates a Selector over prompts. The slice is copied.
func New(prompts []string) *Selector {
	return &Selector{prompts: slices.Clone(prompts)}
}

// Default creates a Selector over DefaultPrompts.
func Default() *Selector {
	return New(DefaultPrompts)
}

// QuestionFor returns the prompt for day. The index is the FNV-1a hash of the
// YYYY-MM-DD key modulo the prompt count, so a day always gets the same
// prompt for a given list. Returns "" when the list is empty.
func (s *Selector) QuestionFor(day models.Day) string {
	if len(s.prompts) == 0 {
		return ""
	}
	return s.prompts[s.index(day)]
}

// Prompts returns a copy of the prompt list.
func (s *Selector) Prompts() []string {
	return slices.Clone(s.prompts)
}

func (s *Selector) index(day models.Day) int {
	h := fnv.New32a()
	h.Write([]byte(day.String()))
	return int(h.Sum32() % uint32(len(s.prompts)))
}
