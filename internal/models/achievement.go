package models

// Achievement is a named milestone. IsUnlocked is derived from history,
// except for sticky achievements which are set by an external event.
type Achievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsUnlocked  bool   `json:"is_unlocked"`
}
