package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/mindping/internal/constants"
)

// Preferences is the profile state owned by the presentation layer. The
// engine only reads FirstLaunch and Timezone.
type Preferences struct {
	Username     string    `json:"username"`
	AvatarName   string    `json:"avatar_name"`
	ThemeIndex   int       `json:"theme_index"`
	LanguageCode string    `json:"language_code"`
	TextSize     string    `json:"text_size"`
	FirstLaunch  time.Time `json:"first_launch"`
	Timezone     string    `json:"timezone"` // IANA timezone name or "Local"
}

// ReflectingSince renders the "member since" line, e.g. "Reflecting since Mar 2024".
func (p Preferences) ReflectingSince() string {
	if p.FirstLaunch.IsZero() {
		return ""
	}
	return fmt.Sprintf("Reflecting since %s", p.FirstLaunch.Format(constants.SinceFormat))
}
