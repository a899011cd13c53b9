package profile

import (
	"fmt"

	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/constants"
	"github.com/julianstephens/mindping/internal/models"
)

type ProfileCmd struct {
	List bool `help:"List current profile settings."`

	Username *string `help:"Display name."`
	Avatar   *string `help:"Avatar name (ava1-ava10, or empty to clear)."`
	Theme    *int    `help:"Color theme index (0-4)."`
	Language *string `help:"Language code, e.g. en."`
	TextSize *string `help:"Text size: Small, Normal or Large." name:"text-size"`
	Timezone *string `help:"IANA timezone used to decide what 'today' is, or Local."`
}

func (c *ProfileCmd) Run(ctx *cli.Context) error {
	a := ctx.App

	if c.List {
		printProfile(a.Preferences())
		return nil
	}

	updated := false
	apply := func(set func() (models.Preferences, error)) error {
		if _, err := set(); err != nil {
			return err
		}
		updated = true
		return nil
	}

	if c.Username != nil {
		if err := apply(func() (models.Preferences, error) { return a.SetUsername(*c.Username) }); err != nil {
			return err
		}
	}
	if c.Avatar != nil {
		if err := apply(func() (models.Preferences, error) { return a.SetAvatar(*c.Avatar) }); err != nil {
			return err
		}
	}
	if c.Theme != nil {
		if err := apply(func() (models.Preferences, error) { return a.SetTheme(*c.Theme) }); err != nil {
			return err
		}
	}
	if c.Language != nil {
		if err := apply(func() (models.Preferences, error) { return a.SetLanguage(*c.Language) }); err != nil {
			return err
		}
	}
	if c.TextSize != nil {
		if err := apply(func() (models.Preferences, error) { return a.SetTextSize(*c.TextSize) }); err != nil {
			return err
		}
	}
	if c.Timezone != nil {
		if err := apply(func() (models.Preferences, error) { return a.SetTimezone(*c.Timezone) }); err != nil {
			return err
		}
	}

	if updated {
		fmt.Println("Profile updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view your profile or flags to update it.")
	}
	return nil
}

func printProfile(p models.Preferences) {
	avatar := p.AvatarName
	if avatar == "" {
		avatar = "(none)"
	}
	theme := fmt.Sprintf("%d", p.ThemeIndex)
	if p.ThemeIndex >= 0 && p.ThemeIndex < len(constants.ThemeNames) {
		theme = fmt.Sprintf("%d (%s)", p.ThemeIndex, constants.ThemeNames[p.ThemeIndex])
	}

	fmt.Println("Current Profile:")
	fmt.Printf("  Username:   %s\n", p.Username)
	fmt.Printf("  Avatar:     %s\n", avatar)
	fmt.Printf("  Theme:      %s\n", theme)
	fmt.Printf("  Language:   %s\n", p.LanguageCode)
	fmt.Printf("  Text Size:  %s\n", p.TextSize)
	fmt.Printf("  Timezone:   %s\n", p.Timezone)
	if since := p.ReflectingSince(); since != "" {
		fmt.Printf("\n%s\n", since)
	}
}
