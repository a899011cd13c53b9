package reflections

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindping/internal/achievements"
	"github.com/julianstephens/mindping/internal/app"
	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/constants"
)

type ReflectCmd struct {
	Text        *string  `help:"Reflection text for today." short:"t"`
	Emoji       []string `help:"Emoji to tag the entry with (repeatable)." short:"e"`
	Clear       bool     `help:"Drop the emoji restored from an earlier save today before adding --emoji."`
	Interactive bool     `help:"Compose the reflection in an interactive form." short:"i"`
}

func (c *ReflectCmd) Run(ctx *cli.Context) error {
	a := ctx.App
	before := a.Achievements()

	if c.Text != nil {
		a.SetDraft(*c.Text)
	}
	if c.Clear {
		a.SetEmojis(nil)
	}
	for _, e := range c.Emoji {
		e = strings.TrimSpace(e)
		if e != "" && !slices.Contains(a.SelectedEmojis(), e) {
			a.ToggleEmoji(e)
		}
	}

	if c.Interactive || (c.Text == nil && len(c.Emoji) == 0 && !c.Clear) {
		if err := runForm(a); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Reflection cancelled.")
				return nil
			}
			return fmt.Errorf("interactive form error: %w", err)
		}
	}

	record, err := a.SaveToday(a.Now())
	if err != nil {
		return err
	}

	styles := cli.ThemeStyles(a.Preferences().ThemeIndex)
	fmt.Printf("✓ Reflection saved for %s\n", record.Day())
	fmt.Printf("  %s\n", styles.Muted.Render(record.Question))
	if record.Text != "" {
		fmt.Printf("  %s\n", record.Text)
	}
	fmt.Printf("  Mood: %s\n", cli.FormatEmojis(record.Emojis))

	for _, ach := range achievements.NewlyUnlocked(before, a.Achievements()) {
		fmt.Println(styles.Unlocked.Render(fmt.Sprintf("🏆 Achievement unlocked: %s", ach.Title)) + " " + styles.Muted.Render(ach.Description))
	}

	ctx.PerformAutomaticBackup()
	return nil
}

// runForm edits the facade's draft in a full-screen form.
func runForm(a *app.App) error {
	text := a.Draft()
	selected := a.SelectedEmojis()

	options := make([]huh.Option[string], 0, len(constants.EmojiPalette))
	for _, e := range constants.EmojiPalette {
		options = append(options, huh.NewOption(e, e).Selected(slices.Contains(selected, e)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(a.TodayQuestion()).
				Description("Write as much or as little as you like.").
				CharLimit(4000).
				Value(&text),
			huh.NewMultiSelect[string]().
				Title("How are you feeling?").
				Options(options...).
				Height(8).
				Value(&selected),
		),
	).
		WithKeyMap(formKeyMap()).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return err
	}

	a.SetDraft(text)
	a.SetEmojis(selected)
	return nil
}

func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	)
	km.Text.NewLine = key.NewBinding(
		key.WithKeys("alt+enter", "ctrl+j"),
		key.WithHelp("ctrl+j", "new line"),
	)
	return km
}
