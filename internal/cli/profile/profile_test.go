package profile

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/internal/storage"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "reflections.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	ctx := &cli.Context{Store: store}
	if err := ctx.Open(); err != nil {
		t.Fatalf("failed to open app: %v", err)
	}
	return ctx
}

func samePreferences(a, b models.Preferences) bool {
	return a.Username == b.Username &&
		a.AvatarName == b.AvatarName &&
		a.ThemeIndex == b.ThemeIndex &&
		a.LanguageCode == b.LanguageCode &&
		a.TextSize == b.TextSize &&
		a.Timezone == b.Timezone &&
		a.FirstLaunch.Equal(b.FirstLaunch)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestProfileCmd_Update(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &ProfileCmd{
		Username: strPtr("  Sam  "),
		Avatar:   strPtr("ava3"),
		Theme:    intPtr(2),
		TextSize: strPtr("Large"),
		Timezone: strPtr("Europe/Berlin"),
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("profile update failed: %v", err)
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if prefs.Username != "Sam" {
		t.Errorf("Username = %q, want %q", prefs.Username, "Sam")
	}
	if prefs.AvatarName != "ava3" {
		t.Errorf("AvatarName = %q", prefs.AvatarName)
	}
	if prefs.ThemeIndex != 2 {
		t.Errorf("ThemeIndex = %d", prefs.ThemeIndex)
	}
	if prefs.TextSize != "Large" {
		t.Errorf("TextSize = %q", prefs.TextSize)
	}
	if prefs.Timezone != "Europe/Berlin" {
		t.Errorf("Timezone = %q", prefs.Timezone)
	}
}

func TestProfileCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  ProfileCmd
	}{
		{"unknown avatar", ProfileCmd{Avatar: strPtr("ava11")}},
		{"theme out of range", ProfileCmd{Theme: intPtr(5)}},
		{"negative theme", ProfileCmd{Theme: intPtr(-1)}},
		{"bad text size", ProfileCmd{TextSize: strPtr("Huge")}},
		{"bad timezone", ProfileCmd{Timezone: strPtr("Mars/Olympus")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestContext(t)
			before := ctx.App.Preferences()
			if err := tt.cmd.Run(ctx); err == nil {
				t.Fatal("expected error")
			}
			after, err := ctx.Store.GetPreferences()
			if err != nil {
				t.Fatalf("GetPreferences failed: %v", err)
			}
			if !samePreferences(after, before) {
				t.Errorf("rejected update changed stored profile: %+v", after)
			}
		})
	}
}

func TestProfileCmd_ClearAvatar(t *testing.T) {
	ctx := setupTestContext(t)
	if err := (&ProfileCmd{Avatar: strPtr("ava1")}).Run(ctx); err != nil {
		t.Fatalf("set avatar failed: %v", err)
	}
	if err := (&ProfileCmd{Avatar: strPtr("")}).Run(ctx); err != nil {
		t.Fatalf("clear avatar failed: %v", err)
	}
	if got := ctx.App.Preferences().AvatarName; got != "" {
		t.Errorf("AvatarName = %q, want empty", got)
	}
}

func TestProfileCmd_List(t *testing.T) {
	ctx := setupTestContext(t)
	if err := (&ProfileCmd{List: true}).Run(ctx); err != nil {
		t.Errorf("profile --list failed: %v", err)
	}
}
