package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/mindping/internal/constants"
	apperrors "github.com/julianstephens/mindping/internal/errors"
)

// MapToPreferences converts a map of key-value pairs to a Preferences struct.
// Unknown keys are ignored.
func MapToPreferences(data map[string]string) (Preferences, error) {
	prefs := Preferences{}

	for key, value := range data {
		switch key {
		case constants.SettingUsername:
			prefs.Username = value
		case constants.SettingAvatarName:
			prefs.AvatarName = value
		case constants.SettingThemeIndex:
			n, err := strconv.Atoi(value)
			if err != nil {
				return Preferences{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			prefs.ThemeIndex = n
		case constants.SettingLanguageCode:
			prefs.LanguageCode = value
		case constants.SettingTextSize:
			prefs.TextSize = value
		case constants.SettingFirstLaunch:
			secs, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Preferences{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			if secs > 0 {
				prefs.FirstLaunch = time.Unix(int64(secs), 0)
			}
		case constants.SettingTimezone:
			prefs.Timezone = value
		}
	}
	return prefs, nil
}

// PreferencesToMap converts a Preferences struct to a map of key-value pairs.
func PreferencesToMap(prefs Preferences) map[string]string {
	m := map[string]string{
		constants.SettingUsername:     prefs.Username,
		constants.SettingAvatarName:   prefs.AvatarName,
		constants.SettingThemeIndex:   strconv.Itoa(prefs.ThemeIndex),
		constants.SettingLanguageCode: prefs.LanguageCode,
		constants.SettingTextSize:     prefs.TextSize,
		constants.SettingTimezone:     prefs.Timezone,
	}
	if !prefs.FirstLaunch.IsZero() {
		m[constants.SettingFirstLaunch] = strconv.FormatInt(prefs.FirstLaunch.Unix(), 10)
	}
	return m
}

// ApplyDefaultPreferences applies default values to missing preferences.
// FirstLaunch is left alone; it is stamped by whoever reads it first.
func ApplyDefaultPreferences(prefs *Preferences) {
	if prefs.Username == "" {
		prefs.Username = constants.DefaultUsername
	}
	if prefs.LanguageCode == "" {
		prefs.LanguageCode = constants.DefaultLanguageCode
	}
	if prefs.TextSize == "" {
		prefs.TextSize = constants.DefaultTextSize
	}
	if prefs.Timezone == "" {
		prefs.Timezone = constants.DefaultTimezone
	}
}

// ValidatePreferences checks that every field holds an accepted value.
func ValidatePreferences(prefs Preferences) error {
	if strings.TrimSpace(prefs.Username) == "" {
		return fmt.Errorf("%w: username cannot be empty", apperrors.ErrInvalidPreference)
	}
	if prefs.AvatarName != "" && !slices.Contains(constants.AvatarNames, prefs.AvatarName) {
		return fmt.Errorf("%w: unknown avatar %q (expected one of ava1-ava%d)", apperrors.ErrInvalidPreference, prefs.AvatarName, len(constants.AvatarNames))
	}
	if prefs.ThemeIndex < 0 || prefs.ThemeIndex >= constants.ThemeCount {
		return fmt.Errorf("%w: theme index %d out of range 0-%d", apperrors.ErrInvalidPreference, prefs.ThemeIndex, constants.ThemeCount-1)
	}
	if strings.TrimSpace(prefs.LanguageCode) == "" {
		return fmt.Errorf("%w: language code cannot be empty", apperrors.ErrInvalidPreference)
	}
	if !slices.Contains(constants.TextSizes, prefs.TextSize) {
		return fmt.Errorf("%w: text size %q (expected one of %s)", apperrors.ErrInvalidPreference, prefs.TextSize, strings.Join(constants.TextSizes, ", "))
	}
	if prefs.Timezone != "" && prefs.Timezone != "Local" {
		if _, err := time.LoadLocation(prefs.Timezone); err != nil {
			return fmt.Errorf("%w: timezone %q: %v", apperrors.ErrInvalidPreference, prefs.Timezone, err)
		}
	}
	return nil
}

// StickyKey returns the settings key holding an event-driven achievement flag.
func StickyKey(id int) string {
	return constants.SettingStickyPrefix + strconv.Itoa(id) + constants.SettingStickySuffix
}

// MapToSticky extracts event-driven achievement flags from a settings map.
func MapToSticky(data map[string]string) map[int]bool {
	sticky := make(map[int]bool)
	for key, value := range data {
		if !strings.HasPrefix(key, constants.SettingStickyPrefix) || !strings.HasSuffix(key, constants.SettingStickySuffix) {
			continue
		}
		idStr := strings.TrimSuffix(strings.TrimPrefix(key, constants.SettingStickyPrefix), constants.SettingStickySuffix)
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		sticky[id] = value == "true"
	}
	return sticky
}

// StickyToMap is the inverse of MapToSticky.
func StickyToMap(sticky map[int]bool) map[string]string {
	m := make(map[string]string, len(sticky))
	for id, unlocked := range sticky {
		m[StickyKey(id)] = strconv.FormatBool(unlocked)
	}
	return m
}
