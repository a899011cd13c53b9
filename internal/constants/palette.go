package constants

// EmojiPalette is the picker row offered when composing a reflection.
var EmojiPalette = []string{
	"😀", "😃", "😄", "😁", "😆", "😂", "🙂", "😊", "😍", "🥰",
	"😘", "😗", "😙", "😚", "😎", "🤩", "🤗", "🤔", "😌", "😇",
	"😢", "😭", "😤", "😠", "😴", "🤤", "🤒", "🤕", "🤧", "🤯",
}

// ThemeNames are indexed by the themeIndex preference.
var ThemeNames = []string{"purple", "green", "orange", "cyan", "black"}

// ThemeColors are the ANSI 256 colors for each theme, same order as ThemeNames.
var ThemeColors = []string{"135", "42", "208", "45", "250"}

// AvatarNames are the built-in avatar identifiers.
var AvatarNames = []string{
	"ava1", "ava2", "ava3", "ava4", "ava5",
	"ava6", "ava7", "ava8", "ava9", "ava10",
}
