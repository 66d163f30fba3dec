// Package languages maps ISO-639-1 codes to display names for prompt
// construction.
package languages

import "strings"

var displayNames = map[string]string{
	"ar": "Arabic",
	"bg": "Bulgarian",
	"cs": "Czech",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"fi": "Finnish",
	"fr": "French",
	"he": "Hebrew",
	"hi": "Hindi",
	"hu": "Hungarian",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"ms": "Malay",
	"nl": "Dutch",
	"no": "Norwegian",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sv": "Swedish",
	"th": "Thai",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// Resolve returns the display name for a two-letter language code. Unknown
// codes are returned unchanged, so callers can always interpolate the result
// into a prompt.
func Resolve(code string) string {
	if name, ok := displayNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}
