package storage

import (
	"regexp"
	"strings"
)

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"à", "a", "è", "e", "ì", "i", "ò", "o", "ù", "u",
	"ä", "a", "ë", "e", "ï", "i", "ö", "o", "ü", "u",
	"â", "a", "ê", "e", "î", "i", "ô", "o", "û", "u",
	"ñ", "n", "ç", "c",
)

var (
	invalidKeyChars = regexp.MustCompile(`[^a-z0-9\-_]+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
)

// SanitizeFileName turns an arbitrary upload filename into a safe object
// key segment: lowercase, accents folded, anything outside [a-z0-9-_]
// collapsed to single hyphens. The extension is preserved. Admins upload
// files named things like "Logo Ferretería (final).PNG"; object stores
// reject or mangle keys like that.
func SanitizeFileName(filename string) string {
	name := filename
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		name = filename[:idx]
		ext = strings.ToLower(filename[idx:])
	}

	name = strings.ToLower(name)
	name = accentFolder.Replace(name)
	name = invalidKeyChars.ReplaceAllString(name, "-")
	name = hyphenRuns.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		name = "archivo"
	}

	ext = invalidKeyChars.ReplaceAllString(ext, "")
	if ext != "" {
		ext = "." + ext
	}
	return name + ext
}
