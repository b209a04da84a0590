package employeeid

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	digitRun    = regexp.MustCompile(`[0-9]+`)
	nonUsername = regexp.MustCompile(`[^a-z]`)
)

// ExtractEmployeeID returns the first run of decimal digits in line.
// "ID 12 dept 34" yields "12".
func ExtractEmployeeID(line string) (string, bool) {
	id := digitRun.FindString(line)
	if id == "" {
		return "", false
	}
	return id, true
}

// Remainder strips every digit run from line, turns hyphens into spaces
// and trims the result. It is the name-like part of a directory entry.
func Remainder(line string) string {
	rest := digitRun.ReplaceAllString(line, "")
	rest = strings.ReplaceAll(rest, "-", " ")
	return strings.TrimSpace(rest)
}

// NormalizeUsername converts a full name or a username into
// first initial + last name, lowercase a-z only.
//
//	"John Smith" -> "jsmith"
//	"jsmith99"   -> "jsmith"
func NormalizeUsername(value string) string {
	username, _ := normalizeUsername(value)
	return username
}

// normalizeUsername reports false when value has no usable tokens, so
// callers can leave the stored username alone.
func normalizeUsername(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	if !strings.Contains(value, " ") {
		return nonUsername.ReplaceAllString(strings.ToLower(value), ""), true
	}

	parts := strings.Fields(value)
	if len(parts) == 0 || parts[0] == "" {
		return "", false
	}

	first, _ := utf8.DecodeRuneInString(parts[0])
	last := parts[len(parts)-1]
	username := strings.ToLower(string(first) + last)
	return nonUsername.ReplaceAllString(username, ""), true
}

// NormalizeFullName capitalizes every word and collapses whitespace.
func NormalizeFullName(value string) string {
	parts := strings.Fields(value)
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, " ")
}

func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError && size <= 1 {
		return strings.ToLower(word)
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}
