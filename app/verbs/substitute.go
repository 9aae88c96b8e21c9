package verbs

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"thicket/app/utils"
)

// UnknownPlaceholder replaces placeholders that have no known value
const UnknownPlaceholder = "-hu?-"

// placeholders maps the known identifiers to their value
var placeholders = map[string]func(path string) string{
	"file": utils.DisplayPath,
}

// Substitute replaces every {identifier} in pattern.
// {file} becomes the selected path, every other identifier becomes
// UnknownPlaceholder. Braces that don't enclose an identifier are kept
// as they are and replacements are never scanned again.
func Substitute(pattern string, path string) string {
	var out strings.Builder
	out.Grow(len(pattern) + len(path))

	for i := 0; i < len(pattern); {
		if pattern[i] == '{' {
			if ident, end, ok := placeholderAt(pattern, i); ok {
				out.WriteString(resolve(ident, path))
				i = end
				continue
			}
		}

		out.WriteByte(pattern[i])
		i++
	}

	return out.String()
}

// placeholderAt checks whether a placeholder starts at the opening
// brace at index start. It returns the identifier and the index
// right after the closing brace.
func placeholderAt(pattern string, start int) (string, int, bool) {
	end := start + 1

	for end < len(pattern) {
		r, size := utf8.DecodeRuneInString(pattern[end:])
		if !isIdentRune(r) {
			break
		}
		end += size
	}

	if end == start+1 || end >= len(pattern) || pattern[end] != '}' {
		return "", 0, false
	}

	return pattern[start+1 : end], end + 1, true
}

func resolve(ident string, path string) string {
	if value, ok := placeholders[ident]; ok {
		return value(path)
	}
	return UnknownPlaceholder
}

// isIdentRune reports whether r is a word character or a dot.
// Word characters are letters, marks, decimal and letter numbers,
// connector punctuation and the zero width (non-)joiner.
func isIdentRune(r rune) bool {
	return r == '.' ||
		r == '_' ||
		r == '\u200c' ||
		r == '\u200d' ||
		unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		unicode.IsMark(r) ||
		unicode.In(r, unicode.Nl, unicode.Pc)
}
