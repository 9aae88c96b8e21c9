package utils

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// HasName is an interface for types that expose a Name method.
// Used to generically sort any slice of such types.
type HasName interface {
	Name() string
}

// Clamp restricts value to the range [low, high].
// If high is lower than low, low wins.
func Clamp[T cmp.Ordered](value, low, high T) T {
	return max(low, min(value, high))
}

// TruncateText shortens the given text to fit within maxWidth cells.
// Grapheme clusters are never split. If the text exceeds maxWidth
// it ends with "…".
func TruncateText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if uniseg.StringWidth(text) <= maxWidth {
		return text
	}

	var out strings.Builder
	width := 0
	state := -1
	rest := text

	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)

		if width+w > maxWidth-1 {
			break
		}

		out.WriteString(cluster)
		width += w
	}

	out.WriteString("…")
	return out.String()
}

// SortSliceAsc sorts a slice of items that implement HasName
// in ascending (case-insensitive) order.
func SortSliceAsc[T HasName](slice []T) {
	slices.SortStableFunc(slice, func(i, j T) int {
		return strings.Compare(strings.ToLower(i.Name()), strings.ToLower(j.Name()))
	})
}

// DisplayPath renders a path as printable text.
// Every maximal invalid UTF-8 subpart is replaced with one U+FFFD, so
// "\xff\xfe" becomes two replacement characters while the truncated
// sequence "\xe2\x82" becomes one.
func DisplayPath(path string) string {
	if utf8.ValidString(path) {
		return path
	}

	var out strings.Builder
	out.Grow(len(path) + 8)

	for i := 0; i < len(path); {
		r, size := utf8.DecodeRuneInString(path[i:])
		if r == utf8.RuneError && size <= 1 {
			out.WriteRune(utf8.RuneError)
			i += invalidSubpartLen(path[i:])
			continue
		}

		out.WriteString(path[i : i+size])
		i += size
	}

	return out.String()
}

// invalidSubpartLen returns how many bytes at the start of s belong
// to an incomplete or broken UTF-8 sequence. s must not start with a
// valid rune.
func invalidSubpartLen(s string) int {
	need := 0
	lo, hi := byte(0x80), byte(0xbf)

	switch b := s[0]; {
	case b >= 0xc2 && b <= 0xdf:
		need = 1
	case b == 0xe0:
		need, lo = 2, 0xa0
	case b == 0xed:
		need, hi = 2, 0x9f
	case b >= 0xe1 && b <= 0xef:
		need = 2
	case b == 0xf0:
		need, lo = 3, 0x90
	case b == 0xf4:
		need, hi = 3, 0x8f
	case b >= 0xf1 && b <= 0xf3:
		need = 3
	default:
		return 1
	}

	n := 1
	for n <= need && n < len(s) {
		if c := s[n]; c < lo || c > hi {
			break
		}
		lo, hi = 0x80, 0xbf
		n++
	}

	return n
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
}

// CreateFile creates a file and its parent directories.
// If the file already exists it's only truncated when truncate is set.
func CreateFile(path string, truncate bool) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	flags := os.O_RDWR | os.O_CREATE
	if truncate {
		flags |= os.O_TRUNC
	}

	return os.OpenFile(path, flags, 0644)
}
