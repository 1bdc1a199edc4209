// ABOUTME: Splits a window's raw terminal bytes into keystrokes and names them for debug logs.
// ABOUTME: Handles printable runes, control characters, and CSI/SS3/Alt escape sequences.

package keys

import (
	"strings"
	"unicode/utf8"
)

// Key is one keystroke recovered from raw non-canonical input.
type Key struct {
	Type Type
	Rune rune // For printable characters
	Alt  bool
	Ctrl bool
}

// Type enumerates the kinds of keystrokes keywave can name.
type Type int

const (
	Rune      Type = iota // Printable character other than space
	Space                 // The space bar
	Enter                 // Enter / Return
	Tab                   // Tab
	BackTab               // Shift+Tab
	Backspace             // Backspace / DEL (0x7F)
	Delete                // Delete key
	Up                    // Arrow up
	Down                  // Arrow down
	Left                  // Arrow left
	Right                 // Arrow right
	Home                  // Home
	End                   // End
	PageUp                // Page Up
	PageDown              // Page Down
	Escape                // Escape
	Control               // Ctrl+letter; Rune holds the letter
	Unknown               // Unrecognized input
)

var typeNames = map[Type]string{
	Space:     "Space",
	Enter:     "Enter",
	Tab:       "Tab",
	BackTab:   "BackTab",
	Backspace: "Backspace",
	Delete:    "Delete",
	Up:        "Up",
	Down:      "Down",
	Left:      "Left",
	Right:     "Right",
	Home:      "Home",
	End:       "End",
	PageUp:    "PageUp",
	PageDown:  "PageDown",
	Escape:    "Escape",
	Unknown:   "Unknown",
}

// String returns a human-readable name such as "a", "Alt+x", "Ctrl+C" or "Space".
func (k Key) String() string {
	switch k.Type {
	case Rune:
		if k.Alt {
			return "Alt+" + string(k.Rune)
		}
		return string(k.Rune)
	case Control:
		return "Ctrl+" + string(k.Rune)
	}
	if name, ok := typeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

// Split breaks buf into keystrokes in input order. A window's read can
// end in the middle of an escape sequence or a UTF-8 rune; the partial
// tail comes back as Unknown.
func Split(buf []byte) []Key {
	var out []Key
	for len(buf) > 0 {
		n := tokenLen(buf)
		out = append(out, Parse(string(buf[:n])))
		buf = buf[n:]
	}
	return out
}

// Describe names every keystroke in buf, space separated.
func Describe(buf []byte) string {
	ks := Split(buf)
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return strings.Join(names, " ")
}

// Parse interprets a single keystroke's bytes.
func Parse(data string) Key {
	if len(data) == 0 {
		return Key{Type: Unknown}
	}
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: Unknown}
	}
	return Key{Type: Rune, Rune: r}
}

// tokenLen returns the length of the keystroke starting at buf[0].
func tokenLen(buf []byte) int {
	if buf[0] != 0x1b {
		if buf[0] < utf8.RuneSelf {
			return 1
		}
		_, n := utf8.DecodeRune(buf)
		return n
	}
	if len(buf) == 1 {
		return 1
	}

	switch buf[1] {
	case '[':
		// CSI: parameters then a final byte in 0x40..0x7e.
		for i := 2; i < len(buf); i++ {
			if buf[i] >= 0x40 && buf[i] <= 0x7e {
				return i + 1
			}
		}
		return len(buf)
	case 'O':
		return min(3, len(buf))
	case 0x1b:
		return 1
	}
	return 2
}

func parseSingleByte(b byte) Key {
	switch {
	case b == ' ':
		return Key{Type: Space}
	case b == 0x0d || b == 0x0a:
		return Key{Type: Enter}
	case b == 0x09:
		return Key{Type: Tab}
	case b == 0x7f || b == 0x08:
		return Key{Type: Backspace}
	case b == 0x1b:
		return Key{Type: Escape}
	case b > 0x20 && b <= 0x7e:
		return Key{Type: Rune, Rune: rune(b)}
	case b >= 0x01 && b <= 0x1a:
		return Key{Type: Control, Rune: rune('A' + b - 1), Ctrl: true}
	}
	return Key{Type: Unknown}
}

func parseEscapeSequence(data string) Key {
	switch {
	case len(data) == 3 && (data[1] == '[' || data[1] == 'O'):
		// CSI or SS3 with a single final letter.
		if data[2] == 'Z' && data[1] == '[' {
			return Key{Type: BackTab}
		}
		if t, ok := cursorFinals[data[2]]; ok {
			return Key{Type: t}
		}
	case len(data) == 4 && data[1] == '[' && data[3] == '~':
		// CSI <n> ~ editing keys.
		if t, ok := tildeCodes[data[2]]; ok {
			return Key{Type: t}
		}
	case len(data) == 2 && data[1] > 0x20 && data[1] <= 0x7e:
		// Alt+letter: ESC followed by a single printable byte.
		return Key{Type: Rune, Rune: rune(data[1]), Alt: true}
	}
	return Key{Type: Unknown}
}

// cursorFinals maps the final byte of ESC [ x and ESC O x.
var cursorFinals = map[byte]Type{
	'A': Up,
	'B': Down,
	'C': Right,
	'D': Left,
	'H': Home,
	'F': End,
}

// tildeCodes maps the digit of ESC [ n ~.
var tildeCodes = map[byte]Type{
	'1': Home,
	'3': Delete,
	'4': End,
	'5': PageUp,
	'6': PageDown,
}
