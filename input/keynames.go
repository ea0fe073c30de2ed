package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Key identifies one physical key: either a special tcell key or a rune
type Key struct {
	Code tcell.Key
	Rune rune
}

// String returns the name accepted by ParseKey
func (k Key) String() string {
	if k.Code == tcell.KeyRune {
		for name, r := range runeAliases {
			if r == k.Rune {
				return name
			}
		}
		return string(k.Rune)
	}
	if name, ok := tcell.KeyNames[k.Code]; ok {
		return name
	}
	return fmt.Sprintf("Key[%d]", int(k.Code))
}

// Matches reports whether ev was produced by this key
func (k Key) Matches(ev *tcell.EventKey) bool {
	if ev == nil {
		return false
	}
	if k.Code == tcell.KeyRune {
		return ev.Key() == tcell.KeyRune && ev.Rune() == k.Rune
	}
	return ev.Key() == k.Code
}

// Rune aliases for keys that are awkward to write as a bare character in TOML
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is the lowercase reverse index of tcell.KeyNames
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseKey resolves a key name ("Up", "Left", "F1", "w", "space") to a Key
// Single characters are case-sensitive, named keys are not
func ParseKey(name string) (Key, error) {
	if name == "" {
		return Key{}, fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Key{Code: tcell.KeyRune, Rune: r}, nil
	}

	lower := strings.ToLower(name)
	if r, ok := runeAliases[lower]; ok {
		return Key{Code: tcell.KeyRune, Rune: r}, nil
	}
	if k, ok := keysByName[lower]; ok {
		return Key{Code: k}, nil
	}
	return Key{}, fmt.Errorf("unknown key name %q", name)
}

// IsQuit reports whether ev aborts the race
func IsQuit(ev *tcell.EventKey) bool {
	if ev == nil {
		return false
	}
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// isQuitKey is the Key form of IsQuit, used to reject bindings that could never fire
func isQuitKey(k Key) bool {
	return k.Code == tcell.KeyEscape || k.Code == tcell.KeyCtrlC
}
