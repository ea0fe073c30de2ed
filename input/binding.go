package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Action is a per-player control
type Action uint8

const (
	ActionNone Action = iota
	ActionAccelerate
	ActionBrake
	ActionLeft
	ActionRight
)

// actionNames is indexed by Action
var actionNames = [...]string{"none", "accelerate", "brake", "left", "right"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Controls is the configuration form of a player's bindings, one key name per action
type Controls struct {
	Accelerate string `toml:"accelerate"`
	Brake      string `toml:"brake"`
	Left       string `toml:"left"`
	Right      string `toml:"right"`
}

// Binding is the parsed form of Controls
type Binding struct {
	keys [4]Key // Indexed by Action-1
}

// ParseBinding resolves all four key names
func ParseBinding(c Controls) (Binding, error) {
	var b Binding
	names := [4]string{c.Accelerate, c.Brake, c.Left, c.Right}
	for i, name := range names {
		action := Action(i + 1)
		k, err := ParseKey(name)
		if err != nil {
			return Binding{}, fmt.Errorf("%s: %w", action, err)
		}
		if isQuitKey(k) {
			return Binding{}, fmt.Errorf("%s: %s is reserved for quitting", action, k)
		}
		b.keys[i] = k
	}
	return b, nil
}

// Key returns the key bound to action
func (b Binding) Key(action Action) (Key, bool) {
	if action == ActionNone || int(action) > len(b.keys) {
		return Key{}, false
	}
	return b.keys[action-1], true
}

// Match returns the action bound to ev, or ActionNone
func (b Binding) Match(ev *tcell.EventKey) Action {
	for i, k := range b.keys {
		if k.Matches(ev) {
			return Action(i + 1)
		}
	}
	return ActionNone
}

// CheckDistinct fails if any key is bound twice, within or across bindings
// One physical key may drive only one player's action
func CheckDistinct(bindings []Binding) error {
	seen := make(map[Key]int)
	for p, b := range bindings {
		for _, k := range b.keys {
			if owner, ok := seen[k]; ok {
				if owner == p {
					return fmt.Errorf("player %d binds %s twice", p+1, k)
				}
				return fmt.Errorf("key %s bound by players %d and %d", k, owner+1, p+1)
			}
			seen[k] = p
		}
	}
	return nil
}
