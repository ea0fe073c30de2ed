package config

import (
	"fmt"
	"strings"
)

// SharingMode selects how players relate to the track
type SharingMode uint8

const (
	// SharingIndependent generates a separate random track per player
	SharingIndependent SharingMode = iota
	// SharingSimilar gives every player an identical but separate copy
	SharingSimilar
	// SharingShared puts all players on one track where cars collide
	SharingShared
)

var sharingNames = [...]string{"independent", "similar", "shared"}

func (m SharingMode) String() string {
	if int(m) < len(sharingNames) {
		return sharingNames[m]
	}
	return fmt.Sprintf("SharingMode(%d)", uint8(m))
}

// MarshalText implements encoding.TextMarshaler
func (m SharingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
// Also accepts the single letters d(ifferent), s(imilar) and h (shared)
func (m *SharingMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "independent", "different", "d":
		*m = SharingIndependent
	case "similar", "s":
		*m = SharingSimilar
	case "shared", "h":
		*m = SharingShared
	default:
		return fmt.Errorf("unknown sharing mode %q", text)
	}
	return nil
}

// SplitAxis selects how the screen is divided between players
type SplitAxis uint8

const (
	// SplitVertical places players side by side
	SplitVertical SplitAxis = iota
	// SplitHorizontal stacks players top to bottom
	SplitHorizontal
)

func (a SplitAxis) String() string {
	if a == SplitHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// MarshalText implements encoding.TextMarshaler
func (a SplitAxis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *SplitAxis) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "vertical", "v":
		*a = SplitVertical
	case "horizontal", "h":
		*a = SplitHorizontal
	default:
		return fmt.Errorf("unknown split axis %q", text)
	}
	return nil
}
