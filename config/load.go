package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/zracer/input"
)

// DefaultPath returns ~/.config/zracer/config.toml, or "" when the home directory is unknown
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "zracer", "config.toml")
}

// LoadFile overlays the TOML file at path onto base
// Keys absent from the file keep their base value; unknown keys are rejected
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Decode(string(data), base)
}

// LoadOptional is LoadFile that treats a missing file as "use base"
func LoadOptional(path string, base Config) (Config, bool, error) {
	if path == "" {
		return base, false, nil
	}
	cfg, err := LoadFile(path, base)
	if errors.Is(err, fs.ErrNotExist) {
		return base, false, nil
	}
	if err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}

// Decode overlays TOML text onto base
func Decode(data string, base Config) (Config, error) {
	cfg := base
	cfg.Controls = nil

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, Wrap("file", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, Errorf("file", "unknown keys: %s", strings.Join(keys, ", "))
	}

	cfg.Controls = mergeControls(cfg.Controls, base.Controls)
	return cfg, nil
}

// mergeControls fills actions and players missing from the file with base bindings
func mergeControls(file, base []input.Controls) []input.Controls {
	n := len(base)
	if len(file) > n {
		n = len(file)
	}
	out := make([]input.Controls, n)
	for i := range out {
		if i < len(base) {
			out[i] = base[i]
		}
		if i >= len(file) {
			continue
		}
		f := file[i]
		if f.Accelerate != "" {
			out[i].Accelerate = f.Accelerate
		}
		if f.Brake != "" {
			out[i].Brake = f.Brake
		}
		if f.Left != "" {
			out[i].Left = f.Left
		}
		if f.Right != "" {
			out[i].Right = f.Right
		}
	}
	return out
}
