// Package config loads module-style presets. A preset couples a placement
// configuration with the grading thresholds a layout must meet, so CLI
// users can say "border" or "flood" instead of spelling out five numbers.
//
// Presets come from two layers: the built-in set every install carries,
// and an optional TOML file that can add presets or override built-ins by
// name:
//
//	[preset.border]
//	description = "single run along the stroke"
//
//	[preset.border.place]
//	strategy = "stroke"
//	orientation = "horizontal"
//	scale = 1.0
//	spacing = 1.0
//	inset = 1.0
//
//	[preset.border.grade]
//	min_inside_rate = 0.98
//	min_clearance = 0.6
package config

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/mklettner/ledsmith/pkg/errors"
	"github.com/mklettner/ledsmith/pkg/place"
	"github.com/mklettner/ledsmith/pkg/place/quality"
)

// Preset is one named module-style: how to place and how to judge.
type Preset struct {
	Description string             `toml:"description"`
	Place       place.Config       `toml:"place"`
	Grade       quality.Thresholds `toml:"grade"`
}

type presetFile struct {
	Presets map[string]Preset `toml:"preset"`
}

// Builtin returns the presets shipped with the tool. The map is fresh on
// every call; callers may mutate it.
func Builtin() map[string]Preset {
	return map[string]Preset{
		"border": {
			Description: "single module run following the stroke",
			Place:       place.Config{Strategy: place.StrategyStroke, Orientation: place.Horizontal, Scale: 1, Spacing: 1, Inset: 1},
			Grade:       quality.DefaultThresholds(),
		},
		"flood": {
			Description: "dense interior grid for face-lit letters",
			Place:       place.Config{Strategy: place.StrategyGrid, Orientation: place.Horizontal, Scale: 1, Spacing: 0.5, Inset: 0.5},
			Grade:       quality.DefaultThresholds(),
		},
		"sparse": {
			Description: "economy grid with wide pitch",
			Place:       place.Config{Strategy: place.StrategyGrid, Orientation: place.Horizontal, Scale: 1, Spacing: 2, Inset: 1},
			Grade:       quality.DefaultThresholds(),
		},
	}
}

// Load reads a preset file and returns its presets keyed by name. Every
// name and placement config is validated; unset grade thresholds fall back
// to the defaults.
func Load(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "preset file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read preset file %s", path)
	}

	var file presetFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse preset file %s", path)
	}

	out := make(map[string]Preset, len(file.Presets))
	for name, p := range file.Presets {
		if err := errors.ValidatePresetName(name); err != nil {
			return nil, err
		}
		p.Place = p.Place.WithDefaults()
		if err := p.Place.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "preset %q", name)
		}
		if p.Grade == (quality.Thresholds{}) {
			p.Grade = quality.DefaultThresholds()
		}
		out[name] = p
	}
	return out, nil
}

// Resolve looks up a preset by name: built-ins first, then the optional
// preset file, which wins on name collisions. An empty path consults only
// the built-ins.
func Resolve(name, path string) (Preset, error) {
	presets := Builtin()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Preset{}, err
		}
		for k, v := range loaded {
			presets[k] = v
		}
	}

	p, ok := presets[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodePresetUnknown, "unknown preset %q (available: %v)", name, Names(presets))
	}
	return p, nil
}

// Names returns the preset names in sorted order, for listings and error
// messages.
func Names(presets map[string]Preset) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
