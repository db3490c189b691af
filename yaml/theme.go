// Package yaml loads theme override files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/chatcards"
	"gopkg.in/yaml.v3"
)

// themeFile is the on-disk theme format. Every key is optional; absent
// keys keep the base theme's value.
type themeFile struct {
	Author       *int `yaml:"author"`
	AvatarBorder *int `yaml:"avatar_border"`
	BodyLight    *int `yaml:"body_light"`
	BodyDark     *int `yaml:"body_dark"`
	Muted        *int `yaml:"muted"`
	Focus        *int `yaml:"focus"`

	SurfaceLight   *string `yaml:"surface_light"`
	SurfaceDark    *string `yaml:"surface_dark"`
	HighlightLight *string `yaml:"highlight_light"`
	HighlightDark  *string `yaml:"highlight_dark"`
}

// UnmarshalTheme applies YAML overrides on top of base and validates the
// result. Unknown keys are rejected.
func UnmarshalTheme(data []byte, base chatcards.Theme) (chatcards.Theme, error) {
	var f themeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return chatcards.Theme{}, fmt.Errorf("decode theme: %w", err)
	}

	t := base
	setInt(&t.Author, f.Author)
	setInt(&t.AvatarBorder, f.AvatarBorder)
	setInt(&t.BodyLight, f.BodyLight)
	setInt(&t.BodyDark, f.BodyDark)
	setInt(&t.Muted, f.Muted)
	setInt(&t.Focus, f.Focus)
	setString(&t.SurfaceLight, f.SurfaceLight)
	setString(&t.SurfaceDark, f.SurfaceDark)
	setString(&t.HighlightLight, f.HighlightLight)
	setString(&t.HighlightDark, f.HighlightDark)

	if err := t.Validate(); err != nil {
		return chatcards.Theme{}, err
	}
	return t, nil
}

// LoadTheme reads overrides from path and applies them on top of base.
func LoadTheme(path string, base chatcards.Theme) (chatcards.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chatcards.Theme{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalTheme(data, base)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
