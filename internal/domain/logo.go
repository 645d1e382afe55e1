package domain

import (
	"encoding/json"
	"fmt"
)

// CustomLogoType is the slot a custom logo fills.
type CustomLogoType string

const (
	MastheadType CustomLogoType = "masthead"
	FaviconType  CustomLogoType = "favicon"
)

// CustomLogoTheme is the console theme a logo is drawn for.
type CustomLogoTheme string

const (
	DarkTheme  CustomLogoTheme = "dark-theme"
	LightTheme CustomLogoTheme = "light-theme"
)

// CustomLogoFile is one logo image for a theme.
// Example: {"theme": "dark-theme", "path": "/foo/logo.svg"}.
type CustomLogoFile struct {
	Theme CustomLogoTheme `json:"theme,omitempty" yaml:"theme,omitempty"`
	Path  string          `json:"path,omitempty" yaml:"path,omitempty"`
}

// CustomLogoFiles groups the logos configured for one logo type.
type CustomLogoFiles struct {
	Type  CustomLogoType   `json:"type,omitempty" yaml:"type,omitempty"`
	Logos []CustomLogoFile `json:"logos,omitempty" yaml:"logos,omitempty"`
}

func unknownLogoTypeError(s string) error {
	return fmt.Errorf("unknown custom logo type: %q. Must be one of [masthead, favicon]", s)
}

func unknownLogoThemeError(s string) error {
	return fmt.Errorf("unknown custom logo theme: %q. Must be one of [dark-theme, light-theme]", s)
}

func ParseCustomLogoType(s string) (CustomLogoType, error) {
	switch CustomLogoType(s) {
	case MastheadType, FaviconType:
		return CustomLogoType(s), nil
	default:
		return "", unknownLogoTypeError(s)
	}
}

func ParseCustomLogoTheme(s string) (CustomLogoTheme, error) {
	switch CustomLogoTheme(s) {
	case DarkTheme, LightTheme:
		return CustomLogoTheme(s), nil
	default:
		return "", unknownLogoThemeError(s)
	}
}

func (t *CustomLogoType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseCustomLogoType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t *CustomLogoType) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseCustomLogoType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Set implements pflag.Value. An empty value leaves t unchanged.
func (t *CustomLogoType) Set(value string) error {
	if value == "" {
		return nil
	}
	v, err := ParseCustomLogoType(value)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t *CustomLogoType) String() string { return string(*t) }

func (t *CustomLogoType) Type() string { return "logo-type" }

func (t *CustomLogoTheme) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseCustomLogoTheme(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t *CustomLogoTheme) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseCustomLogoTheme(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// FindLogo returns the path configured for the type and theme. The first
// matching entry wins.
func FindLogo(files []CustomLogoFiles, typ CustomLogoType, theme CustomLogoTheme) (string, bool) {
	for _, group := range files {
		if group.Type != typ {
			continue
		}
		for _, logo := range group.Logos {
			if logo.Theme == theme {
				return logo.Path, true
			}
		}
	}
	return "", false
}
