package app

import (
	"errors"
	"fmt"
)

// Theme is the colour scheme preference of a session
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
	ThemeDark   Theme = "dark"
)

// Themes lists the choices in switcher order
var Themes = []Theme{ThemeLight, ThemeSystem, ThemeDark}

// ErrInvalidTheme is returned for an unknown theme name
var ErrInvalidTheme = errors.New("invalid theme")

// ParseTheme validates a theme name
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Label is the switcher caption
func (t Theme) Label() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return "System"
	}
}
