package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB). Empty colors fall
// back to the default palette.
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary,omitempty"`
	Error     string `yaml:"error,omitempty"`
	Muted     string `yaml:"muted,omitempty"`
	Surface   string `yaml:"surface,omitempty"`
	Text      string `yaml:"text,omitempty"`
	Border    string `yaml:"border,omitempty"`
}

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %q (supported: 1)", t.Version)
	}
	if t.Colors.Primary == "" {
		return errors.New("colors.primary is required")
	}

	colors := map[string]string{
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"error":     t.Colors.Error,
		"muted":     t.Colors.Muted,
		"surface":   t.Colors.Surface,
		"text":      t.Colors.Text,
		"border":    t.Colors.Border,
	}
	for field, color := range colors {
		if color != "" && !hexColorRegex.MatchString(color) {
			return fmt.Errorf("colors.%s: invalid hex color %q", field, color)
		}
	}
	return nil
}

// ToPalette converts the theme file into a palette, filling unset colors
// from the default palette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	d := DefaultPalette()
	return &ColorPalette{
		Primary:   colorOrDefault(t.Colors.Primary, d.Primary),
		Secondary: colorOrDefault(t.Colors.Secondary, d.Secondary),
		Error:     colorOrDefault(t.Colors.Error, d.Error),
		Muted:     colorOrDefault(t.Colors.Muted, d.Muted),
		Surface:   colorOrDefault(t.Colors.Surface, d.Surface),
		Text:      colorOrDefault(t.Colors.Text, d.Text),
		Border:    colorOrDefault(t.Colors.Border, d.Border),
	}
}

func colorOrDefault(color string, def lipgloss.Color) lipgloss.Color {
	if color == "" {
		return def
	}
	return lipgloss.Color(color)
}

// ThemesDir returns the directory holding custom theme files under the
// given config directory.
func ThemesDir(configDir string) string {
	return filepath.Join(configDir, "themes")
}

// Resolve returns the palette for a theme name. Built-in names resolve
// directly; any other name is loaded from {themesDir}/{name}.yaml.
func Resolve(name, themesDir string) (*ColorPalette, error) {
	if name == "" || IsBuiltinTheme(name) {
		return GetPalette(ThemeName(name)), nil
	}

	theme, err := LoadThemeFile(filepath.Join(themesDir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	return theme.ToPalette(), nil
}
