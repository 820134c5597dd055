// Package theme defines the colour scheme, typography and preset documents
// that brandlint validates, and loads them from files, flags and URLs.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when a colour role name is not recognised.
var ErrUnknownRole = errors.New("unknown colour role")

// Role is a named colour slot in a scheme.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleAccent     Role = "accent"
	RoleBackground Role = "background"
	RoleSurface    Role = "surface"
	RoleText       Role = "text"
	RoleSuccess    Role = "success"
	RoleWarning    Role = "warning"
	RoleError      Role = "error"
)

// Roles lists every colour role in display order.
var Roles = []Role{
	RolePrimary, RoleSecondary, RoleAccent,
	RoleBackground, RoleSurface, RoleText,
	RoleSuccess, RoleWarning, RoleError,
}

// ParseRole resolves a role name, ignoring case, '-' and '_'.
func ParseRole(name string) (Role, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "")
	n = strings.ReplaceAll(n, "-", "")

	aliases := map[string]Role{
		"primary":    RolePrimary,
		"secondary":  RoleSecondary,
		"accent":     RoleAccent,
		"background": RoleBackground,
		"bg":         RoleBackground,
		"surface":    RoleSurface,
		"text":       RoleText,
		"foreground": RoleText,
		"fg":         RoleText,
		"success":    RoleSuccess,
		"warning":    RoleWarning,
		"error":      RoleError,
		"danger":     RoleError,
	}

	role, ok := aliases[n]
	if !ok {
		return "", fmt.Errorf("%w '%s'", ErrUnknownRole, name)
	}
	return role, nil
}

// ColorScheme holds the nine branding colours as #RRGGBB strings.
// Values are kept verbatim; validation reports malformed ones.
type ColorScheme struct {
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Accent     string `json:"accent" yaml:"accent"`
	Background string `json:"background" yaml:"background"`
	Surface    string `json:"surface" yaml:"surface"`
	Text       string `json:"text" yaml:"text"`
	Success    string `json:"success" yaml:"success"`
	Warning    string `json:"warning" yaml:"warning"`
	Error      string `json:"error" yaml:"error"`
}

// Get returns the colour assigned to role.
func (s ColorScheme) Get(role Role) string {
	if p := s.field(role); p != nil {
		return *p
	}
	return ""
}

// Set assigns value to role.
func (s *ColorScheme) Set(role Role, value string) error {
	p := s.field(role)
	if p == nil {
		return fmt.Errorf("%w '%s'", ErrUnknownRole, role)
	}
	*p = value
	return nil
}

func (s *ColorScheme) field(role Role) *string {
	switch role {
	case RolePrimary:
		return &s.Primary
	case RoleSecondary:
		return &s.Secondary
	case RoleAccent:
		return &s.Accent
	case RoleBackground:
		return &s.Background
	case RoleSurface:
		return &s.Surface
	case RoleText:
		return &s.Text
	case RoleSuccess:
		return &s.Success
	case RoleWarning:
		return &s.Warning
	case RoleError:
		return &s.Error
	default:
		return nil
	}
}

// TypographyConfig describes the theme's fonts and size scale.
// FontSizes values are CSS lengths, normally in rem.
type TypographyConfig struct {
	FontFamily  string            `json:"fontFamily" yaml:"fontFamily"`
	HeadingFont *string           `json:"headingFont,omitempty" yaml:"headingFont,omitempty"`
	FontSizes   map[string]string `json:"fontSizes,omitempty" yaml:"fontSizes,omitempty"`
}

// Preset is a complete theme: colours plus typography, with catalog metadata.
type Preset struct {
	ID          string           `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string           `json:"name,omitempty" yaml:"name,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
	Colors      ColorScheme      `json:"colors" yaml:"colors"`
	Typography  TypographyConfig `json:"typography" yaml:"typography"`
}

// DisplayName returns the preset name, falling back to its ID.
func (p Preset) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.ID != "" {
		return p.ID
	}
	return "untitled"
}
