package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Role names a piece of output that can be styled.
type Role int

const (
	RoleDim Role = iota
	RoleTrace
	RoleDebug
	RoleInfo
	RoleWarn
	RoleError
	RoleFatal
	RoleStatus2xx
	RoleStatus3xx
	RoleStatus4xx
	RoleStatus5xx
)

// Styler decorates text for a role. Implementations must not change the
// visible width of text.
type Styler interface {
	Render(role Role, text string) string
}

// Plain is the Styler used when color is disabled. It returns text unchanged.
type Plain struct{}

func (Plain) Render(_ Role, text string) string { return text }

// Palette styles text with lipgloss using the colors of a Skin.
type Palette struct {
	styles map[Role]lipgloss.Style
}

// NewPalette builds a Palette on top of r. The renderer's color profile
// decides which escape sequences are emitted.
func NewPalette(r *lipgloss.Renderer, skin Skin) *Palette {
	color := func(c string) lipgloss.Style {
		if c == "" {
			return r.NewStyle().Faint(true)
		}
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return &Palette{styles: map[Role]lipgloss.Style{
		RoleDim:       color(skin.Dim),
		RoleTrace:     color(skin.Trace),
		RoleDebug:     color(skin.Debug),
		RoleInfo:      color(skin.Info),
		RoleWarn:      color(skin.Warn),
		RoleError:     color(skin.Error),
		RoleFatal:     color(skin.Fatal).Bold(true),
		RoleStatus2xx: color(skin.Status2xx),
		RoleStatus3xx: color(skin.Status3xx),
		RoleStatus4xx: color(skin.Status4xx),
		RoleStatus5xx: color(skin.Status5xx),
	}}
}

func (p *Palette) Render(role Role, text string) string {
	style, ok := p.styles[role]
	if !ok || text == "" {
		return text
	}
	return style.Render(text)
}

// NewStyler picks the Styler for output written to w. Color is used only
// when enabled is set and the environment supports it (a terminal, or
// CLICOLOR_FORCE); NO_COLOR and non-terminal outputs fall back to Plain.
func NewStyler(w io.Writer, enabled bool, skin Skin) Styler {
	if !enabled {
		return Plain{}
	}
	profile := termenv.NewOutput(w).EnvColorProfile()
	if profile == termenv.Ascii {
		return Plain{}
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return NewPalette(r, skin)
}
