package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Palette maps color tags to concrete terminal and pixel colors for one mode.
type Palette struct {
	Mode       Mode
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color

	term   map[core.Color]lipgloss.Color
	pixels map[core.Color]color.RGBA
	bg     color.RGBA
}

// Style returns the cell style for c on the palette background.
func (p Palette) Style(c core.Color) lipgloss.Style {
	fg, ok := p.term[c]
	if !ok {
		fg = p.Foreground
	}
	return lipgloss.NewStyle().Foreground(fg).Background(p.Background)
}

// RGBA returns the pixel color for c.
func (p Palette) RGBA(c core.Color) color.RGBA {
	if rgba, ok := p.pixels[c]; ok {
		return rgba
	}
	return p.pixels[core.ColorDefault]
}

// BackgroundRGBA returns the pixel background color.
func (p Palette) BackgroundRGBA() color.RGBA {
	return p.bg
}

// For returns the palette of mode m. Unknown modes get the dark palette.
func For(m Mode) Palette {
	if m == Light {
		return lightPalette
	}
	return darkPalette
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

var darkPalette = Palette{
	Mode:       Dark,
	Background: lipgloss.Color("234"),
	Foreground: lipgloss.Color("252"),
	Accent:     lipgloss.Color("51"),
	Muted:      lipgloss.Color("245"),
	term: map[core.Color]lipgloss.Color{
		core.ColorDefault:       "252",
		core.ColorRed:           "196",
		core.ColorGreen:         "46",
		core.ColorYellow:        "226",
		core.ColorBlue:          "39",
		core.ColorMagenta:       "201",
		core.ColorCyan:          "51",
		core.ColorWhite:         "253",
		core.ColorBrightRed:     "203",
		core.ColorBrightGreen:   "120",
		core.ColorBrightYellow:  "228",
		core.ColorBrightBlue:    "117",
		core.ColorBrightMagenta: "213",
		core.ColorBrightCyan:    "159",
		core.ColorBrightWhite:   "231",
		core.ColorOrange:        "214",
		core.ColorGray:          "243",
		core.ColorPurple:        "135",
	},
	pixels: map[core.Color]color.RGBA{
		core.ColorDefault:       rgb(0xe5e7eb),
		core.ColorRed:           rgb(0xef4444),
		core.ColorGreen:         rgb(0x22c55e),
		core.ColorYellow:        rgb(0xfacc15),
		core.ColorBlue:          rgb(0x3b82f6),
		core.ColorMagenta:       rgb(0xd946ef),
		core.ColorCyan:          rgb(0x22d3ee),
		core.ColorWhite:         rgb(0xe5e7eb),
		core.ColorBrightRed:     rgb(0xf87171),
		core.ColorBrightGreen:   rgb(0x86efac),
		core.ColorBrightYellow:  rgb(0xfde047),
		core.ColorBrightBlue:    rgb(0x93c5fd),
		core.ColorBrightMagenta: rgb(0xf0abfc),
		core.ColorBrightCyan:    rgb(0xa5f3fc),
		core.ColorBrightWhite:   rgb(0xffffff),
		core.ColorOrange:        rgb(0xf59e0b),
		core.ColorGray:          rgb(0x6b7280),
		core.ColorPurple:        rgb(0xa855f7),
	},
	bg: rgb(0x111827),
}

// lightPalette darkens the bright tags so they stay readable on white.
var lightPalette = Palette{
	Mode:       Light,
	Background: lipgloss.Color("255"),
	Foreground: lipgloss.Color("236"),
	Accent:     lipgloss.Color("25"),
	Muted:      lipgloss.Color("242"),
	term: map[core.Color]lipgloss.Color{
		core.ColorDefault:       "236",
		core.ColorRed:           "160",
		core.ColorGreen:         "28",
		core.ColorYellow:        "136",
		core.ColorBlue:          "26",
		core.ColorMagenta:       "127",
		core.ColorCyan:          "30",
		core.ColorWhite:         "236",
		core.ColorBrightRed:     "124",
		core.ColorBrightGreen:   "22",
		core.ColorBrightYellow:  "130",
		core.ColorBrightBlue:    "19",
		core.ColorBrightMagenta: "90",
		core.ColorBrightCyan:    "23",
		core.ColorBrightWhite:   "232",
		core.ColorOrange:        "166",
		core.ColorGray:          "240",
		core.ColorPurple:        "92",
	},
	pixels: map[core.Color]color.RGBA{
		core.ColorDefault:       rgb(0x333333),
		core.ColorRed:           rgb(0xdc2626),
		core.ColorGreen:         rgb(0x16a34a),
		core.ColorYellow:        rgb(0xca8a04),
		core.ColorBlue:          rgb(0x2563eb),
		core.ColorMagenta:       rgb(0xc026d3),
		core.ColorCyan:          rgb(0x0891b2),
		core.ColorWhite:         rgb(0x333333),
		core.ColorBrightRed:     rgb(0xb91c1c),
		core.ColorBrightGreen:   rgb(0x15803d),
		core.ColorBrightYellow:  rgb(0xa16207),
		core.ColorBrightBlue:    rgb(0x1d4ed8),
		core.ColorBrightMagenta: rgb(0xa21caf),
		core.ColorBrightCyan:    rgb(0x0e7490),
		core.ColorBrightWhite:   rgb(0x111111),
		core.ColorOrange:        rgb(0xd97706),
		core.ColorGray:          rgb(0x555555),
		core.ColorPurple:        rgb(0x7e22ce),
	},
	bg: rgb(0xf3f4f6),
}
