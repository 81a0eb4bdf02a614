package core

import "image/color"

// Color is a named paint used by the simulation. Drivers translate it to
// whatever their backend understands (ANSI codes, RGBA pixels).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorIndigo
	ColorTransparent // Fully transparent, draws nothing
)

var colorNames = map[Color]string{
	ColorDefault:     "default",
	ColorBlack:       "black",
	ColorWhite:       "white",
	ColorRed:         "red",
	ColorOrange:      "orange",
	ColorYellow:      "yellow",
	ColorGreen:       "green",
	ColorBlue:        "blue",
	ColorIndigo:      "indigo",
	ColorTransparent: "transparent",
}

var colorRGBA = map[Color]color.RGBA{
	ColorDefault:     {0xff, 0xff, 0xff, 0xff},
	ColorBlack:       {0x00, 0x00, 0x00, 0xff},
	ColorWhite:       {0xff, 0xff, 0xff, 0xff},
	ColorRed:         {0xff, 0x00, 0x00, 0xff},
	ColorOrange:      {0xff, 0xa5, 0x00, 0xff},
	ColorYellow:      {0xff, 0xff, 0x00, 0xff},
	ColorGreen:       {0x00, 0x80, 0x00, 0xff},
	ColorBlue:        {0x00, 0x00, 0xff, 0xff},
	ColorIndigo:      {0x4b, 0x00, 0x82, 0xff},
	ColorTransparent: {0x00, 0x00, 0x00, 0x00},
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// RGBA returns the color as 8-bit RGBA. Unknown colors map to opaque white.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := colorRGBA[c]; ok {
		return rgba
	}
	return colorRGBA[ColorWhite]
}

// Transparent reports whether drawing with this color has no visual effect.
func (c Color) Transparent() bool {
	return c.RGBA().A == 0
}
