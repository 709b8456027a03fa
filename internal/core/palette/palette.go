// Package palette names the colors the simulation attaches to entities and
// messages. The core treats them as opaque data for the frontends.
package palette

import "image/color"

var (
	White       = color.RGBA{255, 255, 255, 255}
	Black       = color.RGBA{0, 0, 0, 255}
	Red         = color.RGBA{255, 0, 0, 255}
	DarkRed     = color.RGBA{128, 0, 0, 255}
	DarkerRed   = color.RGBA{64, 0, 0, 255}
	LightRed    = color.RGBA{255, 114, 114, 255}
	Orange      = color.RGBA{255, 127, 0, 255}
	Yellow      = color.RGBA{255, 255, 0, 255}
	LightYellow = color.RGBA{255, 255, 114, 255}
	Green       = color.RGBA{0, 255, 0, 255}
	LightGreen  = color.RGBA{114, 255, 114, 255}
	DesatGreen  = color.RGBA{63, 127, 63, 255}
	DarkerGreen = color.RGBA{0, 96, 0, 255}
	LightCyan   = color.RGBA{114, 255, 255, 255}
	LightBlue   = color.RGBA{114, 114, 255, 255}
	Violet      = color.RGBA{127, 0, 255, 255}
	LightViolet = color.RGBA{184, 114, 255, 255}
	Sky         = color.RGBA{0, 191, 255, 255}
	DarkSky     = color.RGBA{0, 143, 191, 255}
	LightGrey   = color.RGBA{159, 159, 159, 255}
	DarkWall    = color.RGBA{0, 0, 100, 255}
	LightWall   = color.RGBA{130, 110, 50, 255}
	DarkGround  = color.RGBA{50, 50, 150, 255}
	LightGround = color.RGBA{200, 180, 50, 255}
)
