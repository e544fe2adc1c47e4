package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the maze view
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray
	RgbStart      = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbEnd        = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStopped    = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbPursuer    = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbRoute      = tcell.NewRGBColor(60, 100, 200)  // Dark Blue
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbGameOver   = tcell.NewRGBColor(180, 50, 50)   // Dark Red
)

// Styles groups the tcell styles used by Renderer
type Styles struct {
	Floor    tcell.Style
	Wall     tcell.Style
	Start    tcell.Style
	End      tcell.Style
	Route    tcell.Style
	Player   tcell.Style
	Stopped  tcell.Style
	Pursuer  tcell.Style
	Status   tcell.Style
	GameOver tcell.Style
}

// DefaultStyles returns the truecolor palette
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(RgbBackground)
	return Styles{
		Floor:    base,
		Wall:     base.Foreground(RgbWall),
		Start:    base.Foreground(RgbStart),
		End:      base.Foreground(RgbEnd),
		Route:    base.Foreground(RgbRoute),
		Player:   base.Foreground(RgbPlayer).Bold(true),
		Stopped:  base.Foreground(RgbStopped).Bold(true),
		Pursuer:  base.Foreground(RgbPursuer).Bold(true),
		Status:   base.Foreground(RgbStatusBar),
		GameOver: tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbGameOver).Bold(true),
	}
}
