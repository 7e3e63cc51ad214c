package config

import "time"

const (
	WindowWidth  = 1000
	WindowHeight = 900

	// Grid cell dimensions
	RowHeight = 45
	ColWidth  = 20

	// Interaction parameters
	InteractionRadius = 100.0
	MaxMoveDistance   = 40.0

	ResizeDebounce = 200 * time.Millisecond

	// Rendering
	LineLength         = 30
	LineWidth          = 2
	TransitionDuration = 300 * time.Millisecond
	FrameInterval      = 16 * time.Millisecond

	// Terminal character box in viewport pixels
	TermCharWidth  = 10
	TermCharHeight = 15

	LogDir      = "logs"
	LogFileName = "ripplegrid.log"
)
