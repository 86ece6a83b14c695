// Package constants provides application-wide constants.
package constants

import "time"

const (
	// AppName is the application name.
	AppName = "strobe"

	// AppDataDir is the directory name for application data.
	AppDataDir = ".config/strobe"

	// DatabaseFile is the settings database file name inside the data dir.
	DatabaseFile = "strobe.db"

	// DefaultProfile is the profile used when none is named on the command line.
	DefaultProfile = "default"
)

// Display defaults and ranges.
const (
	DefaultMessage  = "S.O.S"
	DefaultFlashHz  = 1.5
	DefaultFontSize = 25.0
	DefaultColor    = "#f44336"

	MinFlashHz  = 0.2
	MaxFlashHz  = 10.0
	FlashHzStep = 0.1

	MinFontSize  = 1.0
	MaxFontSize  = 100.0
	FontSizeStep = 1.0

	// MaxMessageLength bounds the editable message.
	MaxMessageLength = 200
)

// Storage keys. These are persisted and must never change.
const (
	KeyMessage  = "copy"
	KeyFlashHz  = "fps"
	KeyFontSize = "font-size"
	KeyColor    = "color"
)

// Timing constants
const (
	// MirrorFrameInterval is the framebuffer redraw period (~30 FPS).
	MirrorFrameInterval = time.Second / 30
)
