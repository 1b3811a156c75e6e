// Package display defines the character display capability used by the
// tracker, independent of the device behind it.
package display

//go:generate mockgen -package=mocks -destination=mocks/mock_display.go github.com/KirkDiggler/elolcd/internal/display Display

// Display is a two-line character display with a switchable backlight
type Display interface {
	// Clear blanks every line and homes the cursor
	Clear() error

	// WriteLines replaces the display contents with two lines of text
	WriteLines(line1, line2 string) error

	// SetBacklight turns the backlight on or off
	SetBacklight(on bool) error

	// Close releases the underlying device
	Close() error
}

// Driver names accepted in configuration
const (
	DriverCharLCD = "charlcd"
	DriverConsole = "console"
	DriverDiscord = "discord"
)
