// Package console renders the display to a terminal or any io.Writer.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

const defaultCols = 16

// Config holds configuration for the console display
type Config struct {
	// Out receives the rendered frames
	Out io.Writer

	// Cols is the simulated line width
	Cols int
}

// Display draws a boxed two-line frame on every change
type Display struct {
	mu        sync.Mutex
	out       io.Writer
	cols      int
	lines     [2]string
	backlight bool
}

// New creates a new console display
func New(cfg *Config) (*Display, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output writer cannot be nil")
	}

	cols := cfg.Cols
	if cols <= 0 {
		cols = defaultCols
	}

	return &Display{
		out:  cfg.Out,
		cols: cols,
	}, nil
}

// Clear blanks both lines
func (d *Display) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lines = [2]string{}
	return d.render()
}

// WriteLines replaces both lines, truncating to the configured width
func (d *Display) WriteLines(line1, line2 string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lines = [2]string{d.fit(line1), d.fit(line2)}
	return d.render()
}

// SetBacklight records the backlight state and redraws
func (d *Display) SetBacklight(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.backlight = on
	return d.render()
}

// Close is a no-op, the writer is owned by the caller
func (d *Display) Close() error {
	return nil
}

func (d *Display) fit(line string) string {
	runes := []rune(line)
	if len(runes) > d.cols {
		runes = runes[:d.cols]
	}
	return string(runes)
}

func (d *Display) render() error {
	light := "off"
	if d.backlight {
		light = "on"
	}

	border := "+" + strings.Repeat("-", d.cols) + "+"
	frame := fmt.Sprintf("%s backlight:%s\n|%-*s|\n|%-*s|\n%s\n",
		border, light,
		d.cols, d.lines[0],
		d.cols, d.lines[1],
		border)

	_, err := io.WriteString(d.out, frame)
	return err
}
