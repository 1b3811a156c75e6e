// Package charlcd drives an Adafruit RGB character LCD plate: an HD44780
// controller wired in 4-bit mode behind an MCP23017 I2C port expander.
package charlcd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// DefaultAddress is the MCP23017 address used by the plate
const DefaultAddress uint16 = 0x20

const (
	defaultCols = 16
	defaultRows = 2
)

// MCP23017 registers, IOCON.BANK = 0
const (
	regIODIRA = 0x00
	regIODIRB = 0x01
	regIOCON  = 0x0A
	regGPPUA  = 0x0C
	regOLATA  = 0x14
	regOLATB  = 0x15
)

// Port A: buttons on 0-4, red and green backlight on 6-7
const (
	pinsButtons uint8 = 0x1F
	pinRed      uint8 = 0x40
	pinGreen    uint8 = 0x80
)

// Port B: blue backlight on 0, LCD bus on 1-7
const (
	pinBlue uint8 = 0x01
	pinD7   uint8 = 0x02
	pinD6   uint8 = 0x04
	pinD5   uint8 = 0x08
	pinD4   uint8 = 0x10
	pinE    uint8 = 0x20
	pinRW   uint8 = 0x40
	pinRS   uint8 = 0x80

	lcdPins = pinD4 | pinD5 | pinD6 | pinD7 | pinE | pinRW | pinRS
)

// HD44780 commands
const (
	cmdClear       uint8 = 0x01
	cmdEntryMode   uint8 = 0x06 // increment, no shift
	cmdDisplayOff  uint8 = 0x08
	cmdDisplayOn   uint8 = 0x0C // display on, cursor off, blink off
	cmdFunctionSet uint8 = 0x28 // 4-bit, 2 lines, 5x8
	cmdSetDDRAM    uint8 = 0x80
)

var rowOffsets = []uint8{0x00, 0x40, 0x14, 0x54}

// Config holds configuration for the plate driver
type Config struct {
	// Bus is an open I2C bus
	Bus i2c.Bus

	// Address of the MCP23017, DefaultAddress when zero
	Address uint16

	Cols int
	Rows int

	// Delay waits out controller timings, time.Sleep when nil
	Delay func(time.Duration)
}

// Display is the HD44780 plate. The MCP23017 output latches are shadowed in
// portA and portB so every update is a single register write.
type Display struct {
	dev    *i2c.Dev
	closer io.Closer
	cols   int
	rows   int
	delay  func(time.Duration)
	portA  uint8
	portB  uint8
}

// Open initialises the host drivers, opens the named I2C bus ("" picks the
// first one) and returns a ready display that owns the bus.
func Open(busName string, cfg *Config) (*Display, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise host drivers: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("failed to open i2c bus %q: %w", busName, err)
	}

	withBus := *cfg
	withBus.Bus = bus

	d, err := New(&withBus)
	if err != nil {
		bus.Close()
		return nil, err
	}
	d.closer = bus

	return d, nil
}

// New configures the expander and the LCD controller on an already open bus
func New(cfg *Config) (*Display, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Bus == nil {
		return nil, errors.New("i2c bus cannot be nil")
	}

	addr := cfg.Address
	if addr == 0 {
		addr = DefaultAddress
	}

	cols := cfg.Cols
	if cols <= 0 {
		cols = defaultCols
	}

	rows := cfg.Rows
	if rows <= 0 {
		rows = defaultRows
	}
	if rows > len(rowOffsets) {
		return nil, fmt.Errorf("unsupported row count %d", rows)
	}

	delay := cfg.Delay
	if delay == nil {
		delay = time.Sleep
	}

	d := &Display{
		dev:   &i2c.Dev{Bus: cfg.Bus, Addr: addr},
		cols:  cols,
		rows:  rows,
		delay: delay,
		// backlight pins are active low, start dark
		portA: pinRed | pinGreen,
		portB: pinBlue,
	}

	if err := d.init(); err != nil {
		return nil, fmt.Errorf("failed to initialise lcd plate: %w", err)
	}

	return d, nil
}

func (d *Display) init() error {
	setup := [][2]uint8{
		{regIOCON, 0x00},
		{regIODIRA, pinsButtons},
		{regIODIRB, 0x00},
		{regGPPUA, pinsButtons},
		{regOLATA, d.portA},
		{regOLATB, d.portB},
	}
	for _, w := range setup {
		if err := d.writeReg(w[0], w[1]); err != nil {
			return err
		}
	}

	d.delay(50 * time.Millisecond)

	// 0x33, 0x32 walks the controller from any state into 4-bit mode
	for _, cmd := range []uint8{0x33, 0x32, cmdFunctionSet, cmdDisplayOff, cmdEntryMode, cmdDisplayOn} {
		if err := d.command(cmd); err != nil {
			return err
		}
	}

	return d.Clear()
}

// Clear blanks the display and homes the cursor
func (d *Display) Clear() error {
	if err := d.command(cmdClear); err != nil {
		return err
	}
	d.delay(2 * time.Millisecond)
	return nil
}

// WriteLines clears the display and writes one line per row. Lines past the
// row count are dropped and long lines are cut at the column count.
func (d *Display) WriteLines(line1, line2 string) error {
	if err := d.Clear(); err != nil {
		return err
	}

	for row, line := range []string{line1, line2} {
		if row >= d.rows {
			break
		}
		if err := d.command(cmdSetDDRAM | rowOffsets[row]); err != nil {
			return err
		}
		for i, r := range []rune(line) {
			if i >= d.cols {
				break
			}
			if err := d.write8(charCode(r), true); err != nil {
				return err
			}
		}
	}

	return nil
}

// SetBacklight drives all three backlight LEDs together
func (d *Display) SetBacklight(on bool) error {
	if on {
		d.portA &^= pinRed | pinGreen
		d.portB &^= pinBlue
	} else {
		d.portA |= pinRed | pinGreen
		d.portB |= pinBlue
	}

	if err := d.writeReg(regOLATA, d.portA); err != nil {
		return err
	}
	return d.writeReg(regOLATB, d.portB)
}

// Close releases the bus when the display opened it
func (d *Display) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

func (d *Display) command(cmd uint8) error {
	return d.write8(cmd, false)
}

func (d *Display) write8(value uint8, rs bool) error {
	if err := d.write4(value>>4, rs); err != nil {
		return err
	}
	return d.write4(value&0x0F, rs)
}

// write4 places a nibble on D4-D7 and pulses E; the controller latches on
// the falling edge.
func (d *Display) write4(nibble uint8, rs bool) error {
	b := d.portB &^ lcdPins
	if rs {
		b |= pinRS
	}
	if nibble&0x01 != 0 {
		b |= pinD4
	}
	if nibble&0x02 != 0 {
		b |= pinD5
	}
	if nibble&0x04 != 0 {
		b |= pinD6
	}
	if nibble&0x08 != 0 {
		b |= pinD7
	}

	if err := d.writeReg(regOLATB, b|pinE); err != nil {
		return err
	}
	if err := d.writeReg(regOLATB, b); err != nil {
		return err
	}
	d.portB = b
	return nil
}

func (d *Display) writeReg(reg, value uint8) error {
	if err := d.dev.Tx([]byte{reg, value}, nil); err != nil {
		return fmt.Errorf("i2c write reg 0x%02x: %w", reg, err)
	}
	return nil
}

// charCode maps a rune onto the HD44780 A00 character ROM
func charCode(r rune) uint8 {
	if r < 0x20 || r > 0x7D {
		return '?'
	}
	return uint8(r)
}
