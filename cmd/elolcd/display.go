package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/elolcd/internal/config"
	"github.com/KirkDiggler/elolcd/internal/display"
	"github.com/KirkDiggler/elolcd/internal/display/charlcd"
	"github.com/KirkDiggler/elolcd/internal/display/console"
	"github.com/KirkDiggler/elolcd/internal/display/discord"
)

// openDisplay builds the display driver named in the config
func openDisplay(cfg *config.Config) (display.Display, error) {
	switch cfg.Display.Driver {
	case display.DriverCharLCD:
		return charlcd.Open(cfg.Display.I2CBus, &charlcd.Config{
			Address: cfg.Display.Address,
			Cols:    cfg.Display.Cols,
			Rows:    cfg.Display.Rows,
		})
	case display.DriverConsole:
		return console.New(&console.Config{
			Out:  os.Stdout,
			Cols: cfg.Display.Cols,
		})
	case display.DriverDiscord:
		return discord.New(&discord.Config{
			Token:     cfg.Discord.Token,
			ChannelID: cfg.Discord.ChannelID,
		})
	default:
		return nil, fmt.Errorf("unknown display driver %q", cfg.Display.Driver)
	}
}
