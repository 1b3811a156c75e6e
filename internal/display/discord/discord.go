// Package discord mirrors the display into a single Discord channel message.
package discord

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

const (
	colorLit  = 0x00ff00
	colorDark = 0x2f3136

	embedTitle = "ELO tracker"
)

// Config holds configuration for the Discord display
type Config struct {
	// Discord bot token
	Token string

	// ChannelID is where the display message lives
	ChannelID string
}

// messenger is the slice of the Discord API the display needs
type messenger interface {
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
	EditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
	Close() error
}

type sessionMessenger struct {
	session *discordgo.Session
}

func (m *sessionMessenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return m.session.ChannelMessageSendEmbed(channelID, embed)
}

func (m *sessionMessenger) EditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return m.session.ChannelMessageEditEmbed(channelID, messageID, embed)
}

func (m *sessionMessenger) Close() error {
	return m.session.Close()
}

// Display posts one embed on the first update and edits it afterwards.
// The backlight state is shown as the embed colour.
type Display struct {
	mu        sync.Mutex
	messenger messenger
	channelID string
	messageID string
	lines     [2]string
	backlight bool
}

// New creates a Discord display backed by a REST-only bot session
func New(cfg *Config) (*Display, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel id cannot be empty")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return newDisplay(&sessionMessenger{session: session}, cfg.ChannelID), nil
}

func newDisplay(m messenger, channelID string) *Display {
	return &Display{
		messenger: m,
		channelID: channelID,
	}
}

// Clear blanks both lines
func (d *Display) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lines = [2]string{}
	return d.render()
}

// WriteLines replaces both lines
func (d *Display) WriteLines(line1, line2 string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lines = [2]string{line1, line2}
	return d.render()
}

// SetBacklight switches the embed colour
func (d *Display) SetBacklight(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.backlight = on
	return d.render()
}

// Close shuts down the session
func (d *Display) Close() error {
	return d.messenger.Close()
}

func (d *Display) embed() *discordgo.MessageEmbed {
	color := colorDark
	if d.backlight {
		color = colorLit
	}

	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString(d.lines[0])
	b.WriteString("\n")
	b.WriteString(d.lines[1])
	b.WriteString("\n```")

	return &discordgo.MessageEmbed{
		Title:       embedTitle,
		Description: b.String(),
		Color:       color,
	}
}

func (d *Display) render() error {
	embed := d.embed()

	if d.messageID == "" {
		msg, err := d.messenger.SendEmbed(d.channelID, embed)
		if err != nil {
			return fmt.Errorf("failed to send display message: %w", err)
		}
		d.messageID = msg.ID
		return nil
	}

	if _, err := d.messenger.EditEmbed(d.channelID, d.messageID, embed); err != nil {
		return fmt.Errorf("failed to edit display message: %w", err)
	}
	return nil
}
