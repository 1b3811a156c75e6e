package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmbed struct {
	channelID string
	messageID string
	embed     *discordgo.MessageEmbed
}

// fakeMessenger records calls instead of talking to Discord
type fakeMessenger struct {
	sends   []sentEmbed
	edits   []sentEmbed
	sendErr error
	closed  bool
}

func (f *fakeMessenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sends = append(f.sends, sentEmbed{channelID: channelID, embed: embed})
	return &discordgo.Message{ID: "message-1", ChannelID: channelID}, nil
}

func (f *fakeMessenger) EditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	f.edits = append(f.edits, sentEmbed{channelID: channelID, messageID: messageID, embed: embed})
	return &discordgo.Message{ID: messageID, ChannelID: channelID}, nil
}

func (f *fakeMessenger) Close() error {
	f.closed = true
	return nil
}

func TestFirstWriteSendsThenEdits(t *testing.T) {
	fake := &fakeMessenger{}
	d := newDisplay(fake, "channel-1")

	require.NoError(t, d.WriteLines("Updating ...", ""))
	require.NoError(t, d.WriteLines("ELO: 1520 +20.000", "K/D: 1.20 +0.000"))

	require.Len(t, fake.sends, 1)
	assert.Equal(t, "channel-1", fake.sends[0].channelID)
	assert.Equal(t, "```\nUpdating ...\n\n```", fake.sends[0].embed.Description)

	require.Len(t, fake.edits, 1)
	assert.Equal(t, "message-1", fake.edits[0].messageID)
	assert.Equal(t, "```\nELO: 1520 +20.000\nK/D: 1.20 +0.000\n```", fake.edits[0].embed.Description)
}

func TestBacklightColour(t *testing.T) {
	fake := &fakeMessenger{}
	d := newDisplay(fake, "channel-1")

	require.NoError(t, d.SetBacklight(true))
	require.NoError(t, d.SetBacklight(false))
	require.NoError(t, d.Clear())

	assert.Equal(t, colorLit, fake.sends[0].embed.Color)
	assert.Equal(t, colorDark, fake.edits[0].embed.Color)
	assert.Equal(t, "```\n\n\n```", fake.edits[1].embed.Description)
}

func TestSendFailure(t *testing.T) {
	fake := &fakeMessenger{sendErr: errors.New("rate limited")}
	d := newDisplay(fake, "channel-1")

	err := d.WriteLines("a", "b")
	assert.ErrorContains(t, err, "rate limited")

	fake.sendErr = nil
	require.NoError(t, d.WriteLines("a", "b"))
	assert.Len(t, fake.sends, 1)
}

func TestClose(t *testing.T) {
	fake := &fakeMessenger{}
	d := newDisplay(fake, "channel-1")

	require.NoError(t, d.Close())
	assert.True(t, fake.closed)
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{ChannelID: "c"})
	assert.Error(t, err)

	_, err = New(&Config{Token: "t"})
	assert.Error(t, err)

	d, err := New(&Config{Token: "t", ChannelID: "c"})
	require.NoError(t, err)
	assert.NotNil(t, d)
}
