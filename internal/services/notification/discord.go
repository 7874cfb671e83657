package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// alertColor is the embed color used for dispatch alerts
const alertColor = 0xE74C3C

// discordDispatcher implements Dispatcher by posting embeds to a Discord channel
type discordDispatcher struct {
	sender    DiscordSender
	channelID string
	logger    *slog.Logger
}

// NewDiscord creates a dispatcher that posts to a Discord channel
func NewDiscord(cfg *DiscordConfig) (*discordDispatcher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sender == nil {
		return nil, errors.New("discord sender cannot be nil")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &discordDispatcher{
		sender:    cfg.Sender,
		channelID: cfg.ChannelID,
		logger:    logger.With("dispatcher", "discord"),
	}, nil
}

// Dispatch posts the alert as an embed
func (d *discordDispatcher) Dispatch(ctx context.Context, input *DispatchInput) error {
	if input == nil || input.Text == "" {
		return errors.New("input and text cannot be empty")
	}

	embed := &discordgo.MessageEmbed{
		Title:       input.Title,
		Description: input.Text,
		Color:       alertColor,
	}

	_, err := d.sender.ChannelMessageSendComplex(d.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		d.logger.Warn("failed to post alert", "channelID", d.channelID, "error", err)
		return fmt.Errorf("failed to post discord alert: %w", err)
	}

	return nil
}

// noopDispatcher drops alerts when no dispatch channel is configured
type noopDispatcher struct{}

// NewNoop creates a dispatcher that discards every alert
func NewNoop() *noopDispatcher {
	return &noopDispatcher{}
}

// Dispatch does nothing
func (d *noopDispatcher) Dispatch(ctx context.Context, input *DispatchInput) error {
	return nil
}
