package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	sessionSvc "github.com/popdriving/sessionbook/internal/services/session"
)

// SessionbookCommand handles the /sessionbook command
type SessionbookCommand struct {
	BaseCommand
	sessionService sessionSvc.Service
}

// NewSessionbookCommand creates a new sessionbook command handler
func NewSessionbookCommand(sessionService sessionSvc.Service) *SessionbookCommand {
	return &SessionbookCommand{
		BaseCommand: BaseCommand{
			Name:        "sessionbook",
			Description: "Book a new driving session",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "time",
					Description: "Time and date of the session (e.g., 2025-10-07T18:30)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "duration",
					Description: "Expected duration (e.g., 1 hour)",
					Required:    true,
				},
			},
		},
		sessionService: sessionService,
	}
}

// Handle processes a Discord interaction for the sessionbook command
func (c *SessionbookCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	var sessionTime, duration string
	for _, opt := range data.Options {
		switch opt.Name {
		case "time":
			sessionTime = opt.StringValue()
		case "duration":
			duration = opt.StringValue()
		}
	}

	hostID, hostTag := requesterIdentity(i)
	channelID := i.ChannelID

	// Posting the roster message can outlast the interaction window,
	// so acknowledge first and confirm in a follow-up.
	if err := DeferEphemeral(s, i); err != nil {
		return fmt.Errorf("failed to defer interaction: %w", err)
	}

	ctx := context.Background()

	booked, err := c.sessionService.BookSession(ctx, &sessionSvc.BookSessionInput{
		HostID:    hostID,
		ChannelID: channelID,
		Time:      sessionTime,
		Duration:  duration,
	})
	if err != nil {
		log.Printf("Error booking session: %v", err)
		return FollowupEphemeral(s, i, "❌ Failed to book the session. Please try again.")
	}

	// Post the roster message with the signup controls
	msg, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{SessionEmbed(booked.Session, hostTag)},
		Components: SessionButtons(booked.Session.ID),
	})
	if err != nil {
		log.Printf("Error sending session message: %v", err)
		return FollowupEphemeral(s, i, "❌ Failed to announce the session. Please try again.")
	}

	// Record the roster message so signups can edit it in place
	_, err = c.sessionService.SetSessionMessage(ctx, &sessionSvc.SetSessionMessageInput{
		SessionID: booked.Session.ID,
		MessageID: msg.ID,
	})
	if err != nil {
		log.Printf("Error recording session message: %v", err)
		// Not critical, continue
	}

	return FollowupEphemeral(s, i, fmt.Sprintf("✅ Session booked for **%s** in <#%s>.", sessionTime, channelID))
}
