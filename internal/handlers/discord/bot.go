package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/popdriving/sessionbook/internal/actions"
	"github.com/popdriving/sessionbook/internal/roster"
	sessionSvc "github.com/popdriving/sessionbook/internal/services/session"
)

// Bot represents the Discord bot instance
type Bot struct {
	session        *discordgo.Session
	commands       map[string]CommandHandler
	commandIDs     map[string]string // Maps command name to command ID
	sessionService sessionSvc.Service
	config         *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Session service
	SessionService sessionSvc.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:        session,
		commands:       make(map[string]CommandHandler),
		commandIDs:     make(map[string]string),
		sessionService: cfg.SessionService,
		config:         cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register the sessionbook command
	sessionbookCmd := NewSessionbookCommand(b.sessionService)
	if err := b.RegisterCommand(sessionbookCmd); err != nil {
		return fmt.Errorf("failed to register sessionbook command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild.
	// Otherwise, register it globally.
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// requesterIdentity resolves the acting user's ID and display name.
// Interactions from a guild carry a Member; DMs carry a User.
func requesterIdentity(i *discordgo.InteractionCreate) (userID, tag string) {
	if i.Member != nil && i.Member.User != nil {
		userID = i.Member.User.ID
		tag = i.Member.User.Username
		if i.Member.Nick != "" {
			tag = i.Member.Nick
		}
		return userID, tag
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle session buttons
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction handles clicks on the session buttons
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	action, err := actions.Parse(customID)
	if err != nil {
		// The control set is closed, so anything unparseable is either
		// stale or not one of ours. Drop it without user feedback.
		return nil
	}

	userID, userTag := requesterIdentity(i)
	if userID == "" {
		return nil
	}

	switch action.Type {
	case actions.TypeSignup:
		return b.handleSignup(s, i, action, userID, userTag)
	case actions.TypeClose:
		return b.handleClose(s, i, action, userID)
	}

	return nil
}

// handleSignup processes a roster signup button click
func (b *Bot) handleSignup(s *discordgo.Session, i *discordgo.InteractionCreate, action *actions.Action, userID, userTag string) error {
	ctx := context.Background()

	output, err := b.sessionService.Signup(ctx, &sessionSvc.SignupInput{
		SessionID: action.SessionID,
		UserID:    userID,
		UserTag:   userTag,
		Role:      action.Role,
	})
	if err != nil {
		if errors.Is(err, sessionSvc.ErrSessionNotFound) {
			return RespondWithEphemeralMessage(s, i, "❌ Session no longer active.")
		}
		if errors.Is(err, roster.ErrInvalidRole) {
			// Unreachable from our own buttons; flag it loudly in the logs.
			log.Printf("Signup with invalid role %q from token %q", action.Role, i.MessageComponentData().CustomID)
			return RespondWithEphemeralMessage(s, i, "❌ Something went wrong. Please try again.")
		}
		log.Printf("Error signing up: %v", err)
		return RespondWithEphemeralMessage(s, i, "❌ Something went wrong. Please try again.")
	}

	sess := output.Session

	// Re-resolve the host's display name for the refreshed embed
	hostTag := sess.HostID
	if host, err := s.User(sess.HostID); err == nil {
		hostTag = host.Username
	} else {
		log.Printf("Error resolving host %s: %v", sess.HostID, err)
	}

	// Edit the roster message in place
	embeds := []*discordgo.MessageEmbed{SessionEmbed(sess, hostTag)}
	_, err = s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel: sess.ChannelID,
		ID:      sess.MessageID,
		Embeds:  &embeds,
	})
	if err != nil {
		log.Printf("Error updating session message: %v", err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("✅ You signed up as **%s**.", RoleLabel(action.Role)))
}

// handleClose processes a close button click
func (b *Bot) handleClose(s *discordgo.Session, i *discordgo.InteractionCreate, action *actions.Action, userID string) error {
	ctx := context.Background()

	output, err := b.sessionService.CloseSession(ctx, &sessionSvc.CloseSessionInput{
		SessionID:   action.SessionID,
		RequesterID: userID,
	})
	if err != nil {
		if errors.Is(err, sessionSvc.ErrSessionNotFound) {
			return RespondWithEphemeralMessage(s, i, "❌ Session no longer active.")
		}
		if errors.Is(err, sessionSvc.ErrUnauthorized) {
			return RespondWithEphemeralMessage(s, i, "❌ Only the host can close this session.")
		}
		log.Printf("Error closing session: %v", err)
		return RespondWithEphemeralMessage(s, i, "❌ Something went wrong. Please try again.")
	}

	sess := output.Session

	// Replace the roster message with the terminal view and strip the buttons
	embeds := []*discordgo.MessageEmbed{ClosedEmbed(sess.HostID)}
	components := []discordgo.MessageComponent{}
	_, err = s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    sess.ChannelID,
		ID:         sess.MessageID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		log.Printf("Error updating session message: %v", err)
	}

	return RespondWithEphemeralMessage(s, i, "✅ Session closed.")
}
