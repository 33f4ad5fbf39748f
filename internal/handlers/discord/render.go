package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/popdriving/sessionbook/internal/actions"
	"github.com/popdriving/sessionbook/internal/models"
)

const (
	colorBlue = 0x3498db
	colorRed  = 0xe74c3c
)

// roleLabels maps wire roles to the labels shown on buttons and acks.
var roleLabels = map[models.Role]string{
	models.RoleDriver:      "Driver",
	models.RoleJuniorStaff: "Staff",
	models.RoleTrainee:     "Trainee",
}

// RoleLabel returns the display label for a role.
func RoleLabel(role models.Role) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return string(role)
}

// timeLayouts are the formats hosts usually paste into /sessionbook.
var timeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// formatSessionTime turns the session's time string into Discord
// timestamp markup when it parses, and returns it untouched otherwise.
func formatSessionTime(raw string) string {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return fmt.Sprintf("<t:%d:f> (<t:%d:R>)", t.Unix(), t.Unix())
		}
	}
	return raw
}

// rosterField renders one roster bucket as an embed field.
func rosterField(name, emoji string, entries []models.RosterEntry, placeholder string) *discordgo.MessageEmbedField {
	value := placeholder
	if len(entries) > 0 {
		mentions := make([]string, 0, len(entries))
		for _, e := range entries {
			mentions = append(mentions, fmt.Sprintf("<@%s>", e.ID))
		}
		value = strings.Join(mentions, "\n")
	}

	return &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("%s %s (%d)", emoji, name, len(entries)),
		Value:  value,
		Inline: false,
	}
}

// SessionEmbed renders the roster message for a live session.
func SessionEmbed(sess *models.Session, hostTag string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📢 This is a scheduled POP driving session. Sign up below! 🚗",
		Color: colorBlue,
		Description: fmt.Sprintf(
			"**Host**\n<@%s> (%s)\n**Time**\n%s\n**Duration**\n%s\n**Channel**\n<#%s>\n\n**— — — Roster Signups — — —**",
			sess.HostID, hostTag, formatSessionTime(sess.Time), sess.Duration, sess.ChannelID,
		),
		Fields: []*discordgo.MessageEmbedField{
			rosterField("Drivers", "🏎️", sess.Drivers, "No drivers signed up yet."),
			rosterField("Staff", "🛠️", sess.JuniorStaff, "No staff members signed up yet."),
			rosterField("Trainees", "📚", sess.Trainees, "No trainees signed up yet."),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Session ID: %s", sess.ID),
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// SessionButtons renders the four session controls. Their custom IDs
// are the action tokens handleComponentInteraction decodes later.
func SessionButtons(sessionID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Sign up as Driver",
					Style:    discordgo.PrimaryButton,
					CustomID: actions.SignupID(sessionID, models.RoleDriver),
				},
				discordgo.Button{
					Label:    "Sign up as Staff",
					Style:    discordgo.SecondaryButton,
					CustomID: actions.SignupID(sessionID, models.RoleJuniorStaff),
				},
				discordgo.Button{
					Label:    "Sign up as Trainee",
					Style:    discordgo.SuccessButton,
					CustomID: actions.SignupID(sessionID, models.RoleTrainee),
				},
				discordgo.Button{
					Label:    "Close Session",
					Style:    discordgo.DangerButton,
					CustomID: actions.CloseID(sessionID),
				},
			},
		},
	}
}

// ClosedEmbed renders the terminal view that replaces the roster
// message once the host closes the session.
func ClosedEmbed(hostID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Session Closed",
		Description: fmt.Sprintf("The session hosted by <@%s> has been closed.", hostID),
		Color:       colorRed,
	}
}
