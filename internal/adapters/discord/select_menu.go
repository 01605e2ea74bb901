package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"bacabot/internal/domain/entities"
	pkgdiscord "bacabot/pkg/discord"
)

const (
	selectHistory      = "select_history"
	maxSelectOptions   = 25
	maxOptionTextRunes = 100
)

// buildHistorySelect lets the user post one of their past readings again.
func buildHistorySelect(readings []entities.Reading, loc pkgdiscord.Localize) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(readings))
	for _, r := range readings {
		if len(options) == maxSelectOptions {
			break
		}
		label := pkgdiscord.Truncate(strings.Join(strings.Fields(r.DisplayText()), " "), maxOptionTextRunes)
		if label == "" {
			continue
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       label,
			Value:       r.ID,
			Description: pkgdiscord.FormatDateTime(r.CreatedAt),
		})
	}
	if len(options) == 0 {
		return nil
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    selectHistory,
				Placeholder: loc("ui.history_reopen", nil),
				Options:     options,
			},
		}},
	}
}

// HandleHistorySelect posts the chosen reading with its word buttons.
func (h *Handler) HandleHistorySelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}
	reading, err := h.readingUseCase.GetReading(context.Background(), values[0])
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(i, err))
		return
	}
	msg := h.readingMessage(i, reading)
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    msg.Content,
			TTS:        msg.TTS,
			Components: msg.Components,
		},
	})
}
